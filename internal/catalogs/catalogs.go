package catalogs

import (
	"context"

	"github.com/sportsguide/epg-engine/internal/conditions"
	"github.com/sportsguide/epg-engine/internal/variables"
)

// Provider fetches catalog content from the metadata surface. Content is
// static for the duration of one generation run.
type Provider interface {
	Conditions(ctx context.Context) ([]conditions.Descriptor, error)
	VariableGroups(ctx context.Context) ([]variables.Group, error)
}

// Load materializes both catalogs from a provider.
func Load(ctx context.Context, p Provider) (*conditions.Catalog, *variables.Catalog, error) {
	descriptors, err := p.Conditions(ctx)
	if err != nil {
		return nil, nil, err
	}
	groups, err := p.VariableGroups(ctx)
	if err != nil {
		return nil, nil, err
	}
	return conditions.NewCatalog(descriptors), variables.NewCatalog(groups), nil
}
