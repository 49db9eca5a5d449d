// Package fixture serves the built-in catalogs, useful for local runs and
// bootstrapping before the metadata service is reachable.
package fixture

import (
	"context"

	"github.com/sportsguide/epg-engine/internal/conditions"
	"github.com/sportsguide/epg-engine/internal/variables"
)

// Provider returns the static default catalogs.
type Provider struct{}

// New creates a fixture catalog provider.
func New() *Provider {
	return &Provider{}
}

// Conditions returns the built-in condition descriptors.
func (p *Provider) Conditions(ctx context.Context) ([]conditions.Descriptor, error) {
	_ = ctx
	return conditions.DefaultDescriptors(), nil
}

// VariableGroups returns the built-in variable registry.
func (p *Provider) VariableGroups(ctx context.Context) ([]variables.Group, error) {
	_ = ctx
	return variables.DefaultGroups(), nil
}
