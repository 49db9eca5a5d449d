package catalogs

import (
	"context"
	"errors"
	"testing"

	"github.com/sportsguide/epg-engine/internal/catalogs/fixture"
	"github.com/sportsguide/epg-engine/internal/conditions"
	"github.com/sportsguide/epg-engine/internal/variables"
)

type failingProvider struct {
	condErr error
	varErr  error
}

func (p failingProvider) Conditions(ctx context.Context) ([]conditions.Descriptor, error) {
	_ = ctx
	if p.condErr != nil {
		return nil, p.condErr
	}
	return conditions.DefaultDescriptors(), nil
}

func (p failingProvider) VariableGroups(ctx context.Context) ([]variables.Group, error) {
	_ = ctx
	return nil, p.varErr
}

func TestLoadFromFixture(t *testing.T) {
	condCat, varCat, err := Load(context.Background(), fixture.New())
	if err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}

	if _, ok := condCat.Lookup("is_home"); !ok {
		t.Fatal("expected is_home in the condition catalog")
	}
	if _, ok := varCat.Lookup("team_name"); !ok {
		t.Fatal("expected team_name in the variable catalog")
	}
	if len(varCat.Groups()) == 0 {
		t.Fatal("expected variable groups from the fixture")
	}
}

func TestLoadSurfacesProviderErrors(t *testing.T) {
	boom := errors.New("boom")

	if _, _, err := Load(context.Background(), failingProvider{condErr: boom}); !errors.Is(err, boom) {
		t.Fatalf("expected condition error surfaced, got %v", err)
	}
	if _, _, err := Load(context.Background(), failingProvider{varErr: boom}); !errors.Is(err, boom) {
		t.Fatalf("expected variable error surfaced, got %v", err)
	}
}
