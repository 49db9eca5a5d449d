package resolver

import (
	"errors"
	"math/rand"

	"github.com/sportsguide/epg-engine/internal/conditions"
	"github.com/sportsguide/epg-engine/internal/domain/guide"
	"github.com/sportsguide/epg-engine/internal/domain/templates"
)

// ErrNoFallback is returned when a spec has no fallback entry to resolve
// to. Callers recover per slot: substitute safe text, log the template's
// identity, and continue the batch.
var ErrNoFallback = errors.New("template spec has no fallback description")

// Resolver picks the winning template string for a context.
type Resolver struct {
	eval *conditions.Evaluator
}

// New constructs a Resolver over a condition evaluator.
func New(eval *conditions.Evaluator) *Resolver {
	return &Resolver{eval: eval}
}

// Outcome reports which entry won a resolution.
type Outcome struct {
	Template     string
	Label        string
	FromFallback bool
}

// Resolve returns exactly one template string for the context. Conditional
// entries are checked in ascending priority order with authoring order
// breaking ties; the first match wins and no later entries are evaluated.
// When nothing matches, a single fallback is returned directly and multiple
// fallbacks are drawn from uniformly at random, one draw per call, so
// repeated runs over an unchanged context may rotate filler text.
//
// The rng must not be seeded from game identity; a nil rng uses the shared
// thread-safe source.
func (r *Resolver) Resolve(spec templates.Spec, ctx guide.GameContext, rng *rand.Rand) (string, error) {
	outcome, err := r.ResolveOutcome(spec, ctx, rng)
	return outcome.Template, err
}

// ResolveOutcome is Resolve plus the winning entry's identity, for callers
// that record where text came from.
func (r *Resolver) ResolveOutcome(spec templates.Spec, ctx guide.GameContext, rng *rand.Rand) (Outcome, error) {
	conditional, fallbacks := spec.Partition()

	for _, entry := range conditional {
		if r.eval.Evaluate(entry.Condition, entry.Value, ctx) {
			return Outcome{Template: entry.Template, Label: entry.Label}, nil
		}
	}

	switch len(fallbacks) {
	case 0:
		return Outcome{}, ErrNoFallback
	case 1:
		return Outcome{Template: fallbacks[0].Template, Label: fallbacks[0].Label, FromFallback: true}, nil
	}
	chosen := fallbacks[intn(rng, len(fallbacks))]
	return Outcome{Template: chosen.Template, Label: chosen.Label, FromFallback: true}, nil
}

func intn(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.Intn(n)
	}
	return rng.Intn(n)
}
