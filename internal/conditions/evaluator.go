package conditions

import (
	"strconv"
	"strings"

	"github.com/sportsguide/epg-engine/internal/domain/guide"
)

// Evaluator evaluates named conditions against game contexts. All failure
// modes degrade to non-matching: an unknown condition name, a comparison
// value that does not parse as the declared type, or a provider-scoped
// condition against a context from another provider each skip the one rule
// instead of failing the whole resolution.
type Evaluator struct {
	catalog *Catalog
}

// NewEvaluator constructs an Evaluator over a catalog.
func NewEvaluator(catalog *Catalog) *Evaluator {
	return &Evaluator{catalog: catalog}
}

// Evaluate reports whether the named condition, with its optional comparison
// value, holds for the context.
func (e *Evaluator) Evaluate(name, value string, ctx guide.GameContext) bool {
	if e == nil || e.catalog == nil {
		return false
	}
	d, ok := e.catalog.Lookup(name)
	if !ok || d.predicate == nil {
		return false
	}
	if d.Scope == ScopeProvider && !strings.EqualFold(d.Provider, ctx.Provider) {
		return false
	}

	var arg Arg
	if d.RequiresValue {
		parsed, ok := parseArg(d.ValueType, value)
		if !ok {
			return false
		}
		arg = parsed
	}
	return d.predicate(ctx, arg)
}

// Known reports whether the catalog contains the named condition.
func (e *Evaluator) Known(name string) bool {
	if e == nil || e.catalog == nil {
		return false
	}
	_, ok := e.catalog.Lookup(name)
	return ok
}

func parseArg(valueType ValueType, raw string) (Arg, bool) {
	switch valueType {
	case ValueNumber:
		n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return Arg{}, false
		}
		return Arg{Number: n}, true
	case ValueString:
		if strings.TrimSpace(raw) == "" {
			return Arg{}, false
		}
		return Arg{Text: raw}, true
	default:
		return Arg{}, false
	}
}
