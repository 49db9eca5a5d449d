package conditions

import (
	"github.com/sportsguide/epg-engine/internal/domain/guide"
	"github.com/sportsguide/epg-engine/internal/domain/templates"
)

// ValueType declares how a condition's comparison value is parsed.
type ValueType string

const (
	ValueNumber ValueType = "number"
	ValueString ValueType = "string"
)

// Scope declares which sports-data sources can satisfy a condition.
type Scope string

const (
	// ScopeUniversal conditions evaluate against data every provider supplies.
	ScopeUniversal Scope = "universal"
	// ScopeProvider conditions rely on data only one provider supplies and
	// evaluate false for contexts sourced elsewhere.
	ScopeProvider Scope = "single-provider"
)

// Arg carries the parsed comparison value handed to a predicate.
type Arg struct {
	Number float64
	Text   string
}

// Predicate tests one condition against a context.
type Predicate func(ctx guide.GameContext, arg Arg) bool

// Descriptor describes one known condition for both the authoring surface
// and evaluation.
type Descriptor struct {
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	RequiresValue bool      `json:"requiresValue"`
	ValueType     ValueType `json:"valueType,omitempty"` // set iff RequiresValue

	Scope    Scope  `json:"providerScope"`
	Provider string `json:"provider,omitempty"` // set iff Scope is single-provider

	// Kinds restricts which template kinds may use the condition; empty
	// means all kinds.
	Kinds []templates.Kind `json:"kinds,omitempty"`

	predicate Predicate
}

// AppliesTo reports whether the condition is offered for a template kind.
func (d Descriptor) AppliesTo(kind templates.Kind) bool {
	if len(d.Kinds) == 0 {
		return true
	}
	for _, k := range d.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Catalog is the registry of known conditions.
type Catalog struct {
	ordered []Descriptor
	byName  map[string]Descriptor
}

// NewCatalog builds a catalog from descriptors. Later descriptors with a
// duplicate name are ignored.
func NewCatalog(descriptors []Descriptor) *Catalog {
	c := &Catalog{
		ordered: descriptors,
		byName:  make(map[string]Descriptor, len(descriptors)),
	}
	for _, d := range descriptors {
		if _, exists := c.byName[d.Name]; !exists {
			c.byName[d.Name] = d
		}
	}
	return c
}

// Lookup finds a descriptor by name.
func (c *Catalog) Lookup(name string) (Descriptor, bool) {
	d, ok := c.byName[name]
	return d, ok
}

// ForKind returns the descriptors offered for a template kind, in authoring
// order.
func (c *Catalog) ForKind(kind templates.Kind) []Descriptor {
	var out []Descriptor
	for _, d := range c.ordered {
		if d.AppliesTo(kind) {
			out = append(out, d)
		}
	}
	return out
}

// All returns every descriptor in authoring order.
func (c *Catalog) All() []Descriptor {
	return c.ordered
}
