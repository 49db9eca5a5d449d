package variables

import (
	"strings"

	"github.com/sportsguide/epg-engine/internal/domain/guide"
)

// ResolveFunc extracts a variable's value from a context. The view argument
// is the temporal slice selected by the token's suffix and may be nil when
// that slice is not populated for the program role.
type ResolveFunc func(ctx guide.GameContext, view *guide.GameView) (string, bool)

// Descriptor describes one known variable: its identity for the authoring
// surface and its resolution behavior for rendering.
type Descriptor struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Suffixes    SuffixSet `json:"-"`
	Sports      []string  `json:"sports,omitempty"` // empty means all sports

	resolve ResolveFunc
}

// Group is a category of variables as presented by the metadata surface.
type Group struct {
	Category  string       `json:"category"`
	Variables []Descriptor `json:"variables"`
}

// Catalog is the registry of known variables, grouped by category.
type Catalog struct {
	groups []Group
	byName map[string]Descriptor
}

// NewCatalog builds a catalog from groups. Later descriptors with a
// duplicate name are ignored.
func NewCatalog(groups []Group) *Catalog {
	c := &Catalog{
		groups: groups,
		byName: make(map[string]Descriptor),
	}
	for _, g := range groups {
		for _, d := range g.Variables {
			if _, exists := c.byName[d.Name]; !exists {
				c.byName[d.Name] = d
			}
		}
	}
	return c
}

// Groups returns the catalog content in authoring order.
func (c *Catalog) Groups() []Group {
	return c.groups
}

// Lookup finds a descriptor by exact name, then falls back to a
// case-insensitive match before giving up.
func (c *Catalog) Lookup(name string) (Descriptor, bool) {
	if d, ok := c.byName[name]; ok {
		return d, true
	}
	for known, d := range c.byName {
		if strings.EqualFold(known, name) {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Names returns every known variable name.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.byName))
	for _, g := range c.groups {
		for _, d := range g.Variables {
			names = append(names, d.Name)
		}
	}
	return names
}

// BaseOnlyNames returns the names of variables that permit no temporal suffix.
func (c *Catalog) BaseOnlyNames() []string {
	var names []string
	for _, g := range c.groups {
		for _, d := range g.Variables {
			if d.Suffixes.BaseOnly() {
				names = append(names, d.Name)
			}
		}
	}
	return names
}

// Value resolves a variable against the requested temporal slice of the
// context. It returns false when the name is unknown, the suffix is not
// supported by the variable, or the slice needed for resolution is missing.
func (c *Catalog) Value(ctx guide.GameContext, name string, suffix Suffix) (string, bool) {
	d, ok := c.Lookup(name)
	if !ok || d.resolve == nil {
		return "", false
	}
	if !d.Suffixes.Allows(suffix) {
		return "", false
	}
	return d.resolve(ctx, viewFor(ctx, suffix))
}

func viewFor(ctx guide.GameContext, suffix Suffix) *guide.GameView {
	switch suffix {
	case SuffixNext:
		return ctx.Next
	case SuffixLast:
		return ctx.Last
	default:
		return ctx.Current
	}
}
