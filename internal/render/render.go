package render

import (
	"strings"

	"github.com/sportsguide/epg-engine/internal/domain/guide"
	"github.com/sportsguide/epg-engine/internal/variables"
)

// UnresolvedToken records a placeholder left verbatim in rendered output.
// Unresolved tokens are a post-generation quality signal, never an error.
type UnresolvedToken struct {
	Token  string `json:"token"`
	Offset int    `json:"offset"`
}

// Renderer substitutes variable placeholders into template text.
type Renderer struct {
	vars *variables.Catalog
}

// New constructs a Renderer over a variable catalog.
func New(vars *variables.Catalog) *Renderer {
	return &Renderer{vars: vars}
}

// Render replaces every resolvable `{name}` or `{name.suffix}` token with
// its value from the requested temporal view of the context. Tokens whose
// identifier is unknown in that view, or whose view is not populated for
// the program role, stay verbatim in the output and are reported so
// downstream quality analysis can count them.
func (r *Renderer) Render(template string, ctx guide.GameContext) (string, []UnresolvedToken) {
	tokens := variables.ScanTokens(template)
	if len(tokens) == 0 {
		return template, nil
	}

	var out strings.Builder
	out.Grow(len(template))
	var unresolved []UnresolvedToken
	pos := 0
	for _, tok := range tokens {
		out.WriteString(template[pos:tok.Offset])
		if value, ok := r.vars.Value(ctx, tok.Name, tok.Suffix); ok {
			out.WriteString(value)
		} else {
			out.WriteString(tok.Raw)
			unresolved = append(unresolved, UnresolvedToken{Token: tok.Raw, Offset: tok.Offset})
		}
		pos = tok.Offset + len(tok.Raw)
	}
	out.WriteString(template[pos:])
	return out.String(), unresolved
}
