package validate

import (
	"fmt"

	"github.com/sportsguide/epg-engine/internal/variables"
)

// Reason classifies a template warning.
type Reason string

const (
	ReasonUnknownVariable  Reason = "unknown-variable"
	ReasonSuffixOnEvent    Reason = "suffix-on-event-template"
	ReasonSuffixNotAllowed Reason = "suffix-not-allowed"
)

// Warning is one advisory finding about a template. Warnings never block
// saving or generation.
type Warning struct {
	Token    string `json:"token"`
	Variable string `json:"variable"`
	Reason   Reason `json:"reason"`
	Message  string `json:"message"`
}

// Validate statically checks a template's placeholders at edit time.
// validNames holds every known variable name; baseOnlyNames the subset that
// permits no temporal suffix. Event templates describe a single fixed game,
// so any temporal suffix on them is flagged regardless of the variable.
func Validate(template string, validNames, baseOnlyNames map[string]bool, isEventTemplate bool) []Warning {
	var warnings []Warning
	for _, tok := range variables.ScanTokens(template) {
		if tok.Suffix != variables.SuffixBase && isEventTemplate {
			warnings = append(warnings, Warning{
				Token:    tok.Raw,
				Variable: tok.Name,
				Reason:   ReasonSuffixOnEvent,
				Message:  fmt.Sprintf("%s: event templates describe one fixed game; .%s has no meaning here", tok.Raw, tok.Suffix),
			})
			continue
		}
		if !validNames[tok.Name] {
			warnings = append(warnings, Warning{
				Token:    tok.Raw,
				Variable: tok.Name,
				Reason:   ReasonUnknownVariable,
				Message:  fmt.Sprintf("%s: unknown variable %q", tok.Raw, tok.Name),
			})
			continue
		}
		if tok.Suffix != variables.SuffixBase && baseOnlyNames[tok.Name] {
			warnings = append(warnings, Warning{
				Token:    tok.Raw,
				Variable: tok.Name,
				Reason:   ReasonSuffixNotAllowed,
				Message:  fmt.Sprintf("%s: %q does not support the .%s suffix", tok.Raw, tok.Name, tok.Suffix),
			})
		}
	}
	return warnings
}

// ForCatalog validates against a variable catalog's registry.
func ForCatalog(template string, cat *variables.Catalog, isEventTemplate bool) []Warning {
	return Validate(template, nameSet(cat.Names()), nameSet(cat.BaseOnlyNames()), isEventTemplate)
}

func nameSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
