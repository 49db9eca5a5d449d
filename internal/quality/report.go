package quality

import (
	"time"

	"github.com/sportsguide/epg-engine/internal/render"
)

// UnresolvedLocation pinpoints a placeholder left verbatim in one slot's
// rendered text.
type UnresolvedLocation struct {
	ChannelID string `json:"channelId"`
	ProgramID string `json:"programId"`
	Token     string `json:"token"`
}

// DegradedSlot records a slot that fell back to the safe default because
// its spec could not resolve.
type DegradedSlot struct {
	ChannelID  string `json:"channelId"`
	ProgramID  string `json:"programId"`
	TemplateID string `json:"templateId"`
	Reason     string `json:"reason"`
}

// Report summarizes one generation run for downstream quality analysis.
// Unresolved placeholders are a signal here, never an error.
type Report struct {
	RunID           string               `json:"runId"`
	Date            string               `json:"date"`
	GeneratedAt     time.Time            `json:"generatedAt"`
	Slots           int                  `json:"slots"`
	UnresolvedCount int                  `json:"unresolvedCount"`
	Unresolved      []UnresolvedLocation `json:"unresolved,omitempty"`
	Degraded        []DegradedSlot       `json:"degraded,omitempty"`
}

// AddUnresolved appends one slot's unresolved tokens to the report.
func (r *Report) AddUnresolved(channelID, programID string, tokens []render.UnresolvedToken) {
	for _, tok := range tokens {
		r.Unresolved = append(r.Unresolved, UnresolvedLocation{
			ChannelID: channelID,
			ProgramID: programID,
			Token:     tok.Token,
		})
	}
	r.UnresolvedCount += len(tokens)
}
