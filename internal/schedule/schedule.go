package schedule

import (
	"context"

	"github.com/sportsguide/epg-engine/internal/domain/guide"
	"github.com/sportsguide/epg-engine/internal/domain/templates"
)

// Slot is one program slot awaiting description text: the template spec
// authored for it and the materialized context to evaluate it against.
type Slot struct {
	ChannelID string            `json:"channelId"`
	ProgramID string            `json:"programId"`
	Role      guide.ProgramRole `json:"role"`
	Spec      templates.Spec    `json:"spec"`
	Context   guide.GameContext `json:"context"`
}

// Channel is one configured guide channel with its slots for the day.
type Channel struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slots []Slot `json:"slots"`
}

// Lineup is the full set of channels and slots for one generation pass.
type Lineup struct {
	Date     string    `json:"date"`
	Channels []Channel `json:"channels"`
}

// SlotCount returns the total number of slots across all channels.
func (l Lineup) SlotCount() int {
	n := 0
	for _, ch := range l.Channels {
		n += len(ch.Slots)
	}
	return n
}

// LineupProvider defines how the upstream pipeline supplies a lineup.
// Providers should interpret an empty date as "today".
type LineupProvider interface {
	FetchLineup(ctx context.Context, date string) (Lineup, error)
}
