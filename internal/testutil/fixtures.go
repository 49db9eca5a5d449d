package testutil

import (
	"github.com/sportsguide/epg-engine/internal/conditions"
	"github.com/sportsguide/epg-engine/internal/domain/guide"
	"github.com/sportsguide/epg-engine/internal/domain/templates"
)

// HomeTeam is the subject team used by context fixtures.
var HomeTeam = guide.Team{
	ID: "det", Name: "Lions", City: "Detroit", Abbreviation: "DET",
	Division: "North", Conference: "NFC",
	Record: guide.Record{Wins: 9, Losses: 3}, Rank: 4,
}

// AwayTeam is the opponent used by context fixtures.
var AwayTeam = guide.Team{
	ID: "chi", Name: "Bears", City: "Chicago", Abbreviation: "CHI",
	Division: "North", Conference: "NFC",
	Record: guide.Record{Wins: 5, Losses: 7},
}

// FullContext returns a context with every temporal view populated, sourced
// from the provider that carries rankings and odds.
func FullContext() guide.GameContext {
	current := &guide.GameView{
		Opponent:  AwayTeam,
		StartTime: "2024-11-28T17:30:00Z",
		Venue:     "Ford Field",
		Home:      true,
		Status:    guide.StatusScheduled,
		Broadcast: guide.Broadcast{Network: "NTN", National: true},
		HasOdds:   true,
		Spread:    "-7.5",
		WinStreak: 3,
	}
	return guide.GameContext{
		Team:     HomeTeam,
		Sport:    "football",
		League:   "NFL",
		Provider: conditions.ProviderStatnet,
		Role:     guide.RolePregame,
		Home:     true,
		Current:  current,
		Next: &guide.GameView{
			Opponent:  AwayTeam,
			StartTime: "2024-12-05T01:15:00Z",
			Venue:     "Soldier Field",
			Status:    guide.StatusScheduled,
			Broadcast: guide.Broadcast{Network: "Prime Night"},
		},
		Last: &guide.GameView{
			Opponent:  AwayTeam,
			StartTime: "2024-11-21T18:00:00Z",
			Status:    guide.StatusFinal,
			Score:     guide.Score{Team: 31, Opponent: 26},
			WinStreak: 3,
		},
	}
}

// IdleContext returns a context with no current game, as an off-day slot sees.
func IdleContext() guide.GameContext {
	ctx := FullContext()
	ctx.Role = guide.RoleIdle
	ctx.Current = nil
	return ctx
}

// SpecWithFallbacks builds a team spec from conditional entries plus the
// given fallback templates.
func SpecWithFallbacks(entries []templates.Entry, fallbackTemplates ...string) templates.Spec {
	spec := templates.Spec{ID: "test-spec", Kind: templates.KindTeam, Entries: entries}
	for _, tmpl := range fallbackTemplates {
		spec.Entries = append(spec.Entries, templates.Entry{
			Priority: templates.FallbackPriority,
			Template: tmpl,
		})
	}
	return spec
}
