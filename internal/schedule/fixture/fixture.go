// Package fixture supplies a deterministic sample lineup useful for local
// runs and bootstrapping before the real schedule pipeline is wired in.
package fixture

import (
	"context"
	"time"

	"github.com/sportsguide/epg-engine/internal/conditions"
	"github.com/sportsguide/epg-engine/internal/domain/guide"
	"github.com/sportsguide/epg-engine/internal/domain/templates"
	"github.com/sportsguide/epg-engine/internal/schedule"
	"github.com/sportsguide/epg-engine/internal/timeutil"
)

// Provider returns a static lineup with one slot per program role.
type Provider struct {
	now func() time.Time
}

// New creates a fixture lineup provider with a time source.
func New() *Provider {
	return &Provider{now: time.Now}
}

// FetchLineup returns a deterministic two-channel lineup for the date.
func (p *Provider) FetchLineup(ctx context.Context, date string) (schedule.Lineup, error) {
	_ = ctx

	day := p.now().UTC().Truncate(24 * time.Hour)
	if date != "" {
		if parsed, err := timeutil.ParseDate(date); err == nil {
			day = parsed.UTC()
		}
	}
	tipoff := day.Add(19 * time.Hour)

	celtics := guide.Team{
		ID: "bos", Name: "Celtics", City: "Boston", Abbreviation: "BOS",
		Division: "Atlantic", Conference: "East",
		Record: guide.Record{Wins: 12, Losses: 4}, Rank: 3,
	}
	lakers := guide.Team{
		ID: "lal", Name: "Lakers", City: "Los Angeles", Abbreviation: "LAL",
		Division: "Pacific", Conference: "West",
		Record: guide.Record{Wins: 10, Losses: 6}, Rank: 8,
	}
	heat := guide.Team{
		ID: "mia", Name: "Heat", City: "Miami", Abbreviation: "MIA",
		Division: "Southeast", Conference: "East",
		Record: guide.Record{Wins: 7, Losses: 9},
	}

	tonight := &guide.GameView{
		Opponent:  lakers,
		StartTime: tipoff.Format(time.RFC3339),
		Venue:     "TD Garden",
		Home:      true,
		Status:    guide.StatusScheduled,
		Broadcast: guide.Broadcast{Network: "NTN", National: true},
		HasOdds:   true,
		Spread:    "-3.5",
		WinStreak: 4,
	}
	lastNight := &guide.GameView{
		Opponent:  heat,
		StartTime: tipoff.Add(-48 * time.Hour).Format(time.RFC3339),
		Venue:     "Kaseya Center",
		Status:    guide.StatusFinal,
		Score:     guide.Score{Team: 112, Opponent: 98},
		WinStreak: 4,
	}

	celticsCtx := guide.GameContext{
		Team:     celtics,
		Sport:    "basketball",
		League:   "NBA",
		Provider: conditions.ProviderStatnet,
		Home:     true,
		Current:  tonight,
		Next: &guide.GameView{
			Opponent:  heat,
			StartTime: tipoff.Add(72 * time.Hour).Format(time.RFC3339),
			Venue:     "TD Garden",
			Home:      true,
			Status:    guide.StatusScheduled,
			Broadcast: guide.Broadcast{Network: "East Sports Net"},
		},
		Last: lastNight,
	}

	heatIdleCtx := guide.GameContext{
		Team:     heat,
		Sport:    "basketball",
		League:   "NBA",
		Provider: "fixture",
		Next: &guide.GameView{
			Opponent:  celtics,
			StartTime: tipoff.Add(72 * time.Hour).Format(time.RFC3339),
			Venue:     "TD Garden",
			Status:    guide.StatusScheduled,
		},
		Last: &guide.GameView{
			Opponent:   celtics,
			StartTime:  tipoff.Add(-48 * time.Hour).Format(time.RFC3339),
			Status:     guide.StatusFinal,
			Score:      guide.Score{Team: 98, Opponent: 112},
			LossStreak: 2,
		},
	}

	lineup := schedule.Lineup{
		Date: timeutil.FormatDate(day),
		Channels: []schedule.Channel{
			{
				ID:   "ch-bos",
				Name: "Celtics Channel",
				Slots: []schedule.Slot{
					{
						ChannelID: "ch-bos",
						ProgramID: "bos-pre",
						Role:      guide.RolePregame,
						Spec:      pregameSpec(),
						Context:   withRole(celticsCtx, guide.RolePregame),
					},
					{
						ChannelID: "ch-bos",
						ProgramID: "bos-game",
						Role:      guide.RoleGame,
						Spec:      gameSpec(),
						Context:   withRole(celticsCtx, guide.RoleGame),
					},
					{
						ChannelID: "ch-bos",
						ProgramID: "bos-post",
						Role:      guide.RolePostgame,
						Spec:      postgameSpec(),
						Context:   withRole(celticsCtx, guide.RolePostgame),
					},
				},
			},
			{
				ID:   "ch-mia",
				Name: "Heat Channel",
				Slots: []schedule.Slot{
					{
						ChannelID: "ch-mia",
						ProgramID: "mia-idle",
						Role:      guide.RoleIdle,
						Spec:      idleSpec(),
						Context:   withRole(heatIdleCtx, guide.RoleIdle),
					},
				},
			},
		},
	}
	return lineup, nil
}

func withRole(ctx guide.GameContext, role guide.ProgramRole) guide.GameContext {
	ctx.Role = role
	return ctx
}

func pregameSpec() templates.Spec {
	return templates.Spec{
		ID:    "fixture-pregame",
		Label: "Pregame",
		Kind:  templates.KindTeam,
		Entries: []templates.Entry{
			{Condition: "win_streak_at_least", Value: "3", Priority: 10, Label: "hot streak",
				Template: "The streaking {team_name} ({team_record}) host the {opponent} at {game_time}, riding a {win_streak}-game run."},
			{Condition: "is_home", Priority: 20, Label: "home tip",
				Template: "{team_city} welcomes the {opponent} to {venue}. Tipoff at {game_time} on {network}."},
			{Priority: templates.FallbackPriority,
				Template: "{team_name} take on the {opponent} today at {game_time}."},
		},
	}
}

func gameSpec() templates.Spec {
	return templates.Spec{
		ID:    "fixture-game",
		Label: "Live game",
		Kind:  templates.KindEvent,
		Entries: []templates.Entry{
			{Condition: "has_odds", Priority: 10, Label: "with line",
				Template: "{team_name} vs {opponent} live from {venue}. {team_name} enter at {spread}."},
			{Condition: "is_national_broadcast", Priority: 20,
				Template: "{team_name} vs {opponent}, live nationally on {network}."},
			{Priority: templates.FallbackPriority,
				Template: "{team_name} vs {opponent}, live from {venue}."},
		},
	}
}

func postgameSpec() templates.Spec {
	return templates.Spec{
		ID:    "fixture-postgame",
		Label: "Postgame",
		Kind:  templates.KindTeam,
		Entries: []templates.Entry{
			{Condition: "won_last", Priority: 10, Label: "after a win",
				Template: "Reaction and highlights after the {team_name} beat the {opponent.last} ({result.last})."},
			{Condition: "lost_last", Priority: 10, Label: "after a loss",
				Template: "Full breakdown of the {team_name} falling to the {opponent.last}."},
			{Priority: templates.FallbackPriority,
				Template: "Postgame coverage of {team_city} {team_name} basketball."},
		},
	}
}

func idleSpec() templates.Spec {
	return templates.Spec{
		ID:    "fixture-idle",
		Label: "Off day",
		Kind:  templates.KindTeam,
		Entries: []templates.Entry{
			{Condition: "loss_streak_at_least", Value: "2", Priority: 10, Label: "skid watch",
				Template: "The {team_name} look to regroup before facing the {opponent.next} on {game_day.next}."},
			{Priority: templates.FallbackPriority,
				Template: "No game today. {team_name} return {game_day.next} against the {opponent.next}."},
			{Priority: templates.FallbackPriority,
				Template: "{team_city} {team_name} programming continues all day."},
			{Priority: templates.FallbackPriority,
				Template: "Catch up on {team_name} classics before {game_date.next}."},
		},
	}
}
