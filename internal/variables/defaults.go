package variables

import (
	"fmt"
	"time"

	"github.com/sportsguide/epg-engine/internal/domain/guide"
	"github.com/sportsguide/epg-engine/internal/timeutil"
)

// Catalog categories as presented by the metadata surface.
const (
	CategoryTeam    = "team"
	CategoryMatchup = "matchup"
	CategoryGame    = "game"
	CategoryLeague  = "league"
)

// DefaultGroups returns the built-in variable registry.
func DefaultGroups() []Group {
	return []Group{
		{
			Category: CategoryTeam,
			Variables: []Descriptor{
				baseVar("team_name", "Team name, e.g. Lions", CategoryTeam,
					func(ctx guide.GameContext, _ *guide.GameView) (string, bool) {
						return nonEmpty(ctx.Team.Name)
					}),
				baseVar("team_city", "Team city, e.g. Detroit", CategoryTeam,
					func(ctx guide.GameContext, _ *guide.GameView) (string, bool) {
						return nonEmpty(ctx.Team.City)
					}),
				baseVar("team_abbr", "Team abbreviation, e.g. DET", CategoryTeam,
					func(ctx guide.GameContext, _ *guide.GameView) (string, bool) {
						return nonEmpty(ctx.Team.Abbreviation)
					}),
				baseVar("team_record", "Team record, e.g. 9-3", CategoryTeam,
					func(ctx guide.GameContext, _ *guide.GameView) (string, bool) {
						return formatRecord(ctx.Team.Record)
					}),
				baseVar("team_rank", "Team ranking when ranked", CategoryTeam,
					func(ctx guide.GameContext, _ *guide.GameView) (string, bool) {
						if ctx.Team.Rank <= 0 {
							return "", false
						}
						return fmt.Sprintf("#%d", ctx.Team.Rank), true
					}),
				temporalVar("win_streak", "Active win streak length", CategoryTeam,
					func(_ guide.GameContext, view *guide.GameView) (string, bool) {
						if view == nil || view.WinStreak <= 0 {
							return "", false
						}
						return fmt.Sprintf("%d", view.WinStreak), true
					}),
				temporalVar("loss_streak", "Active losing streak length", CategoryTeam,
					func(_ guide.GameContext, view *guide.GameView) (string, bool) {
						if view == nil || view.LossStreak <= 0 {
							return "", false
						}
						return fmt.Sprintf("%d", view.LossStreak), true
					}),
			},
		},
		{
			Category: CategoryMatchup,
			Variables: []Descriptor{
				temporalVar("opponent", "Opponent team name", CategoryMatchup, viewString(
					func(v *guide.GameView) string { return v.Opponent.Name })),
				temporalVar("opponent_city", "Opponent city", CategoryMatchup, viewString(
					func(v *guide.GameView) string { return v.Opponent.City })),
				temporalVar("opponent_abbr", "Opponent abbreviation", CategoryMatchup, viewString(
					func(v *guide.GameView) string { return v.Opponent.Abbreviation })),
				temporalVar("opponent_record", "Opponent record, e.g. 5-7", CategoryMatchup,
					func(_ guide.GameContext, view *guide.GameView) (string, bool) {
						if view == nil {
							return "", false
						}
						return formatRecord(view.Opponent.Record)
					}),
				temporalVar("opponent_rank", "Opponent ranking when ranked", CategoryMatchup,
					func(_ guide.GameContext, view *guide.GameView) (string, bool) {
						if view == nil || view.Opponent.Rank <= 0 {
							return "", false
						}
						return fmt.Sprintf("#%d", view.Opponent.Rank), true
					}),
				temporalVar("venue", "Venue for the game", CategoryMatchup, viewString(
					func(v *guide.GameView) string { return v.Venue })),
				temporalVar("home_away", `"home" or "away" for the game`, CategoryMatchup,
					func(_ guide.GameContext, view *guide.GameView) (string, bool) {
						if view == nil {
							return "", false
						}
						if view.Home {
							return "home", true
						}
						return "away", true
					}),
			},
		},
		{
			Category: CategoryGame,
			Variables: []Descriptor{
				temporalVar("game_time", "Game start time, e.g. 7:30 PM", CategoryGame, viewStart(timeutil.FormatClock)),
				temporalVar("game_date", "Game date, e.g. Saturday, March 9", CategoryGame, viewStart(timeutil.FormatLongDate)),
				temporalVar("game_day", "Game weekday name", CategoryGame, viewStart(timeutil.FormatDayName)),
				temporalVar("network", "Broadcast network for the game", CategoryGame, viewString(
					func(v *guide.GameView) string { return v.Broadcast.Network })),
				temporalVar("score", "Score once the game has started", CategoryGame,
					func(_ guide.GameContext, view *guide.GameView) (string, bool) {
						if view == nil || view.Status == guide.StatusScheduled {
							return "", false
						}
						return fmt.Sprintf("%d-%d", view.Score.Team, view.Score.Opponent), true
					}),
				temporalVar("result", "Final result, e.g. W 112-98", CategoryGame,
					func(_ guide.GameContext, view *guide.GameView) (string, bool) {
						if view == nil || view.Status != guide.StatusFinal {
							return "", false
						}
						letter := "L"
						if view.Won() {
							letter = "W"
						}
						return fmt.Sprintf("%s %d-%d", letter, view.Score.Team, view.Score.Opponent), true
					}),
				temporalVar("spread", "Point spread when odds are available", CategoryGame,
					func(_ guide.GameContext, view *guide.GameView) (string, bool) {
						if view == nil || !view.HasOdds {
							return "", false
						}
						return nonEmpty(view.Spread)
					}),
			},
		},
		{
			Category: CategoryLeague,
			Variables: []Descriptor{
				baseVar("sport", "Sport name, e.g. basketball", CategoryLeague,
					func(ctx guide.GameContext, _ *guide.GameView) (string, bool) {
						return nonEmpty(ctx.Sport)
					}),
				baseVar("league", "League name, e.g. NBA", CategoryLeague,
					func(ctx guide.GameContext, _ *guide.GameView) (string, bool) {
						return nonEmpty(ctx.League)
					}),
			},
		},
	}
}

// DefaultCatalog returns a catalog over the built-in variable registry.
func DefaultCatalog() *Catalog {
	return NewCatalog(DefaultGroups())
}

func baseVar(name, description, category string, resolve ResolveFunc) Descriptor {
	return Descriptor{
		Name:        name,
		Description: description,
		Category:    category,
		Suffixes:    BaseOnlySuffix,
		resolve:     resolve,
	}
}

func temporalVar(name, description, category string, resolve ResolveFunc) Descriptor {
	return Descriptor{
		Name:        name,
		Description: description,
		Category:    category,
		Suffixes:    AllSuffixes,
		resolve:     resolve,
	}
}

func viewString(get func(*guide.GameView) string) ResolveFunc {
	return func(_ guide.GameContext, view *guide.GameView) (string, bool) {
		if view == nil {
			return "", false
		}
		return nonEmpty(get(view))
	}
}

func viewStart(format func(t time.Time) string) ResolveFunc {
	return func(_ guide.GameContext, view *guide.GameView) (string, bool) {
		if view == nil || view.StartTime == "" {
			return "", false
		}
		start, err := timeutil.ParseStart(view.StartTime)
		if err != nil {
			return "", false
		}
		return format(start), true
	}
}

func nonEmpty(value string) (string, bool) {
	if value == "" {
		return "", false
	}
	return value, true
}

func formatRecord(r guide.Record) (string, bool) {
	if r.Wins == 0 && r.Losses == 0 {
		return "", false
	}
	return fmt.Sprintf("%d-%d", r.Wins, r.Losses), true
}
