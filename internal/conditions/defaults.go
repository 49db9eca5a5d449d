package conditions

import (
	"strings"

	"github.com/sportsguide/epg-engine/internal/domain/guide"
	"github.com/sportsguide/epg-engine/internal/domain/templates"
)

// ProviderStatnet is the one sports-data source that supplies rankings and
// betting odds; conditions reading that data are scoped to it.
const ProviderStatnet = "statnet"

// DefaultDescriptors returns the built-in condition registry.
func DefaultDescriptors() []Descriptor {
	return []Descriptor{
		simple("is_home", "Team plays at home",
			func(ctx guide.GameContext, _ Arg) bool { return ctx.Home }),
		simple("is_away", "Team plays on the road",
			func(ctx guide.GameContext, _ Arg) bool { return !ctx.Home }),
		numeric("win_streak_at_least", "Team has won at least N straight",
			func(ctx guide.GameContext, arg Arg) bool {
				v := streakView(ctx)
				return v != nil && float64(v.WinStreak) >= arg.Number
			}),
		numeric("loss_streak_at_least", "Team has lost at least N straight",
			func(ctx guide.GameContext, arg Arg) bool {
				v := streakView(ctx)
				return v != nil && float64(v.LossStreak) >= arg.Number
			}),
		providerScoped(simple("is_ranked", "Team holds a ranking",
			func(ctx guide.GameContext, _ Arg) bool { return ctx.Team.Rank > 0 })),
		providerScoped(numeric("ranked_top", "Team is ranked within the top N",
			func(ctx guide.GameContext, arg Arg) bool {
				return ctx.Team.Rank > 0 && float64(ctx.Team.Rank) <= arg.Number
			})),
		providerScoped(simple("opponent_ranked", "Opponent holds a ranking",
			func(ctx guide.GameContext, _ Arg) bool {
				v := matchupView(ctx)
				return v != nil && v.Opponent.Rank > 0
			})),
		providerScoped(simple("has_odds", "Betting odds are available for the game",
			func(ctx guide.GameContext, _ Arg) bool {
				v := matchupView(ctx)
				return v != nil && v.HasOdds
			})),
		simple("is_national_broadcast", "Game airs on a national network",
			func(ctx guide.GameContext, _ Arg) bool {
				v := matchupView(ctx)
				return v != nil && v.Broadcast.National
			}),
		textual("network_is", "Game airs on the named network",
			func(ctx guide.GameContext, arg Arg) bool {
				v := matchupView(ctx)
				return v != nil && strings.EqualFold(v.Broadcast.Network, arg.Text)
			}),
		textual("opponent_is", "Opponent matches the named team",
			func(ctx guide.GameContext, arg Arg) bool {
				v := matchupView(ctx)
				if v == nil {
					return false
				}
				return strings.EqualFold(v.Opponent.Name, arg.Text) ||
					strings.EqualFold(v.Opponent.Abbreviation, arg.Text)
			}),
		simple("same_division", "Opponent shares the team's division",
			func(ctx guide.GameContext, _ Arg) bool {
				v := matchupView(ctx)
				return v != nil && ctx.Team.Division != "" &&
					strings.EqualFold(v.Opponent.Division, ctx.Team.Division)
			}),
		simple("same_conference", "Opponent shares the team's conference",
			func(ctx guide.GameContext, _ Arg) bool {
				v := matchupView(ctx)
				return v != nil && ctx.Team.Conference != "" &&
					strings.EqualFold(v.Opponent.Conference, ctx.Team.Conference)
			}),
		teamOnly(simple("won_last", "Team won its last game",
			func(ctx guide.GameContext, _ Arg) bool { return ctx.Last != nil && ctx.Last.Won() })),
		teamOnly(simple("lost_last", "Team lost its last game",
			func(ctx guide.GameContext, _ Arg) bool { return ctx.Last != nil && ctx.Last.Lost() })),
		teamOnly(simple("has_next_game", "A next game is on the schedule",
			func(ctx guide.GameContext, _ Arg) bool { return ctx.Next != nil })),
		textual("sport_is", "Context sport matches the named sport",
			func(ctx guide.GameContext, arg Arg) bool {
				return strings.EqualFold(ctx.Sport, arg.Text)
			}),
		textual("league_is", "Context league matches the named league",
			func(ctx guide.GameContext, arg Arg) bool {
				return strings.EqualFold(ctx.League, arg.Text)
			}),
	}
}

// DefaultCatalog returns a catalog over the built-in condition registry.
func DefaultCatalog() *Catalog {
	return NewCatalog(DefaultDescriptors())
}

func simple(name, description string, p Predicate) Descriptor {
	return Descriptor{
		Name:        name,
		Description: description,
		Scope:       ScopeUniversal,
		predicate:   p,
	}
}

func numeric(name, description string, p Predicate) Descriptor {
	d := simple(name, description, p)
	d.RequiresValue = true
	d.ValueType = ValueNumber
	return d
}

func textual(name, description string, p Predicate) Descriptor {
	d := simple(name, description, p)
	d.RequiresValue = true
	d.ValueType = ValueString
	return d
}

func providerScoped(d Descriptor) Descriptor {
	d.Scope = ScopeProvider
	d.Provider = ProviderStatnet
	return d
}

func teamOnly(d Descriptor) Descriptor {
	d.Kinds = []templates.Kind{templates.KindTeam}
	return d
}

// matchupView picks the view describing the game a slot is about: the
// current game when one exists, otherwise the next scheduled one.
func matchupView(ctx guide.GameContext) *guide.GameView {
	if ctx.Current != nil {
		return ctx.Current
	}
	return ctx.Next
}

// streakView prefers the freshest streak data available.
func streakView(ctx guide.GameContext) *guide.GameView {
	if ctx.Current != nil {
		return ctx.Current
	}
	if ctx.Last != nil {
		return ctx.Last
	}
	return ctx.Next
}
