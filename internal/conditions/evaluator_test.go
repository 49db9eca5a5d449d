package conditions

import (
	"testing"

	"github.com/sportsguide/epg-engine/internal/domain/guide"
)

func homeContext() guide.GameContext {
	return guide.GameContext{
		Team: guide.Team{
			ID: "det", Name: "Lions", Abbreviation: "DET",
			Division: "North", Conference: "NFC", Rank: 4,
		},
		Sport:    "football",
		League:   "NFL",
		Provider: ProviderStatnet,
		Home:     true,
		Current: &guide.GameView{
			Opponent: guide.Team{
				Name: "Bears", Abbreviation: "CHI",
				Division: "North", Conference: "NFC",
			},
			Home:      true,
			Status:    guide.StatusScheduled,
			Broadcast: guide.Broadcast{Network: "NTN", National: true},
			HasOdds:   true,
			WinStreak: 3,
		},
	}
}

func TestEvaluateUnknownConditionIsFalse(t *testing.T) {
	e := NewEvaluator(DefaultCatalog())
	if e.Evaluate("definitely_not_registered", "", homeContext()) {
		t.Fatal("expected unknown condition to evaluate false")
	}
}

func TestEvaluateMalformedValueIsFalse(t *testing.T) {
	e := NewEvaluator(DefaultCatalog())
	ctx := homeContext()

	if e.Evaluate("win_streak_at_least", "banana", ctx) {
		t.Fatal("expected unparsable number to evaluate false")
	}
	if e.Evaluate("win_streak_at_least", "", ctx) {
		t.Fatal("expected missing required value to evaluate false")
	}
	if e.Evaluate("opponent_is", "   ", ctx) {
		t.Fatal("expected blank string value to evaluate false")
	}
}

func TestEvaluateProviderScope(t *testing.T) {
	e := NewEvaluator(DefaultCatalog())

	ctx := homeContext()
	if !e.Evaluate("is_ranked", "", ctx) {
		t.Fatal("expected is_ranked true for the ranking provider")
	}

	ctx.Provider = "other-feed"
	if e.Evaluate("is_ranked", "", ctx) {
		t.Fatal("expected provider-scoped condition false for other providers")
	}
	// Universal conditions keep working regardless of source.
	if !e.Evaluate("is_home", "", ctx) {
		t.Fatal("expected universal condition unaffected by provider")
	}
}

func TestEvaluateHomeAway(t *testing.T) {
	e := NewEvaluator(DefaultCatalog())
	ctx := homeContext()

	if !e.Evaluate("is_home", "", ctx) {
		t.Fatal("expected is_home true")
	}
	if e.Evaluate("is_away", "", ctx) {
		t.Fatal("expected is_away false")
	}

	ctx.Home = false
	if !e.Evaluate("is_away", "", ctx) {
		t.Fatal("expected is_away true on the road")
	}
}

func TestEvaluateStreakThreshold(t *testing.T) {
	e := NewEvaluator(DefaultCatalog())
	ctx := homeContext()

	if !e.Evaluate("win_streak_at_least", "3", ctx) {
		t.Fatal("expected streak of 3 to satisfy threshold 3")
	}
	if e.Evaluate("win_streak_at_least", "4", ctx) {
		t.Fatal("expected streak of 3 to miss threshold 4")
	}
}

func TestEvaluateStreakFallsBackToLastView(t *testing.T) {
	e := NewEvaluator(DefaultCatalog())
	ctx := homeContext()
	ctx.Current = nil
	ctx.Last = &guide.GameView{Status: guide.StatusFinal, LossStreak: 2}

	if !e.Evaluate("loss_streak_at_least", "2", ctx) {
		t.Fatal("expected loss streak read from last view when no current game")
	}
}

func TestEvaluateOpponentMatching(t *testing.T) {
	e := NewEvaluator(DefaultCatalog())
	ctx := homeContext()

	if !e.Evaluate("opponent_is", "bears", ctx) {
		t.Fatal("expected case-insensitive name match")
	}
	if !e.Evaluate("opponent_is", "CHI", ctx) {
		t.Fatal("expected abbreviation match")
	}
	if e.Evaluate("opponent_is", "Packers", ctx) {
		t.Fatal("expected non-matching opponent false")
	}
}

func TestEvaluateRankedTop(t *testing.T) {
	e := NewEvaluator(DefaultCatalog())
	ctx := homeContext()

	if !e.Evaluate("ranked_top", "5", ctx) {
		t.Fatal("expected rank 4 within top 5")
	}
	if e.Evaluate("ranked_top", "3", ctx) {
		t.Fatal("expected rank 4 outside top 3")
	}

	ctx.Team.Rank = 0
	if e.Evaluate("ranked_top", "25", ctx) {
		t.Fatal("expected unranked team to miss ranked_top")
	}
}

func TestEvaluateDivisionAndBroadcast(t *testing.T) {
	e := NewEvaluator(DefaultCatalog())
	ctx := homeContext()

	if !e.Evaluate("same_division", "", ctx) {
		t.Fatal("expected divisional matchup true")
	}
	if !e.Evaluate("is_national_broadcast", "", ctx) {
		t.Fatal("expected national broadcast true")
	}
	if !e.Evaluate("network_is", "ntn", ctx) {
		t.Fatal("expected network match to be case-insensitive")
	}
}

func TestEvaluateLastGameResult(t *testing.T) {
	e := NewEvaluator(DefaultCatalog())
	ctx := homeContext()
	ctx.Last = &guide.GameView{
		Status: guide.StatusFinal,
		Score:  guide.Score{Team: 31, Opponent: 26},
	}

	if !e.Evaluate("won_last", "", ctx) {
		t.Fatal("expected won_last true after a win")
	}
	if e.Evaluate("lost_last", "", ctx) {
		t.Fatal("expected lost_last false after a win")
	}

	ctx.Last = nil
	if e.Evaluate("won_last", "", ctx) {
		t.Fatal("expected won_last false with no last game")
	}
}

func TestEvaluateNilReceiverSafe(t *testing.T) {
	var e *Evaluator
	if e.Evaluate("is_home", "", homeContext()) {
		t.Fatal("expected nil evaluator to report non-matching")
	}
}

func TestCatalogKindFiltering(t *testing.T) {
	c := DefaultCatalog()

	for _, d := range c.ForKind("EVENT") {
		switch d.Name {
		case "won_last", "lost_last", "has_next_game":
			t.Fatalf("expected %s to be excluded from event templates", d.Name)
		}
	}

	teamNames := map[string]bool{}
	for _, d := range c.ForKind("TEAM") {
		teamNames[d.Name] = true
	}
	if !teamNames["won_last"] || !teamNames["is_home"] {
		t.Fatalf("expected team templates to see the full registry, got %v", teamNames)
	}
}

func TestCatalogLookup(t *testing.T) {
	c := DefaultCatalog()

	d, ok := c.Lookup("win_streak_at_least")
	if !ok {
		t.Fatal("expected win_streak_at_least to be registered")
	}
	if !d.RequiresValue || d.ValueType != ValueNumber {
		t.Fatalf("unexpected descriptor shape: %+v", d)
	}

	if _, ok := c.Lookup("nope"); ok {
		t.Fatal("expected unknown name to miss")
	}
}
