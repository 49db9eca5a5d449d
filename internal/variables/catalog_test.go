package variables

import (
	"testing"

	"github.com/sportsguide/epg-engine/internal/domain/guide"
)

func sampleContext() guide.GameContext {
	return guide.GameContext{
		Team: guide.Team{
			Name: "Lions", City: "Detroit", Abbreviation: "DET",
			Record: guide.Record{Wins: 9, Losses: 3}, Rank: 4,
		},
		Sport:  "football",
		League: "NFL",
		Home:   true,
		Current: &guide.GameView{
			Opponent:  guide.Team{Name: "Bears", City: "Chicago", Record: guide.Record{Wins: 5, Losses: 7}},
			StartTime: "2024-11-28T17:30:00Z",
			Venue:     "Ford Field",
			Home:      true,
			Status:    guide.StatusScheduled,
			Broadcast: guide.Broadcast{Network: "NTN", National: true},
			HasOdds:   true,
			Spread:    "-7.5",
		},
		Next: &guide.GameView{
			Opponent:  guide.Team{Name: "Packers"},
			StartTime: "2024-12-05T01:15:00Z",
			Status:    guide.StatusScheduled,
		},
		Last: &guide.GameView{
			Opponent: guide.Team{Name: "Texans"},
			Status:   guide.StatusFinal,
			Score:    guide.Score{Team: 26, Opponent: 23},
		},
	}
}

func TestValueBaseVariables(t *testing.T) {
	c := DefaultCatalog()
	ctx := sampleContext()

	cases := map[string]string{
		"team_name":   "Lions",
		"team_city":   "Detroit",
		"team_record": "9-3",
		"team_rank":   "#4",
		"sport":       "football",
		"league":      "NFL",
		"opponent":    "Bears",
		"venue":       "Ford Field",
		"home_away":   "home",
		"network":     "NTN",
		"spread":      "-7.5",
		"game_time":   "5:30 PM",
		"game_day":    "Thursday",
	}
	for name, want := range cases {
		got, ok := c.Value(ctx, name, SuffixBase)
		if !ok {
			t.Fatalf("expected %s to resolve", name)
		}
		if got != want {
			t.Fatalf("%s: expected %q, got %q", name, want, got)
		}
	}
}

func TestValueTemporalViews(t *testing.T) {
	c := DefaultCatalog()
	ctx := sampleContext()

	if got, ok := c.Value(ctx, "opponent", SuffixNext); !ok || got != "Packers" {
		t.Fatalf("expected next opponent Packers, got %q ok=%v", got, ok)
	}
	if got, ok := c.Value(ctx, "opponent", SuffixLast); !ok || got != "Texans" {
		t.Fatalf("expected last opponent Texans, got %q ok=%v", got, ok)
	}
	if got, ok := c.Value(ctx, "result", SuffixLast); !ok || got != "W 26-23" {
		t.Fatalf("expected last result W 26-23, got %q ok=%v", got, ok)
	}
}

func TestValueMissingViewFails(t *testing.T) {
	c := DefaultCatalog()
	ctx := sampleContext()
	ctx.Next = nil

	if _, ok := c.Value(ctx, "opponent", SuffixNext); ok {
		t.Fatal("expected missing next view to fail resolution")
	}

	ctx.Current = nil
	if _, ok := c.Value(ctx, "opponent", SuffixBase); ok {
		t.Fatal("expected missing current view to fail resolution")
	}
	// Context-scoped variables resolve without any view.
	if got, ok := c.Value(ctx, "team_name", SuffixBase); !ok || got != "Lions" {
		t.Fatalf("expected team_name independent of views, got %q ok=%v", got, ok)
	}
}

func TestValueSuffixOnBaseOnlyVariableFails(t *testing.T) {
	c := DefaultCatalog()
	if _, ok := c.Value(sampleContext(), "sport", SuffixNext); ok {
		t.Fatal("expected base-only variable to reject .next")
	}
}

func TestLookupCaseInsensitiveFallback(t *testing.T) {
	c := DefaultCatalog()

	if _, ok := c.Lookup("team_name"); !ok {
		t.Fatal("expected exact lookup to hit")
	}
	d, ok := c.Lookup("Team_Name")
	if !ok {
		t.Fatal("expected case-insensitive fallback to hit")
	}
	if d.Name != "team_name" {
		t.Fatalf("expected canonical descriptor, got %q", d.Name)
	}
	if _, ok := c.Lookup("team_nickname"); ok {
		t.Fatal("expected unknown name to miss")
	}
}

func TestValueUnrankedAndNoOdds(t *testing.T) {
	c := DefaultCatalog()
	ctx := sampleContext()
	ctx.Team.Rank = 0
	ctx.Current.HasOdds = false

	if _, ok := c.Value(ctx, "team_rank", SuffixBase); ok {
		t.Fatal("expected unranked team_rank to fail resolution")
	}
	if _, ok := c.Value(ctx, "spread", SuffixBase); ok {
		t.Fatal("expected spread without odds to fail resolution")
	}
	if _, ok := c.Value(ctx, "score", SuffixBase); ok {
		t.Fatal("expected score of a scheduled game to fail resolution")
	}
}

func TestBaseOnlyNames(t *testing.T) {
	c := DefaultCatalog()
	baseOnly := map[string]bool{}
	for _, n := range c.BaseOnlyNames() {
		baseOnly[n] = true
	}
	if !baseOnly["sport"] || !baseOnly["team_name"] {
		t.Fatalf("expected sport and team_name base-only, got %v", baseOnly)
	}
	if baseOnly["opponent"] {
		t.Fatal("expected opponent to support suffixes")
	}
}
