package fixture

import (
	"context"
	"testing"
	"time"

	"github.com/sportsguide/epg-engine/internal/domain/guide"
)

func TestFetchLineupDeterministicForDate(t *testing.T) {
	p := New()

	first, err := p.FetchLineup(context.Background(), "2024-11-28")
	if err != nil {
		t.Fatalf("expected fetch to succeed, got %v", err)
	}
	second, err := p.FetchLineup(context.Background(), "2024-11-28")
	if err != nil {
		t.Fatalf("expected fetch to succeed, got %v", err)
	}

	if first.Date != "2024-11-28" || second.Date != first.Date {
		t.Fatalf("expected requested date echoed, got %q/%q", first.Date, second.Date)
	}
	if first.SlotCount() != second.SlotCount() {
		t.Fatalf("expected stable slot count, got %d vs %d", first.SlotCount(), second.SlotCount())
	}
}

func TestFetchLineupCoversAllRoles(t *testing.T) {
	p := New()
	p.now = func() time.Time { return time.Date(2024, 11, 28, 9, 0, 0, 0, time.UTC) }

	lineup, err := p.FetchLineup(context.Background(), "")
	if err != nil {
		t.Fatalf("expected fetch to succeed, got %v", err)
	}

	roles := map[guide.ProgramRole]bool{}
	for _, ch := range lineup.Channels {
		for _, slot := range ch.Slots {
			roles[slot.Role] = true
			if slot.Spec.ID == "" {
				t.Fatalf("expected every slot to carry a spec id, got %+v", slot)
			}
			if slot.Context.Role != slot.Role {
				t.Fatalf("expected context role to match slot role, got %+v", slot)
			}
		}
	}
	for _, role := range []guide.ProgramRole{guide.RolePregame, guide.RoleGame, guide.RolePostgame, guide.RoleIdle} {
		if !roles[role] {
			t.Fatalf("expected a %s slot in the fixture lineup", role)
		}
	}
}

func TestFetchLineupSpecsAlwaysHaveFallbacks(t *testing.T) {
	lineup, err := New().FetchLineup(context.Background(), "2024-11-28")
	if err != nil {
		t.Fatalf("expected fetch to succeed, got %v", err)
	}
	for _, ch := range lineup.Channels {
		for _, slot := range ch.Slots {
			if _, fallbacks := slot.Spec.Partition(); len(fallbacks) == 0 {
				t.Fatalf("fixture spec %s has no fallback", slot.Spec.ID)
			}
		}
	}
}
