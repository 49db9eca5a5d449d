package store

import (
	"testing"

	"github.com/sportsguide/epg-engine/internal/schedule"
)

func TestMemoryStoreSetAndGet(t *testing.T) {
	s := NewMemoryStore()

	s.SetLineup(schedule.Lineup{
		Date: "2024-11-28",
		Channels: []schedule.Channel{
			{ID: "ch-1", Name: "One"},
			{ID: "ch-2", Name: "Two"},
		},
	})

	if got := len(s.Lineup().Channels); got != 2 {
		t.Fatalf("expected 2 channels, got %d", got)
	}

	ch, ok := s.Channel("ch-1")
	if !ok {
		t.Fatalf("expected to find channel ch-1")
	}
	if ch.Name != "One" {
		t.Fatalf("unexpected channel %+v", ch)
	}
}

func TestMemoryStoreChannelNotFound(t *testing.T) {
	s := NewMemoryStore()
	if _, ok := s.Channel("missing"); ok {
		t.Fatalf("expected missing id to return false")
	}
}

func TestMemoryStoreSetReplacesSnapshot(t *testing.T) {
	s := NewMemoryStore()
	s.SetLineup(schedule.Lineup{Channels: []schedule.Channel{{ID: "old"}}})

	s.SetLineup(schedule.Lineup{Channels: []schedule.Channel{{ID: "new"}}})

	if _, ok := s.Channel("old"); ok {
		t.Fatalf("expected old channel to be removed after replace")
	}
	if _, ok := s.Channel("new"); !ok {
		t.Fatalf("expected new channel present")
	}
}
