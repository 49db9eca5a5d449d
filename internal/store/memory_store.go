package store

import (
	"sync"

	"github.com/sportsguide/epg-engine/internal/schedule"
)

// MemoryStore keeps a thread-safe snapshot of the current lineup in memory.
// The pipeline replaces it wholesale each pass; resolution reads it only.
type MemoryStore struct {
	mu     sync.RWMutex
	lineup schedule.Lineup
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Lineup returns the current lineup snapshot.
func (s *MemoryStore) Lineup() schedule.Lineup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lineup
}

// Channel retrieves a channel by ID.
func (s *MemoryStore) Channel(id string) (schedule.Channel, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.lineup.Channels {
		if ch.ID == id {
			return ch, true
		}
	}
	return schedule.Channel{}, false
}

// SetLineup replaces the existing lineup with a new snapshot.
func (s *MemoryStore) SetLineup(lineup schedule.Lineup) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lineup = lineup
}
