package channels

import "github.com/sportsguide/epg-engine/internal/schedule"

// Store defines the contract for holding the current lineup.
type Store interface {
	Lineup() schedule.Lineup
	Channel(id string) (schedule.Channel, bool)
	SetLineup(lineup schedule.Lineup)
}

// Service coordinates lineup reads using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Lineup returns the current lineup snapshot.
func (s *Service) Lineup() schedule.Lineup {
	return s.store.Lineup()
}

// ChannelByID returns a single channel if present.
func (s *Service) ChannelByID(id string) (schedule.Channel, bool) {
	return s.store.Channel(id)
}

// ReplaceLineup swaps the in-memory lineup with a new snapshot.
func (s *Service) ReplaceLineup(lineup schedule.Lineup) {
	s.store.SetLineup(lineup)
}
