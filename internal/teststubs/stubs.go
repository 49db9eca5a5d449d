package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/sportsguide/epg-engine/internal/quality"
	"github.com/sportsguide/epg-engine/internal/schedule"
)

// StubLineupProvider is a test double for schedule.LineupProvider.
type StubLineupProvider struct {
	Lineup schedule.Lineup
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}
}

// FetchLineup returns the configured lineup and error while tracking calls.
func (s *StubLineupProvider) FetchLineup(ctx context.Context, date string) (schedule.Lineup, error) {
	_ = ctx
	_ = date
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	return s.Lineup, s.Err
}

// StubReportWriter is a test double for pipeline.ReportWriter.
type StubReportWriter struct {
	mu      sync.Mutex
	Reports []quality.Report
	Err     error
}

// WriteRunReport records the report and returns the configured error.
func (s *StubReportWriter) WriteRunReport(report quality.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.Reports = append(s.Reports, report)
	return nil
}

// Written returns a copy of the recorded reports.
func (s *StubReportWriter) Written() []quality.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]quality.Report, len(s.Reports))
	copy(out, s.Reports)
	return out
}

// StubLineupStore is a test double for pipeline.LineupStore.
type StubLineupStore struct {
	mu      sync.Mutex
	Lineups []schedule.Lineup
}

// SetLineup records each snapshot it receives.
func (s *StubLineupStore) SetLineup(lineup schedule.Lineup) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Lineups = append(s.Lineups, lineup)
}

// Last returns the most recent snapshot, if any.
func (s *StubLineupStore) Last() (schedule.Lineup, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Lineups) == 0 {
		return schedule.Lineup{}, false
	}
	return s.Lineups[len(s.Lineups)-1], true
}
