package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/sportsguide/epg-engine/internal/conditions"
	"github.com/sportsguide/epg-engine/internal/logging"
	"github.com/sportsguide/epg-engine/internal/metrics"
	"github.com/sportsguide/epg-engine/internal/quality"
	"github.com/sportsguide/epg-engine/internal/render"
	"github.com/sportsguide/epg-engine/internal/resolver"
	"github.com/sportsguide/epg-engine/internal/schedule"
)

const (
	defaultInterval = 15 * time.Minute
	defaultWorkers  = 4
)

// ReportWriter persists run quality reports.
type ReportWriter interface {
	WriteRunReport(report quality.Report) error
}

// LineupStore receives the lineup snapshot each pass works from.
type LineupStore interface {
	SetLineup(lineup schedule.Lineup)
}

// Runner regenerates guide descriptions on an interval.
type Runner struct {
	provider schedule.LineupProvider
	store    LineupStore
	resolver *resolver.Resolver
	renderer *render.Renderer
	catalog  *conditions.Catalog
	writer   ReportWriter
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	workers  int
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Options collects the Runner's collaborators.
type Options struct {
	Provider schedule.LineupProvider
	Store    LineupStore
	Resolver *resolver.Resolver
	Renderer *render.Renderer
	Catalog  *conditions.Catalog
	Writer   ReportWriter
	Logger   *slog.Logger
	Metrics  *metrics.Recorder
	Interval time.Duration
	Workers  int
}

// Status describes the recent health of the generation loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastRunID           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the runner has had a recent success and is not
// failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Runner with sane defaults.
func New(opts Options) *Runner {
	interval := opts.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Runner{
		provider: opts.Provider,
		store:    opts.Store,
		resolver: opts.Resolver,
		renderer: opts.Renderer,
		catalog:  opts.Catalog,
		writer:   opts.Writer,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
		interval: interval,
		workers:  workers,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins generating until the context is cancelled or Stop is called.
func (r *Runner) Start(ctx context.Context) {
	r.startMu.Lock()
	if r.started {
		r.startMu.Unlock()
		return
	}
	r.started = true
	r.startMu.Unlock()

	r.ticker = time.NewTicker(r.interval)

	go func() {
		logging.Info(r.logger, "generation loop started",
			slog.Int64(logging.FieldDurationMS, r.interval.Milliseconds()))
		// Initial pass to warm the guide on boot.
		r.runPass(ctx)

		for {
			select {
			case <-ctx.Done():
				r.stopTicker()
				logging.Info(r.logger, "generation loop stopped")
				return
			case <-r.done:
				r.stopTicker()
				logging.Info(r.logger, "generation loop stopped")
				return
			case <-r.ticker.C:
				r.runPass(ctx)
			}
		}
	}()
}

// Stop halts the generation loop.
func (r *Runner) Stop(ctx context.Context) error {
	_ = ctx
	r.stopOnce.Do(func() {
		close(r.done)
		r.stopTicker()
	})
	return nil
}

func (r *Runner) runPass(ctx context.Context) {
	start := r.now()
	r.recordAttempt(start)

	report, _, err := r.RunOnce(ctx)
	if err != nil {
		logging.Error(r.logger, "generation pass failed", err,
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		r.recordFailure(err, start)
		return
	}
	r.recordSuccess(report.RunID, start)
}

func (r *Runner) stopTicker() {
	if r.ticker != nil {
		r.ticker.Stop()
	}
}

func (r *Runner) recordAttempt(at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.LastAttempt = at
}

func (r *Runner) recordSuccess(runID string, at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures = 0
	r.status.LastError = ""
	r.status.LastRunID = runID
	r.status.LastSuccess = at
}

func (r *Runner) recordFailure(err error, at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures++
	if err != nil {
		r.status.LastError = err.Error()
	}
	r.status.LastAttempt = at
}

// Status returns a snapshot of the runner's recent health.
func (r *Runner) Status() Status {
	r.statusMu.RLock()
	defer r.statusMu.RUnlock()
	return r.status
}
