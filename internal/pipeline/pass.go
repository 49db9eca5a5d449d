package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sportsguide/epg-engine/internal/domain/guide"
	"github.com/sportsguide/epg-engine/internal/logging"
	"github.com/sportsguide/epg-engine/internal/quality"
	"github.com/sportsguide/epg-engine/internal/render"
	"github.com/sportsguide/epg-engine/internal/resolver"
	"github.com/sportsguide/epg-engine/internal/schedule"
	"github.com/sportsguide/epg-engine/internal/timeutil"
)

// SlotResult is the resolved text for one program slot.
type SlotResult struct {
	ChannelID  string                   `json:"channelId"`
	ProgramID  string                   `json:"programId"`
	Role       guide.ProgramRole        `json:"role"`
	Text       string                   `json:"text"`
	Degraded   bool                     `json:"degraded,omitempty"`
	Unresolved []render.UnresolvedToken `json:"unresolved,omitempty"`
}

// RunOnce executes a single generation pass: fetch the lineup, refresh the
// store, resolve and render every slot across the worker pool, and write
// the run's quality report. A slot whose spec cannot resolve degrades to
// blank text and is reported; it never aborts the pass.
func (r *Runner) RunOnce(ctx context.Context) (quality.Report, []SlotResult, error) {
	start := time.Now()
	runID := uuid.NewString()
	date := timeutil.FormatDate(r.now().UTC())

	lineup, err := r.provider.FetchLineup(ctx, date)
	if r.metrics != nil {
		defer func() { r.metrics.RecordPassCycle(time.Since(start), err) }()
	}
	if err != nil {
		return quality.Report{}, nil, err
	}
	if r.store != nil {
		r.store.SetLineup(lineup)
	}
	r.warnUnknownConditions(lineup)

	slots := flatten(lineup)
	results := r.resolveAll(slots)

	report := quality.Report{
		RunID:       runID,
		Date:        lineup.Date,
		GeneratedAt: r.now().UTC(),
		Slots:       len(slots),
	}
	for _, res := range results {
		report.AddUnresolved(res.ChannelID, res.ProgramID, res.Unresolved)
	}
	for i, res := range results {
		if res.Degraded {
			report.Degraded = append(report.Degraded, quality.DegradedSlot{
				ChannelID:  res.ChannelID,
				ProgramID:  res.ProgramID,
				TemplateID: slots[i].Spec.ID,
				Reason:     "no fallback description",
			})
		}
	}

	if r.writer != nil {
		if writeErr := r.writer.WriteRunReport(report); writeErr != nil {
			logging.Error(r.logger, "quality report write failed", writeErr,
				slog.String(logging.FieldRunID, runID))
		}
	}

	logging.Info(r.logger, "generation pass complete",
		slog.String(logging.FieldRunID, runID),
		slog.String(logging.FieldDate, lineup.Date),
		slog.Int(logging.FieldCount, len(slots)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return report, results, nil
}

// resolveAll fans slots out to the worker pool. Contexts are immutable
// snapshots, so workers share nothing but the job channel; each worker owns
// its own rand source so fallback draws stay fair under concurrency.
func (r *Runner) resolveAll(slots []schedule.Slot) []SlotResult {
	workers := r.workers
	if workers <= 0 {
		workers = 1
	}
	if workers > len(slots) {
		workers = len(slots)
	}

	results := make([]SlotResult, len(slots))
	if len(slots) == 0 {
		return results
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rng := rand.New(rand.NewSource(rand.Int63()))
			for i := range jobs {
				results[i] = r.resolveSlot(slots[i], rng)
			}
		}()
	}
	for i := range slots {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}

func (r *Runner) resolveSlot(slot schedule.Slot, rng *rand.Rand) SlotResult {
	start := time.Now()
	result := SlotResult{
		ChannelID: slot.ChannelID,
		ProgramID: slot.ProgramID,
		Role:      slot.Role,
	}

	outcome, err := r.resolver.ResolveOutcome(slot.Spec, slot.Context, rng)
	if err != nil {
		// Safe default for the one affected slot; the pass continues.
		if errors.Is(err, resolver.ErrNoFallback) {
			logging.Error(r.logger, "template spec cannot resolve", err,
				slog.String(logging.FieldChannel, slot.ChannelID),
				slog.String(logging.FieldProgram, slot.ProgramID),
				slog.String(logging.FieldTemplate, slot.Spec.ID),
			)
		}
		result.Degraded = true
		if r.metrics != nil {
			r.metrics.RecordResolution(slot.ChannelID, time.Since(start), false, true)
		}
		return result
	}

	text, unresolved := r.renderer.Render(outcome.Template, slot.Context)
	result.Text = text
	result.Unresolved = unresolved

	if r.metrics != nil {
		r.metrics.RecordResolution(slot.ChannelID, time.Since(start), outcome.FromFallback, false)
		r.metrics.RecordUnresolvedTokens(slot.ChannelID, len(unresolved))
	}
	return result
}

// warnUnknownConditions logs rules referencing conditions absent from the
// catalog once per template at load time, not per resolution.
func (r *Runner) warnUnknownConditions(lineup schedule.Lineup) {
	if r.catalog == nil {
		return
	}
	seen := make(map[string]bool)
	for _, ch := range lineup.Channels {
		for _, slot := range ch.Slots {
			for _, name := range slot.Spec.ConditionNames() {
				if _, ok := r.catalog.Lookup(name); ok {
					continue
				}
				key := slot.Spec.ID + "\x00" + name
				if seen[key] {
					continue
				}
				seen[key] = true
				if r.metrics != nil {
					r.metrics.RecordUnknownCondition(name)
				}
				logging.Warn(r.logger, "template references unknown condition",
					slog.String(logging.FieldTemplate, slot.Spec.ID),
					slog.String(logging.FieldCondition, name),
				)
			}
		}
	}
}

func flatten(lineup schedule.Lineup) []schedule.Slot {
	slots := make([]schedule.Slot, 0, lineup.SlotCount())
	for _, ch := range lineup.Channels {
		slots = append(slots, ch.Slots...)
	}
	return slots
}
