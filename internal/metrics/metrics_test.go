package metrics

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRecorderResolutionStats(t *testing.T) {
	r := NewRecorder()

	r.RecordResolution("ch-1", 2*time.Millisecond, false, false)
	r.RecordResolution("ch-1", 3*time.Millisecond, true, false)
	r.RecordResolution("ch-1", time.Millisecond, false, true)
	r.RecordUnresolvedTokens("ch-1", 2)

	snap := r.Snapshot("ch-1")
	if snap.Resolutions != 3 {
		t.Fatalf("expected 3 resolutions, got %d", snap.Resolutions)
	}
	if snap.FallbackDraws != 1 {
		t.Fatalf("expected 1 fallback draw, got %d", snap.FallbackDraws)
	}
	if snap.DegradedSlots != 1 {
		t.Fatalf("expected 1 degraded slot, got %d", snap.DegradedSlots)
	}
	if snap.UnresolvedTokens != 2 {
		t.Fatalf("expected 2 unresolved tokens, got %d", snap.UnresolvedTokens)
	}
	if snap.LastResolveTime != time.Millisecond {
		t.Fatalf("expected last latency stored, got %v", snap.LastResolveTime)
	}
}

func TestRecorderUnresolvedIgnoresNonPositive(t *testing.T) {
	r := NewRecorder()
	r.RecordUnresolvedTokens("ch-1", 0)
	r.RecordUnresolvedTokens("ch-1", -3)
	if snap := r.Snapshot("ch-1"); snap.UnresolvedTokens != 0 {
		t.Fatalf("expected no unresolved recorded, got %+v", snap)
	}
}

func TestRecorderUnknownConditions(t *testing.T) {
	r := NewRecorder()
	r.RecordUnknownCondition("ghost")
	r.RecordUnknownCondition("ghost")
	if got := r.UnknownConditionCount("ghost"); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := r.UnknownConditionCount("other"); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestRecorderPassCycles(t *testing.T) {
	r := NewRecorder()
	r.RecordPassCycle(time.Second, nil)
	r.RecordPassCycle(time.Second, errors.New("boom"))
	if r.PassCycles() != 2 || r.PassErrors() != 1 {
		t.Fatalf("unexpected pass stats cycles=%d errors=%d", r.PassCycles(), r.PassErrors())
	}
}

func TestRecorderNilReceiverSafe(t *testing.T) {
	var r *Recorder
	r.RecordResolution("ch", time.Second, true, true)
	r.RecordUnresolvedTokens("ch", 1)
	r.RecordUnknownCondition("x")
	r.RecordPassCycle(time.Second, nil)
	if r.PassCycles() != 0 {
		t.Fatal("expected zero stats from nil recorder")
	}
	if snap := r.Snapshot("ch"); snap.Resolutions != 0 {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
}

func TestSetupDisabledReturnsRecorder(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("expected disabled setup to succeed, got %v", err)
	}
	if rec == nil {
		t.Fatal("expected recorder even when disabled")
	}
	if handler != nil {
		t.Fatal("expected no prometheus handler when disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected no-op shutdown, got %v", err)
	}
}

func TestSetupEnabledBuildsInstruments(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true, ServiceName: "test"})
	if err != nil {
		t.Fatalf("expected setup to succeed, got %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			t.Fatalf("expected shutdown to succeed, got %v", err)
		}
	}()

	if handler == nil {
		t.Fatal("expected prometheus handler")
	}
	if rec == nil || rec.otel == nil {
		t.Fatal("expected recorder wired to otel instruments")
	}

	// Exercise the otel paths once.
	rec.RecordResolution("ch", time.Millisecond, true, false)
	rec.RecordUnresolvedTokens("ch", 1)
	rec.RecordUnknownCondition("ghost")
	rec.RecordPassCycle(time.Second, errors.New("boom"))
}
