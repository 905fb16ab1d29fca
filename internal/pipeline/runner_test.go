package pipeline

import (
	"context"
	"testing"
	"time"

	"kakeibo/internal/ledger"
)

func TestRunnerRunsExtraction(t *testing.T) {
	c := newTestCoordinator()
	engine := &fakeEngine{result: &Result{Items: []Item{{Name: "卵", Price: 298, Category: ledger.CategoryFood}}}}
	c.Register(EngineLocalOCR, engine)

	r := NewRunner(c)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Start(ctx)

	s := NewSession()
	done := make(chan error, 1)
	if err := r.Submit(ctx, s, EngineLocalOCR, []byte("png"), func(err error) { done <- err }); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("extraction failed: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("extraction did not complete")
	}

	if s.Len() != 1 {
		t.Fatalf("expected 1 staged item, got %d", s.Len())
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer stopCancel()
	if err := r.Stop(stopCtx); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
}

func TestRunnerSecondCaptureSupersedesQueued(t *testing.T) {
	c := newTestCoordinator()
	engine := &fakeEngine{result: &Result{Items: []Item{{Name: "x", Price: 100, Category: ledger.CategoryOther}}}}
	c.Register(EngineLocalOCR, engine)

	r := NewRunner(c)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := NewSession()

	// Two capture presses before the worker has started: the first queued
	// job is replaced, and only the second generation runs.
	if err := r.Submit(ctx, s, EngineLocalOCR, []byte("first"), nil); err != nil {
		t.Fatalf("first Submit failed: %v", err)
	}
	done := make(chan error, 1)
	if err := r.Submit(ctx, s, EngineLocalOCR, []byte("second"), func(err error) { done <- err }); err != nil {
		t.Fatalf("second Submit failed: %v", err)
	}

	r.Start(ctx)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("extraction did not complete")
	}

	if engine.calls != 1 {
		t.Errorf("engine ran %d times, want 1", engine.calls)
	}
	if s.Len() != 1 {
		t.Errorf("expected items staged exactly once, got %d", s.Len())
	}
}

func TestRunnerSubmitAfterStop(t *testing.T) {
	r := NewRunner(newTestCoordinator())
	ctx := context.Background()
	r.Start(ctx)

	if err := r.Stop(ctx); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if err := r.Submit(ctx, NewSession(), EngineLocalOCR, nil, nil); err == nil {
		t.Error("expected error submitting to a stopped runner")
	}
}
