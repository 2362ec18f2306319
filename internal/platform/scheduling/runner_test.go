package scheduling

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestRunner_RunsImmediatelyAndOnInterval(t *testing.T) {
	r := NewRunner(20*time.Millisecond, zerolog.Nop())

	var runs atomic.Int32
	r.Register(Job{Name: "count", Run: func(context.Context) {
		runs.Add(1)
	}})

	r.Start(context.Background())
	defer r.Stop()

	deadline := time.After(2 * time.Second)
	for runs.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("expected at least 3 runs, got %d", runs.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestRunner_StopCancelsContext(t *testing.T) {
	r := NewRunner(10*time.Millisecond, zerolog.Nop())

	var cancelled atomic.Bool
	r.Register(Job{Name: "watch", Run: func(ctx context.Context) {
		select {
		case <-ctx.Done():
			cancelled.Store(true)
		case <-time.After(5 * time.Second):
		}
	}})

	r.Start(context.Background())

	stopped := make(chan struct{})
	go func() {
		r.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
	if !cancelled.Load() {
		t.Fatal("job context was not cancelled")
	}
}

func TestRunner_JobsRegisteredAfterStartRun(t *testing.T) {
	r := NewRunner(10*time.Millisecond, zerolog.Nop())
	r.Start(context.Background())
	defer r.Stop()

	var runs atomic.Int32
	r.Register(Job{Name: "late", Run: func(context.Context) {
		runs.Add(1)
	}})

	deadline := time.After(2 * time.Second)
	for runs.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("late-registered job never ran")
		case <-time.After(5 * time.Millisecond):
		}
	}
}
