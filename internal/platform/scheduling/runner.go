// Package scheduling runs background jobs on a fixed interval with
// context cancellation.
package scheduling

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Job is a unit of periodic work. Jobs receive the runner's context and
// are responsible for their own error handling.
type Job struct {
	Name string
	Run  func(ctx context.Context)
}

// Runner executes registered jobs every interval until stopped.
type Runner struct {
	interval time.Duration
	logger   zerolog.Logger

	mu   sync.Mutex
	jobs []Job

	cancel context.CancelFunc
	done   chan struct{}
}

func NewRunner(interval time.Duration, logger zerolog.Logger) *Runner {
	return &Runner{
		interval: interval,
		logger:   logger.With().Str("component", "scheduler").Logger(),
	}
}

// Register adds a job. Jobs registered after Start are picked up on the
// next tick.
func (r *Runner) Register(job Job) {
	r.mu.Lock()
	r.jobs = append(r.jobs, job)
	r.mu.Unlock()
}

// Start launches the tick loop. Each job runs once immediately, then on
// every interval. Start returns after launching the loop goroutine.
func (r *Runner) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})

	go func() {
		defer close(r.done)

		r.runAll(ctx)

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.runAll(ctx)
			}
		}
	}()
}

func (r *Runner) runAll(ctx context.Context) {
	r.mu.Lock()
	jobs := make([]Job, len(r.jobs))
	copy(jobs, r.jobs)
	r.mu.Unlock()

	for _, job := range jobs {
		if ctx.Err() != nil {
			return
		}
		started := time.Now()
		job.Run(ctx)
		r.logger.Debug().Str("job", job.Name).Dur("took", time.Since(started)).Msg("job complete")
	}
}

// Stop cancels the loop and waits for the current tick to finish.
func (r *Runner) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
}
