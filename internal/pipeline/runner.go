package pipeline

import (
	"context"
	"fmt"
	"sync"
)

// Runner executes extractions on a single worker goroutine so at most one
// is in flight at a time. A capture submitted while another is pending
// starts a new generation, so the superseded result is discarded when it
// arrives.
type Runner struct {
	coordinator *Coordinator
	jobs        chan scanJob
	closeChan   chan struct{}
	wg          sync.WaitGroup
	mu          sync.RWMutex
	closed      bool
}

type scanJob struct {
	session    *Session
	generation uint64
	engine     EngineID
	image      []byte
	done       func(error)
}

// NewRunner creates a runner delivering jobs to the given coordinator.
func NewRunner(c *Coordinator) *Runner {
	return &Runner{
		coordinator: c,
		jobs:        make(chan scanJob, 1),
		closeChan:   make(chan struct{}),
	}
}

// Start launches the worker goroutine.
func (r *Runner) Start(ctx context.Context) {
	r.wg.Add(1)
	go r.worker(ctx)
}

func (r *Runner) worker(ctx context.Context) {
	defer r.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.closeChan:
			return
		case job := <-r.jobs:
			err := r.coordinator.Extract(ctx, job.session, job.generation, job.engine, job.image)
			if job.done != nil {
				job.done(err)
			}
		}
	}
}

// Submit begins a new capture generation on the session and enqueues the
// extraction. done, if non-nil, is called from the worker goroutine when
// the extraction finishes.
func (r *Runner) Submit(ctx context.Context, session *Session, engine EngineID, image []byte, done func(error)) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return fmt.Errorf("runner is closed")
	}

	job := scanJob{
		session:    session,
		generation: session.Begin(),
		engine:     engine,
		image:      image,
		done:       done,
	}

	// A queued capture that has not started yet is superseded by this one;
	// drop it rather than blocking the caller.
	select {
	case <-r.jobs:
	default:
	}

	select {
	case r.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-r.closeChan:
		return fmt.Errorf("runner is closed")
	}
}

// Stop shuts down the worker and waits for an in-flight extraction to
// finish, or for the context to expire.
func (r *Runner) Stop(ctx context.Context) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	close(r.closeChan)
	r.mu.Unlock()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
