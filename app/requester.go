package app

import (
	"context"
	"sync"
	"time"
)

// Outcome is what a finished cycle delivers to the consumer: either a
// Result or the error that aborted it.
type Outcome struct {
	City   string
	Result Result
	Err    error
}

// Requester serializes fetch cycles into a single-writer handoff. A
// new request cancels the in-flight cycle, and a superseded cycle
// never delivers its result, so concurrent fetches cannot interleave
// their writes into display state.
type Requester struct {
	app     *App
	timeout time.Duration
	results chan Outcome

	mu     sync.Mutex
	cancel context.CancelFunc
	gen    uint64
}

// NewRequester creates a requester delivering outcomes on Results().
// timeout bounds each individual cycle.
func NewRequester(app *App, timeout time.Duration) *Requester {
	return &Requester{
		app:     app,
		timeout: timeout,
		results: make(chan Outcome, 1),
	}
}

// Results returns the channel outcomes are delivered on.
func (r *Requester) Results() <-chan Outcome {
	return r.results
}

// Request starts a fetch cycle for city, superseding any cycle still
// in flight.
func (r *Requester) Request(ctx context.Context, city string) {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	cycleCtx, cancel := context.WithTimeout(ctx, r.timeout)
	r.cancel = cancel
	r.gen++
	gen := r.gen
	r.mu.Unlock()

	go func() {
		defer cancel()
		result, err := r.app.RunCycle(cycleCtx, city)

		r.mu.Lock()
		stale := gen != r.gen
		r.mu.Unlock()
		if stale {
			// A newer request superseded this cycle; drop the outcome.
			return
		}

		select {
		case r.results <- Outcome{City: city, Result: result, Err: err}:
		case <-ctx.Done():
		}
	}()
}

// Stop cancels any in-flight cycle.
func (r *Requester) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
	}
	r.gen++
}
