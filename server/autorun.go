package server

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/giantgraph/simulation"
)

// runner adds one random connection per tick until stopped or maxSteps is
// reached. It keeps going past the giant-component threshold.
type runner struct {
	sim      *simulation.Simulation
	logger   *zap.Logger
	interval time.Duration
	maxSteps int

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	steps  int
}

func newRunner(sim *simulation.Simulation, logger *zap.Logger, interval time.Duration, maxSteps int) *runner {
	return &runner{sim: sim, logger: logger, interval: interval, maxSteps: maxSteps}
}

// start launches the ticker loop. Returns false when one is already running.
func (r *runner) start() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		return false
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	r.cancel, r.done, r.steps = cancel, done, 0
	go r.loop(ctx, cancel, done)
	r.logger.Info("auto-run started", zap.Duration("interval", r.interval), zap.Int("max_steps", r.maxSteps))

	return true
}

// stop cancels the loop and waits for it. Returns false when nothing ran.
func (r *runner) stop() bool {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	if cancel == nil {
		return false
	}
	cancel()
	<-done

	return true
}

// status reports whether a loop is active and how many steps it has taken.
func (r *runner) status() (bool, int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.cancel != nil, r.steps
}

func (r *runner) loop(ctx context.Context, cancel context.CancelFunc, done chan struct{}) {
	defer close(done)
	defer r.finish(cancel, done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if _, err := r.sim.AddRandomConnection(ctx); err != nil {
			if ctx.Err() == nil {
				r.logger.Warn("auto-run step failed", zap.Error(err))
			}
			return
		}

		r.mu.Lock()
		r.steps++
		steps := r.steps
		r.mu.Unlock()
		if r.maxSteps > 0 && steps >= r.maxSteps {
			r.logger.Info("auto-run reached max steps", zap.Int("steps", steps))
			return
		}
	}
}

// finish clears the running state when the loop ends on its own.
func (r *runner) finish(cancel context.CancelFunc, done chan struct{}) {
	r.mu.Lock()
	if r.done == done {
		r.cancel, r.done = nil, nil
	}
	r.mu.Unlock()
	cancel()
}
