package maneuver

import (
	"context"
	"sync"
	"time"

	"github.com/oshokin/rover-guard/internal/domain/maneuver"
	"github.com/oshokin/rover-guard/internal/logger"
	"github.com/oshokin/rover-guard/internal/sink"
)

// Executor drives the maneuver state machine against real time and a motion
// sink. It admits one invocation at a time; Cancel and Active may be called
// from any goroutine.
type Executor struct {
	plan maneuver.Plan
	sink sink.Sink

	mu      sync.Mutex
	machine *maneuver.Machine
}

// NewExecutor returns an idle executor.
func NewExecutor(plan maneuver.Plan, s sink.Sink) *Executor {
	return &Executor{
		plan: plan,
		sink: s,
	}
}

// Active reports whether an invocation is in flight.
func (e *Executor) Active() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.machine != nil
}

// Cancel asks the running invocation to stop and reports whether one was
// running. Cancellation is cooperative: the driver observes it on the next
// sub-tick, emits a final zero command and terminates. Calling Cancel with
// nothing running is a no-op.
func (e *Executor) Cancel() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.machine == nil {
		return false
	}

	e.machine.RequestCancel()

	return true
}

// Run executes one full maneuver on the calling goroutine and returns its
// outcome. Feedback fires at every phase boundary when non-nil. Context
// cancellation is treated like Cancel: the machine winds down through its
// terminal zero command before Run returns.
func (e *Executor) Run(ctx context.Context, feedback maneuver.FeedbackFunc) (maneuver.Outcome, error) {
	e.mu.Lock()

	if e.machine != nil {
		e.mu.Unlock()

		return 0, maneuver.ErrAlreadyRunning
	}

	machine := maneuver.NewMachine(e.plan)
	e.machine = machine
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.machine = nil
		e.mu.Unlock()
	}()

	logger.InfoKV(ctx, "maneuver started",
		"cycles", e.plan.Cycles,
		"angular_rate", e.plan.AngularRate)

	// The final zero command must reach the sink even when ctx is already
	// canceled, so publishes use a detached copy.
	sinkCtx := context.WithoutCancel(ctx)

	for {
		e.mu.Lock()
		step := machine.Advance()
		e.mu.Unlock()

		if err := e.sink.Publish(sinkCtx, step.Command); err != nil {
			logger.ErrorKV(ctx, "failed to publish maneuver command", "error", err)
		}

		if step.Terminal {
			logger.InfoKV(ctx, "maneuver finished", "outcome", outcomeLabel(step.Outcome))

			return step.Outcome, nil
		}

		if step.Announce && feedback != nil {
			feedback(maneuver.Feedback{Phase: step.Phase, Cycle: step.Cycle})
		}

		select {
		case <-ctx.Done():
			e.mu.Lock()
			machine.RequestCancel()
			e.mu.Unlock()
		case <-time.After(step.Wait):
		}
	}
}

// outcomeLabel renders an outcome for logging.
func outcomeLabel(o maneuver.Outcome) string {
	if o == maneuver.OutcomeCanceled {
		return "canceled"
	}

	return "succeeded"
}
