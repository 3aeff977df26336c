package maneuver

import (
	"time"

	"github.com/oshokin/rover-guard/internal/domain/motion"
)

// State is the lifecycle state of one maneuver invocation.
type State int

// Maneuver lifecycle states.
const (
	// StateRunning means the machine is progressing through cycles.
	StateRunning State = iota
	// StateCanceling means cancellation was requested but the final stop
	// command has not been emitted yet.
	StateCanceling
	// StateSucceeded means all cycles completed; terminal.
	StateSucceeded
	// StateCanceled means the maneuver was canceled; terminal.
	StateCanceled
)

// Outcome is the terminal result of a maneuver invocation.
type Outcome int

// Terminal outcomes.
const (
	// OutcomeSucceeded reports a maneuver that ran all cycles to completion.
	OutcomeSucceeded Outcome = iota
	// OutcomeCanceled reports a maneuver stopped by a cancellation request.
	OutcomeCanceled
)

// Phase is the coarse label carried by feedback events.
type Phase string

// Maneuver phases.
const (
	// PhaseRotate is the active phase: the robot turns in place.
	PhaseRotate Phase = "rotate"
	// PhasePause is the rest phase between cycles.
	PhasePause Phase = "pause"
)

// Plan fixes the shape of the evasive maneuver.
type Plan struct {
	// Cycles is the number of rotate-and-pause cycles.
	Cycles int
	// Subticks is the number of sub-ticks in each active phase.
	Subticks int
	// SubtickPeriod is how long each active sub-tick command stays in effect.
	SubtickPeriod time.Duration
	// PausePeriod is how long the pause command stays in effect.
	PausePeriod time.Duration
	// AngularRate is the rotation rate commanded during active sub-ticks.
	AngularRate float64
}

// Step is the result of advancing the machine by one tick. The driver emits
// Command to the motion sink, sleeps for Wait, and advances again; on a
// terminal step it stops driving and reports Outcome.
type Step struct {
	// Command is the motion command to emit for this tick.
	Command motion.Command
	// Wait is how long the driver should sleep before the next advance.
	// Zero on terminal steps.
	Wait time.Duration
	// Cycle is the 1-based cycle this step belongs to (0 on the final step).
	Cycle int
	// Subtick is the 1-based sub-tick within the active phase, 0 in pause.
	Subtick int
	// Phase labels the step for feedback purposes.
	Phase Phase
	// Announce marks a phase boundary, i.e. a feedback event should be sent.
	Announce bool
	// Terminal marks the last step of the invocation.
	Terminal bool
	// Outcome is valid only when Terminal is true.
	Outcome Outcome
}

// Machine is the explicit maneuver state machine. It carries no clock and
// performs no I/O: an external driver advances it tick by tick, emitting the
// returned commands and sleeping the returned durations. Cancellation is
// cooperative and observed on the next advance, never mid-step.
//
// Machine is not safe for concurrent use; RequestCancel is the only method
// intended to be called from another goroutine and is serialized by the
// driver owning the machine.
type Machine struct {
	plan    Plan
	state   State
	cycle   int // 0-based completed-or-current cycle index
	subtick int // 0-based next sub-tick within the active phase
	inPause bool
}

// NewMachine returns a machine at the start of the first active phase.
func NewMachine(plan Plan) *Machine {
	return &Machine{
		plan: plan,
	}
}

// State returns the current lifecycle state.
func (m *Machine) State() State {
	return m.state
}

// Progress returns the 1-based cycle and sub-tick the machine is at.
// Both are zero once the machine is terminal.
func (m *Machine) Progress() (cycle, subtick int) {
	if m.state == StateSucceeded || m.state == StateCanceled {
		return 0, 0
	}

	return m.cycle + 1, m.subtick + 1
}

// Terminal reports whether the machine reached a terminal state.
func (m *Machine) Terminal() bool {
	return m.state == StateSucceeded || m.state == StateCanceled
}

// RequestCancel asks the machine to stop. The request is honored on the next
// advance: the machine emits a final stop command and becomes Canceled.
// Requesting cancellation of a terminal machine is a no-op.
func (m *Machine) RequestCancel() {
	if m.Terminal() {
		return
	}

	m.state = StateCanceling
}

// Advance moves the machine by one tick and returns the step to execute.
// Calling Advance on a terminal machine returns the terminal step again
// without further transitions.
func (m *Machine) Advance() Step {
	switch m.state {
	case StateCanceling:
		m.state = StateCanceled

		return m.terminalStep(OutcomeCanceled)
	case StateSucceeded:
		return m.terminalStep(OutcomeSucceeded)
	case StateCanceled:
		return m.terminalStep(OutcomeCanceled)
	case StateRunning:
	}

	if m.inPause {
		step := Step{
			Command:  motion.Stop,
			Wait:     m.plan.PausePeriod,
			Cycle:    m.cycle + 1,
			Phase:    PhasePause,
			Announce: true,
		}

		m.inPause = false
		m.cycle++

		if m.cycle >= m.plan.Cycles {
			// All cycles done; the next advance emits the final stop.
			m.state = StateSucceeded
		}

		return step
	}

	step := Step{
		Command: motion.Command{Angular: m.plan.AngularRate},
		Wait:    m.plan.SubtickPeriod,
		Cycle:   m.cycle + 1,
		Subtick: m.subtick + 1,
		Phase:   PhaseRotate,
		// Announce once per active phase, on its first sub-tick.
		Announce: m.subtick == 0,
	}

	m.subtick++
	if m.subtick >= m.plan.Subticks {
		m.subtick = 0
		m.inPause = true
	}

	return step
}

// terminalStep builds the final stop step for the given outcome. The stop
// command is the last observable effect on every exit path.
func (m *Machine) terminalStep(outcome Outcome) Step {
	return Step{
		Command:  motion.Stop,
		Terminal: true,
		Outcome:  outcome,
	}
}
