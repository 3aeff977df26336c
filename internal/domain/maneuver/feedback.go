package maneuver

import "errors"

// ErrAlreadyRunning reports that an invocation is in flight; the maneuver
// executor admits at most one at a time.
var ErrAlreadyRunning = errors.New("a maneuver is already running")

// Feedback is one progress event emitted at a phase boundary.
type Feedback struct {
	// Phase labels the phase just entered.
	Phase Phase
	// Cycle is the 1-based cycle the phase belongs to.
	Cycle int
}

// FeedbackFunc receives progress events on the driver goroutine.
type FeedbackFunc func(Feedback)
