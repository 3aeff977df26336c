package supervisor

// edge is the transition produced by one gate observation.
type edge int

const (
	// edgeNone means the gate held its state.
	edgeNone edge = iota
	// edgeEntered means the gate switched from clear to blocked.
	edgeEntered
	// edgeCleared means the gate switched from blocked to clear.
	edgeCleared
)

// gate is the obstacle hysteresis state machine. It blocks when the nearest
// obstacle comes closer than enter and clears only once it retreats to clear
// or beyond; readings in the dead band between the two hold the last state.
// An observation without a valid reading always holds: no data is never
// treated as a clear path.
type gate struct {
	enter   float64
	clear   float64
	blocked bool
}

// newGate returns a clear gate with the given thresholds.
func newGate(enter, clear float64) *gate {
	return &gate{
		enter: enter,
		clear: clear,
	}
}

// observe feeds one reading through the gate and returns the transition, if
// any. Entering the blocked state requires safety to be enabled; clearing
// does not.
func (g *gate) observe(distance float64, valid, safetyEnabled bool) edge {
	if !valid {
		return edgeNone
	}

	switch {
	case !g.blocked && safetyEnabled && distance < g.enter:
		g.blocked = true

		return edgeEntered
	case g.blocked && distance >= g.clear:
		g.blocked = false

		return edgeCleared
	}

	return edgeNone
}

// forceClear unblocks the gate regardless of distance and reports whether it
// was blocked. Used when safety is switched off.
func (g *gate) forceClear() bool {
	wasBlocked := g.blocked
	g.blocked = false

	return wasBlocked
}
