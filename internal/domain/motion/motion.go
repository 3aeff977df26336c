package motion

// Command is a velocity command for the motion sink: linear speed along the
// robot's forward axis and angular rate about its vertical axis.
type Command struct {
	// Linear is the forward speed in m/s. Negative values drive backward.
	Linear float64
	// Angular is the rotation rate in rad/s. Positive values turn left.
	Angular float64
}

// Stop is the all-zero command. It is the last command of every maneuver and
// the only command emitted while the robot is blocked.
var Stop = Command{}

// IsZero reports whether both components are exactly zero.
func (c Command) IsZero() bool {
	return c == Stop
}

// Status is a snapshot of the motion supervisor's state.
type Status struct {
	// SafetyEnabled reports whether obstacle guarding is on.
	SafetyEnabled bool
	// Blocked reports whether the obstacle gate is blocking motion.
	Blocked bool
	// ManeuverActive reports whether an evasive maneuver is outstanding.
	ManeuverActive bool
	// Setpoint is the operator's accumulated velocity setpoint.
	Setpoint Command
}

// Direction identifies one manual drive nudge from the operator.
type Direction int

// Drive nudge directions, mirroring the teleoperation buttons.
const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// Nudge returns the command shifted by step in the given direction.
// An unknown direction leaves the command unchanged.
func (c Command) Nudge(d Direction, step float64) Command {
	switch d {
	case Forward:
		c.Linear += step
	case Backward:
		c.Linear -= step
	case Left:
		c.Angular += step
	case Right:
		c.Angular -= step
	}

	return c
}
