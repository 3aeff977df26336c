// Package motion contains the velocity command value type shared by the
// supervisor, the maneuver executor and the motion sinks, together with the
// drive-nudge arithmetic used by manual teleoperation.
package motion
