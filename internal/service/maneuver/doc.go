// Package maneuver runs the evasive-rotation state machine against real time
// and the motion sink, one invocation at a time.
package maneuver
