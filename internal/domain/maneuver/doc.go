// Package maneuver models the evasive rotation as an explicit state machine.
//
// The machine is pure: it holds no clock and performs no I/O. An external
// driver advances it tick by tick, publishing the returned commands and
// sleeping the returned durations, which keeps progress and cancellation
// testable without real time passing. Terminal states always produce a final
// stop command as their last observable effect.
package maneuver
