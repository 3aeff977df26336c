// Package teleop implements the operator-side commands: driving nudges,
// stop, safety toggling, status and the notification watch.
package teleop
