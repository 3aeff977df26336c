// Package notify fans operator-facing notifications out to any number of
// subscribers without letting a slow consumer stall the control loops.
package notify
