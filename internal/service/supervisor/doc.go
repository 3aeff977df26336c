// Package supervisor implements the safety-gated motion coordinator: it
// mixes the operator's velocity setpoint with obstacle proximity, blocks
// motion when something comes too close, and dispatches a single evasive
// maneuver per blocking event.
package supervisor
