package supervisor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/oshokin/rover-guard/internal/logger"
	"github.com/oshokin/rover-guard/internal/notify"
)

// ErrRejected is returned by Transport.Start when the executor refused the
// goal because another invocation is already running.
var ErrRejected = errors.New("maneuver rejected: another invocation is running")

// Event is one maneuver progress or terminal event as seen over the transport.
type Event struct {
	// Phase labels the phase just entered; empty on terminal events.
	Phase string
	// Cycle is the 1-based cycle of a feedback event.
	Cycle int
	// Terminal marks the last event of the invocation.
	Terminal bool
	// Canceled is valid on terminal events and reports a canceled outcome.
	Canceled bool
}

// Transport launches and cancels maneuvers on the executor service.
type Transport interface {
	// Start begins an invocation and blocks until it is accepted or
	// rejected. After acceptance, events stream to the callback from a
	// background goroutine until a terminal event; a broken stream yields a
	// synthetic canceled terminal event so the caller never waits forever.
	Start(ctx context.Context, events func(Event)) error

	// Cancel requests cooperative cancellation of the running invocation.
	Cancel(ctx context.Context) error
}

// Dispatcher requests and cancels maneuvers.
type Dispatcher interface {
	// Request launches a maneuver unless one is already outstanding.
	Request(ctx context.Context)
	// Cancel stops the outstanding maneuver, if any. Idempotent.
	Cancel(ctx context.Context)
	// Active reports whether an invocation is outstanding or being started.
	Active() bool
}

// startRetryInterval paces reconnection attempts while the executor service
// is unreachable.
const startRetryInterval = 500 * time.Millisecond

// ManeuverDispatcher keeps at most one maneuver outstanding. The transport
// handshake runs on a background goroutine so callers never wait on the
// network, and the handle clears itself when the terminal event arrives.
type ManeuverDispatcher struct {
	transport Transport
	hub       *notify.Hub

	mu sync.Mutex
	// active means a maneuver was accepted and its terminal event is pending.
	active bool
	// pending means a Start handshake is in flight or retrying.
	pending bool
	// cancelRequested remembers a Cancel that arrived while pending.
	cancelRequested bool
	// terminalSeen remembers a terminal event that arrived while pending,
	// before launch could mark the invocation active.
	terminalSeen bool
}

// NewManeuverDispatcher wires a dispatcher to the transport and the
// notification hub.
func NewManeuverDispatcher(transport Transport, hub *notify.Hub) *ManeuverDispatcher {
	return &ManeuverDispatcher{
		transport: transport,
		hub:       hub,
	}
}

// Request launches a maneuver unless one is already outstanding or being
// started, in which case it is a no-op. It returns immediately; the
// handshake happens on a background goroutine.
func (d *ManeuverDispatcher) Request(ctx context.Context) {
	d.mu.Lock()

	if d.active || d.pending {
		d.mu.Unlock()

		return
	}

	d.pending = true
	d.mu.Unlock()

	go d.launch(ctx)
}

// launch performs the Start handshake, retrying while the executor service
// is unreachable. It gives up when the context ends or cancellation arrives
// before acceptance.
func (d *ManeuverDispatcher) launch(ctx context.Context) {
	for {
		err := d.transport.Start(ctx, d.handleEvent)

		d.mu.Lock()

		if err == nil {
			d.pending = false

			// The event pump runs concurrently with the handshake return, so
			// the terminal event may already have come and gone. Marking the
			// invocation active then would leave a handle nothing clears.
			if d.terminalSeen {
				d.terminalSeen = false
				d.cancelRequested = false
				d.mu.Unlock()

				return
			}

			d.active = true
			requested := d.cancelRequested
			d.cancelRequested = false
			d.mu.Unlock()

			if requested {
				d.cancelTransport(ctx)
			}

			return
		}

		if d.cancelRequested || ctx.Err() != nil || errors.Is(err, ErrRejected) {
			d.pending = false
			d.cancelRequested = false
			d.mu.Unlock()

			if errors.Is(err, ErrRejected) {
				logger.WarnKV(ctx, "maneuver goal rejected by executor", "error", err)
			}

			return
		}

		d.mu.Unlock()

		logger.WarnKV(ctx, "maneuver start failed, retrying",
			"error", err,
			"retry_in", startRetryInterval)

		select {
		case <-ctx.Done():
			d.mu.Lock()
			d.pending = false
			d.cancelRequested = false
			d.mu.Unlock()

			return
		case <-time.After(startRetryInterval):
		}
	}
}

// Cancel stops the outstanding maneuver. If the handshake is still in
// flight, the cancellation is remembered and applied once it completes.
// Canceling with nothing outstanding is a no-op.
func (d *ManeuverDispatcher) Cancel(ctx context.Context) {
	d.mu.Lock()

	switch {
	case d.active:
		d.mu.Unlock()
		d.cancelTransport(ctx)
	case d.pending:
		d.cancelRequested = true
		d.mu.Unlock()
	default:
		d.mu.Unlock()
	}
}

// cancelTransport forwards the cancellation; the handle still clears via the
// terminal event, not here.
func (d *ManeuverDispatcher) cancelTransport(ctx context.Context) {
	if err := d.transport.Cancel(ctx); err != nil {
		logger.ErrorKV(ctx, "failed to cancel maneuver", "error", err)
	}
}

// Active reports whether an invocation is outstanding or being started.
func (d *ManeuverDispatcher) Active() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.active || d.pending
}

// handleEvent forwards maneuver events to the operator and clears the handle
// on the terminal one.
func (d *ManeuverDispatcher) handleEvent(event Event) {
	if !event.Terminal {
		d.hub.Publish(notify.Notification{
			Severity: notify.SeverityInfo,
			Text:     fmt.Sprintf("evasive maneuver: %s, cycle %d", event.Phase, event.Cycle),
		})

		return
	}

	d.mu.Lock()

	if d.pending {
		d.terminalSeen = true
	}

	d.active = false
	d.mu.Unlock()

	text := "evasive maneuver completed"
	if event.Canceled {
		text = "evasive maneuver canceled"
	}

	d.hub.Publish(notify.Notification{
		Severity: notify.SeverityInfo,
		Text:     text,
	})
}
