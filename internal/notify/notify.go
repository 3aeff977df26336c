package notify

import (
	"sync"
	"time"
)

// Severity grades operator-facing notifications.
type Severity int

// Notification severities, from routine to urgent.
const (
	// SeverityInfo marks routine progress messages.
	SeverityInfo Severity = iota
	// SeverityWarning marks degraded but recoverable conditions.
	SeverityWarning
	// SeverityAlert marks safety-relevant events that demand attention.
	SeverityAlert
)

// String returns the lowercase label used in logs.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityAlert:
		return "alert"
	default:
		return "unknown"
	}
}

// Notification is one timestamped operator-facing message.
type Notification struct {
	// Timestamp is when the event happened.
	Timestamp time.Time
	// Severity grades the message.
	Severity Severity
	// Text is the human-readable message.
	Text string
}

// subscriberBuffer is the channel capacity handed to each subscriber.
// A subscriber that falls this far behind starts losing messages.
const subscriberBuffer = 16

// Hub fans notifications out to any number of subscribers. Publishing never
// blocks: a subscriber whose buffer is full misses the message. The zero
// value is not usable; construct with NewHub.
type Hub struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]chan Notification
	closed bool
}

// NewHub returns an empty hub ready for subscribers.
func NewHub() *Hub {
	return &Hub{
		subs: make(map[int]chan Notification),
	}
}

// Subscribe registers a new listener and returns its channel together with a
// cancel function. The channel is closed when the listener cancels or the hub
// shuts down. Cancel is safe to call more than once.
func (h *Hub) Subscribe() (<-chan Notification, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Notification, subscriberBuffer)

	if h.closed {
		close(ch)

		return ch, func() {}
	}

	id := h.nextID
	h.nextID++
	h.subs[id] = ch

	var once sync.Once

	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()

			if sub, ok := h.subs[id]; ok {
				delete(h.subs, id)
				close(sub)
			}
		})
	}

	return ch, cancel
}

// Publish delivers the notification to every subscriber that can take it.
// Slow subscribers are skipped, never waited for.
func (h *Hub) Publish(n Notification) {
	if n.Timestamp.IsZero() {
		n.Timestamp = time.Now()
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return
	}

	for _, ch := range h.subs {
		select {
		case ch <- n:
		default:
			// Subscriber buffer full; drop rather than stall the publisher.
		}
	}
}

// Len returns the number of active subscribers.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subs)
}

// Close shuts the hub down and closes every subscriber channel. Publishing
// after Close is a no-op.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}

	h.closed = true

	for id, ch := range h.subs {
		delete(h.subs, id)
		close(ch)
	}
}
