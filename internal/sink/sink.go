package sink

import (
	"context"

	"github.com/oshokin/rover-guard/internal/domain/motion"
)

// Sink consumes velocity commands. Writes are fire-and-forget: the supervisor
// never waits on delivery confirmation, and a failed write must not stop the
// control loops.
type Sink interface {
	Publish(ctx context.Context, cmd motion.Command) error
}

// Func adapts a plain function to the Sink interface, mainly for tests.
type Func func(ctx context.Context, cmd motion.Command) error

// Publish calls the wrapped function.
func (f Func) Publish(ctx context.Context, cmd motion.Command) error {
	return f(ctx, cmd)
}
