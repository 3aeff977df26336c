package sink

import (
	"context"

	"github.com/oshokin/rover-guard/internal/domain/motion"
	"github.com/oshokin/rover-guard/internal/logger"
)

// Log writes every command to the structured log. It is the default sink
// when no command sink address is configured, and doubles as a trace of what
// the supervisor would have driven.
type Log struct{}

// NewLog returns a sink that only logs.
func NewLog() *Log {
	return &Log{}
}

// Publish logs the command and always succeeds.
func (*Log) Publish(ctx context.Context, cmd motion.Command) error {
	logger.DebugKV(ctx, "motion command",
		"linear", cmd.Linear,
		"angular", cmd.Angular)

	return nil
}
