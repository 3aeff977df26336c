package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestFromContext_FallsBackToGlobal ensures a bare context yields the global logger.
func TestFromContext_FallsBackToGlobal(t *testing.T) {
	t.Parallel()

	require.Same(t, Logger(), FromContext(context.Background()))
}

// TestWithName_StoresNamedLogger verifies WithName stores a distinct logger in the context.
func TestWithName_StoresNamedLogger(t *testing.T) {
	t.Parallel()

	ctx := WithName(context.Background(), "supervisor")
	require.NotSame(t, Logger(), FromContext(ctx))

	// Explicitly stored loggers take precedence over the global.
	custom := zap.NewNop().Sugar()
	ctx = ToContext(context.Background(), custom)
	require.Same(t, custom, FromContext(ctx))
}
