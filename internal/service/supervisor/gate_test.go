package supervisor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestGate_TransitionTable walks the full hysteresis table: entry below the
// enter threshold, hold inside the dead band, exit at the clear threshold.
func TestGate_TransitionTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		blocked       bool
		distance      float64
		valid         bool
		safetyEnabled bool
		wantEdge      edge
		wantBlocked   bool
	}{
		{
			name:          "clear stays clear above enter",
			distance:      0.6,
			valid:         true,
			safetyEnabled: true,
			wantEdge:      edgeNone,
			wantBlocked:   false,
		},
		{
			name:          "clear blocks below enter",
			distance:      0.49,
			valid:         true,
			safetyEnabled: true,
			wantEdge:      edgeEntered,
			wantBlocked:   true,
		},
		{
			name:          "safety disabled refuses entry",
			distance:      0.2,
			valid:         true,
			safetyEnabled: false,
			wantEdge:      edgeNone,
			wantBlocked:   false,
		},
		{
			name:          "blocked holds in dead band",
			blocked:       true,
			distance:      0.7,
			valid:         true,
			safetyEnabled: true,
			wantEdge:      edgeNone,
			wantBlocked:   true,
		},
		{
			name:          "blocked clears at clear threshold",
			blocked:       true,
			distance:      0.8,
			valid:         true,
			safetyEnabled: true,
			wantEdge:      edgeCleared,
			wantBlocked:   false,
		},
		{
			name:          "blocked clears even with safety disabled",
			blocked:       true,
			distance:      0.9,
			valid:         true,
			safetyEnabled: false,
			wantEdge:      edgeCleared,
			wantBlocked:   false,
		},
		{
			name:          "no reading holds clear state",
			valid:         false,
			safetyEnabled: true,
			wantEdge:      edgeNone,
			wantBlocked:   false,
		},
		{
			name:          "no reading holds blocked state",
			blocked:       true,
			valid:         false,
			safetyEnabled: true,
			wantEdge:      edgeNone,
			wantBlocked:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := newGate(0.5, 0.8)
			g.blocked = tt.blocked

			require.Equal(t, tt.wantEdge, g.observe(tt.distance, tt.valid, tt.safetyEnabled))
			require.Equal(t, tt.wantBlocked, g.blocked)
		})
	}
}

// TestGate_ForceClear verifies force-clearing reports the previous state and
// always leaves the gate clear.
func TestGate_ForceClear(t *testing.T) {
	t.Parallel()

	g := newGate(0.5, 0.8)

	require.False(t, g.forceClear())

	g.observe(0.3, true, true)
	require.True(t, g.blocked)

	require.True(t, g.forceClear())
	require.False(t, g.blocked)
	require.False(t, g.forceClear())
}
