package supervisor

import (
	"context"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/rover-guard/internal/config"
	"github.com/oshokin/rover-guard/internal/domain/motion"
	"github.com/oshokin/rover-guard/internal/domain/scan"
	"github.com/oshokin/rover-guard/internal/notify"
	"github.com/oshokin/rover-guard/internal/sink"
)

// fakeDispatcher records maneuver requests and cancellations.
type fakeDispatcher struct {
	mu       sync.Mutex
	requests int
	cancels  int
	active   bool
}

func (f *fakeDispatcher) Request(context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests++
	f.active = true
}

func (f *fakeDispatcher) Cancel(context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.cancels++
	f.active = false
}

func (f *fakeDispatcher) Active() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.active
}

func (f *fakeDispatcher) counts() (requests, cancels int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.requests, f.cancels
}

// testTuning returns the production defaults.
func testTuning(t *testing.T) config.Tuning {
	t.Helper()

	var tuning config.Tuning

	cfg := config.Config{SupervisorAddress: "127.0.0.1:9000", Tuning: tuning}
	require.NoError(t, config.Validate(&cfg))

	return cfg.Tuning
}

// newTestService builds a service with a discarding sink and fresh fakes.
func newTestService(t *testing.T) (*Service, *fakeDispatcher, *notify.Hub) {
	t.Helper()

	dispatcher := new(fakeDispatcher)
	hub := notify.NewHub()
	t.Cleanup(hub.Close)

	discard := sink.Func(func(context.Context, motion.Command) error { return nil })

	return NewService(testTuning(t), discard, hub, dispatcher), dispatcher, hub
}

// blockingFrame is a 60-sample sweep with a single close reading at index 0.
func blockingFrame() *scan.Frame {
	ranges := make([]float64, 60)
	for i := range ranges {
		ranges[i] = 3.0
	}

	ranges[0] = 0.3

	return &scan.Frame{Ranges: ranges, CapturedAt: time.Now()}
}

// clearFrame is a sweep with everything far away.
func clearFrame() *scan.Frame {
	ranges := make([]float64, 60)
	for i := range ranges {
		ranges[i] = 3.0
	}

	return &scan.Frame{Ranges: ranges, CapturedAt: time.Now()}
}

// TestService_BlockingScenario feeds a close obstacle and verifies the gate
// blocks, the mixer output drops to zero, exactly one maneuver is requested,
// and the operator is alerted.
func TestService_BlockingScenario(t *testing.T) {
	t.Parallel()

	s, dispatcher, hub := newTestService(t)
	ctx := context.Background()

	notifications, cancel := hub.Subscribe()
	defer cancel()

	// Build up some speed first.
	accepted, _ := s.Drive(ctx, motion.Forward)
	require.True(t, accepted)

	s.HandleFrame(ctx, blockingFrame())

	status := s.Status(ctx)
	require.True(t, status.Blocked)
	require.Equal(t, motion.Stop, s.mixerOutput())

	// The setpoint survives blocking; only the output is gated.
	require.InDelta(t, 0.2, status.Setpoint.Linear, 1e-9)

	// Repeated blocked frames must not request further maneuvers.
	s.HandleFrame(ctx, blockingFrame())
	s.HandleFrame(ctx, blockingFrame())

	requests, _ := dispatcher.counts()
	require.Equal(t, 1, requests)

	n := <-notifications
	require.Equal(t, notify.SeverityAlert, n.Severity)
	require.Contains(t, n.Text, "obstacle detected")

	// Nudges are refused while blocked.
	accepted, setpoint := s.Drive(ctx, motion.Forward)
	require.False(t, accepted)
	require.InDelta(t, 0.2, setpoint.Linear, 1e-9)

	// A clear sweep unblocks and restores the mixer output.
	s.HandleFrame(ctx, clearFrame())
	require.False(t, s.Status(ctx).Blocked)
	require.InDelta(t, 0.2, s.mixerOutput().Linear, 1e-9)
}

// TestService_EmptyFrameHoldsState verifies a frame without valid readings
// never changes the gate, in either state.
func TestService_EmptyFrameHoldsState(t *testing.T) {
	t.Parallel()

	s, _, _ := newTestService(t)
	ctx := context.Background()

	s.HandleFrame(ctx, &scan.Frame{})
	require.False(t, s.Status(ctx).Blocked)

	s.HandleFrame(ctx, blockingFrame())
	require.True(t, s.Status(ctx).Blocked)

	s.HandleFrame(ctx, &scan.Frame{})
	require.True(t, s.Status(ctx).Blocked)
}

// TestService_DriveAccumulation verifies nudges accumulate by the configured
// step in every direction.
func TestService_DriveAccumulation(t *testing.T) {
	t.Parallel()

	s, _, _ := newTestService(t)
	ctx := context.Background()

	for range 3 {
		s.Drive(ctx, motion.Forward)
	}

	_, setpoint := s.Drive(ctx, motion.Left)
	require.InDelta(t, 0.6, setpoint.Linear, 1e-9)
	require.InDelta(t, 0.2, setpoint.Angular, 1e-9)

	_, setpoint = s.Drive(ctx, motion.Backward)
	require.InDelta(t, 0.4, setpoint.Linear, 1e-9)

	_, setpoint = s.Drive(ctx, motion.Right)
	require.InDelta(t, 0.0, setpoint.Angular, 1e-9)
}

// TestService_Halt verifies a stop zeroes the setpoint, cancels the
// outstanding maneuver and pushes a zero command immediately.
func TestService_Halt(t *testing.T) {
	t.Parallel()

	var (
		mu        sync.Mutex
		published []motion.Command
	)

	dispatcher := new(fakeDispatcher)
	hub := notify.NewHub()
	t.Cleanup(hub.Close)

	s := NewService(testTuning(t), sink.Func(func(_ context.Context, cmd motion.Command) error {
		mu.Lock()
		defer mu.Unlock()

		published = append(published, cmd)

		return nil
	}), hub, dispatcher)

	ctx := context.Background()

	s.Drive(ctx, motion.Forward)
	s.Drive(ctx, motion.Left)

	require.Equal(t, motion.Stop, s.Halt(ctx))
	require.Equal(t, motion.Stop, s.Status(ctx).Setpoint)

	_, cancels := dispatcher.counts()
	require.Equal(t, 1, cancels)

	mu.Lock()
	defer mu.Unlock()

	require.NotEmpty(t, published)
	require.Equal(t, motion.Stop, published[len(published)-1])
}

// TestService_SafetyModeOff verifies disabling safety unblocks the gate,
// zeroes the setpoint, cancels the maneuver and suppresses further blocking
// until safety is re-enabled.
func TestService_SafetyModeOff(t *testing.T) {
	t.Parallel()

	s, dispatcher, hub := newTestService(t)
	ctx := context.Background()

	notifications, cancel := hub.Subscribe()
	defer cancel()

	s.Drive(ctx, motion.Forward)
	s.HandleFrame(ctx, blockingFrame())
	require.True(t, s.Status(ctx).Blocked)

	message := s.SetSafetyMode(ctx, false)
	require.Contains(t, message, "disabled")

	status := s.Status(ctx)
	require.False(t, status.SafetyEnabled)
	require.False(t, status.Blocked)
	require.Equal(t, motion.Stop, status.Setpoint)

	_, cancels := dispatcher.counts()
	require.Equal(t, 1, cancels)

	// With safety off a close obstacle must not block.
	s.HandleFrame(ctx, blockingFrame())
	require.False(t, s.Status(ctx).Blocked)

	// Drain the alert and the mode-change notice.
	<-notifications
	n := <-notifications
	require.Equal(t, notify.SeverityWarning, n.Severity)

	// Re-enabling restores guarding.
	require.Contains(t, s.SetSafetyMode(ctx, true), "enabled")

	s.HandleFrame(ctx, blockingFrame())
	require.True(t, s.Status(ctx).Blocked)

	requests, _ := dispatcher.counts()
	require.Equal(t, 2, requests)
}

// TestService_RunMixer drives the mixer loop and verifies the emission
// cadence, the blocked override and the final zero on shutdown.
func TestService_RunMixer(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		var (
			mu        sync.Mutex
			published []motion.Command
		)

		dispatcher := new(fakeDispatcher)
		hub := notify.NewHub()
		t.Cleanup(hub.Close)

		s := NewService(testTuning(t), sink.Func(func(_ context.Context, cmd motion.Command) error {
			mu.Lock()
			defer mu.Unlock()

			published = append(published, cmd)

			return nil
		}), hub, dispatcher)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error, 1)

		go func() {
			done <- s.Run(ctx)
		}()

		s.Drive(ctx, motion.Forward)

		// Three full ticks at the default 100ms period.
		time.Sleep(350 * time.Millisecond)

		mu.Lock()
		require.Len(t, published, 3)

		for _, cmd := range published {
			require.InDelta(t, 0.2, cmd.Linear, 1e-9)
		}
		mu.Unlock()

		// Block the gate; subsequent ticks must emit zero.
		s.HandleFrame(ctx, blockingFrame())

		time.Sleep(200 * time.Millisecond)

		mu.Lock()
		require.Len(t, published, 5)
		require.Equal(t, motion.Stop, published[3])
		require.Equal(t, motion.Stop, published[4])
		mu.Unlock()

		cancel()

		require.ErrorIs(t, <-done, context.Canceled)

		// The loop leaves the sink at zero on the way out.
		mu.Lock()
		require.Equal(t, motion.Stop, published[len(published)-1])
		mu.Unlock()
	})
}
