package integration

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"github.com/oshokin/rover-guard/internal/config"
	pb "github.com/oshokin/rover-guard/internal/pb/v1"
	"github.com/oshokin/rover-guard/internal/service/supervisor"
	"github.com/oshokin/rover-guard/internal/service/teleop"
)

// startSupervisor starts a supervisor with temporary config, an in-process
// maneuver executor, and a log command sink. Returns a stop function to
// gracefully shut it down.
func startSupervisor(t *testing.T, addr, sensorAddr string) (stop func()) {
	t.Helper()

	// Create cancellable context for server lifecycle.
	ctx, cancel := context.WithCancel(context.Background())
	cfgPath := filepath.Join(t.TempDir(), "settings.yaml")

	// Create temporary configuration file. Maneuver timings are shrunk so a
	// dispatched maneuver finishes within the test.
	require.NoError(
		t,
		config.Save(cfgPath, &config.Config{
			SupervisorAddress:   addr,
			SensorListenAddress: sensorAddr,
			Timeout:             5 * time.Second,
			Tuning: config.Tuning{
				TickPeriod:            20 * time.Millisecond,
				DriveStep:             0.2,
				MinValidRange:         0.1,
				ZoneHalfWidth:         2,
				ObstacleEnterDistance: 0.5,
				ObstacleClearDistance: 0.8,
				ManeuverCycles:        1,
				ManeuverSubticks:      2,
				ManeuverSubtickPeriod: 10 * time.Millisecond,
				ManeuverPausePeriod:   10 * time.Millisecond,
				ManeuverAngularRate:   0.6,
			},
		}),
	)

	// Start supervisor in background goroutine.
	go func() {
		options := &supervisor.Options{
			ConfigPath: cfgPath,
		}

		_ = supervisor.Run(ctx, options) //nolint:errcheck // Shutdown errors are irrelevant to the test.
	}()

	// Wait briefly for the server to start listening.
	time.Sleep(150 * time.Millisecond)

	return func() {
		cancel()
		time.Sleep(100 * time.Millisecond)
	}
}

// sendScan publishes one encoded range sweep to the sensor UDP address.
func sendScan(t *testing.T, conn *net.UDPConn, ranges []float64) {
	t.Helper()

	payload, err := proto.Marshal(&pb.RangeScan{Ranges: ranges})
	require.NoError(t, err)

	_, err = conn.Write(payload)
	require.NoError(t, err)
}

// waitForBlocked polls supervisor status, re-sending the sweep each round
// since UDP gives no delivery guarantee, until the gate reaches the wanted
// state or the deadline passes.
func waitForBlocked(t *testing.T, c *teleop.Client, conn *net.UDPConn, ranges []float64, want bool) *pb.GetStatusResponse {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		sendScan(t, conn, ranges)
		time.Sleep(50 * time.Millisecond)

		st, err := c.Status(context.Background())
		require.NoError(t, err)

		if st.GetBlocked() == want {
			return st
		}
	}

	t.Fatalf("gate never reached blocked=%v", want)

	return nil
}

// TestGRPC_Roundtrip starts the real supervisor and exercises the teleop
// client against the live obstacle gate: drive, block on a close sweep,
// refuse drives while blocked, clear, and toggle safety mode.
func TestGRPC_Roundtrip(t *testing.T) {
	t.Parallel()

	// Reserve a free TCP port for the supervisor.
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	addr := l.Addr().String()
	_ = l.Close()

	// Reserve a free UDP port for the sensor feed.
	sl, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)

	sensorAddr := sl.LocalAddr().String()
	_ = sl.Close()

	// Start the supervisor with in-process maneuver hosting.
	stop := startSupervisor(t, addr, sensorAddr)
	defer stop()

	ctx := context.Background()

	// Connect to the supervisor with timeout.
	c, err := teleop.Dial(ctx, addr, teleop.WithCallTimeout(3*time.Second))
	require.NoError(t, err)

	defer func() {
		_ = c.Close()
	}()

	// Connect a sensor publisher.
	udpAddr, err := net.ResolveUDPAddr("udp", sensorAddr)
	require.NoError(t, err)

	conn, err := net.DialUDP("udp", nil, udpAddr)
	require.NoError(t, err)

	defer func() {
		_ = conn.Close()
	}()

	// Initial state: safety on, path open, zero setpoint.
	st, err := c.Status(ctx)
	require.NoError(t, err)
	require.True(t, st.GetSafetyEnabled())
	require.False(t, st.GetBlocked())
	require.Zero(t, st.GetSetpoint().GetLinear())

	// Nudge forward while the path is open.
	dr, err := c.Drive(ctx, pb.DriveDirection_DRIVE_DIRECTION_FORWARD)
	require.NoError(t, err)
	require.True(t, dr.GetAccepted())
	require.InDelta(t, 0.2, dr.GetSetpoint().GetLinear(), 1e-9)

	// A sweep with a reading inside the enter threshold must block the gate.
	blocking := make([]float64, 16)
	for i := range blocking {
		blocking[i] = 3.0
	}

	blocking[0] = 0.3

	waitForBlocked(t, c, conn, blocking, true)

	// Drives are refused while the gate is blocked.
	dr, err = c.Drive(ctx, pb.DriveDirection_DRIVE_DIRECTION_FORWARD)
	require.NoError(t, err)
	require.False(t, dr.GetAccepted())

	// Open sweeps clear the gate; the setpoint survives the blocked episode.
	open := make([]float64, 16)
	for i := range open {
		open[i] = 3.0
	}

	st = waitForBlocked(t, c, conn, open, false)
	require.InDelta(t, 0.2, st.GetSetpoint().GetLinear(), 1e-9)

	// Disabling safety mode reports back disabled and survives a status read.
	sm, err := c.SetSafetyMode(ctx, false)
	require.NoError(t, err)
	require.True(t, sm.GetSuccess())
	require.Equal(t, "safety mode disabled", sm.GetMessage())

	st, err = c.Status(ctx)
	require.NoError(t, err)
	require.False(t, st.GetSafetyEnabled())

	// Stop zeroes the setpoint.
	_, err = c.Stop(ctx)
	require.NoError(t, err)

	st, err = c.Status(ctx)
	require.NoError(t, err)
	require.Zero(t, st.GetSetpoint().GetLinear())
	require.Zero(t, st.GetSetpoint().GetAngular())

	// Re-enable safety for a clean final state.
	sm, err = c.SetSafetyMode(ctx, true)
	require.NoError(t, err)
	require.True(t, sm.GetSuccess())
	require.Equal(t, "safety mode enabled", sm.GetMessage())
}
