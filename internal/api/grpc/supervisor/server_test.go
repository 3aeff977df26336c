package supervisor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oshokin/rover-guard/internal/domain/motion"
	"github.com/oshokin/rover-guard/internal/notify"
	pb "github.com/oshokin/rover-guard/internal/pb/v1"
)

// fakeService implements the supervisor Service interface for unit testing
// the transport.
type fakeService struct {
	hub *notify.Hub

	setpoint      motion.Command
	blocked       bool
	safetyEnabled bool
	halted        bool
}

func (f *fakeService) Drive(_ context.Context, direction motion.Direction) (bool, motion.Command) {
	if f.blocked {
		return false, f.setpoint
	}

	f.setpoint = f.setpoint.Nudge(direction, 0.2)

	return true, f.setpoint
}

func (f *fakeService) Halt(context.Context) motion.Command {
	f.halted = true
	f.setpoint = motion.Stop

	return f.setpoint
}

func (f *fakeService) SetSafetyMode(_ context.Context, enabled bool) string {
	f.safetyEnabled = enabled

	if enabled {
		return "safety mode enabled"
	}

	return "safety mode disabled"
}

func (f *fakeService) Status(context.Context) motion.Status {
	return motion.Status{
		SafetyEnabled: f.safetyEnabled,
		Blocked:       f.blocked,
		Setpoint:      f.setpoint,
	}
}

func (f *fakeService) Notifications() (<-chan notify.Notification, func()) {
	return f.hub.Subscribe()
}

// newTestServer builds a server around a fresh fake service.
func newTestServer(t *testing.T) (*Server, *fakeService) {
	t.Helper()

	hub := notify.NewHub()
	t.Cleanup(hub.Close)

	service := &fakeService{hub: hub}

	return NewServer(service), service
}

// TestServer_Drive_Validation ensures invalid requests return InvalidArgument errors.
func TestServer_Drive_Validation(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t)

	_, err := s.Drive(context.Background(), nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.Drive(context.Background(), &pb.DriveRequest{})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestServer_Drive exercises accepted and refused nudges.
func TestServer_Drive(t *testing.T) {
	t.Parallel()

	s, service := newTestServer(t)

	response, err := s.Drive(context.Background(), &pb.DriveRequest{
		Direction: pb.DriveDirection_DRIVE_DIRECTION_FORWARD,
	})
	require.NoError(t, err)
	require.True(t, response.GetAccepted())
	require.InDelta(t, 0.2, response.GetSetpoint().GetLinear(), 1e-9)

	service.blocked = true

	response, err = s.Drive(context.Background(), &pb.DriveRequest{
		Direction: pb.DriveDirection_DRIVE_DIRECTION_FORWARD,
	})
	require.NoError(t, err)
	require.False(t, response.GetAccepted())
	require.InDelta(t, 0.2, response.GetSetpoint().GetLinear(), 1e-9)
}

// TestServer_Stop verifies the stop path returns a zero setpoint.
func TestServer_Stop(t *testing.T) {
	t.Parallel()

	s, service := newTestServer(t)

	_, err := s.Drive(context.Background(), &pb.DriveRequest{
		Direction: pb.DriveDirection_DRIVE_DIRECTION_LEFT,
	})
	require.NoError(t, err)

	response, err := s.Stop(context.Background(), &pb.StopRequest{})
	require.NoError(t, err)
	require.True(t, service.halted)
	require.Zero(t, response.GetSetpoint().GetLinear())
	require.Zero(t, response.GetSetpoint().GetAngular())
}

// TestServer_SetSafetyModeAndStatus exercises the mode toggle and the
// status snapshot.
func TestServer_SetSafetyModeAndStatus(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t)

	response, err := s.SetSafetyMode(context.Background(), &pb.SetSafetyModeRequest{Enabled: true})
	require.NoError(t, err)
	require.True(t, response.GetSuccess())
	require.Equal(t, "safety mode enabled", response.GetMessage())

	_, err = s.SetSafetyMode(context.Background(), nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	snapshot, err := s.GetStatus(context.Background(), &pb.GetStatusRequest{})
	require.NoError(t, err)
	require.True(t, snapshot.GetSafetyEnabled())
	require.False(t, snapshot.GetBlocked())
}

// TestSeverityMapping checks every severity maps onto the wire enum.
func TestSeverityMapping(t *testing.T) {
	t.Parallel()

	require.Equal(t, pb.Severity_SEVERITY_INFO, toProtoSeverity(notify.SeverityInfo))
	require.Equal(t, pb.Severity_SEVERITY_WARNING, toProtoSeverity(notify.SeverityWarning))
	require.Equal(t, pb.Severity_SEVERITY_ALERT, toProtoSeverity(notify.SeverityAlert))
	require.Equal(t, pb.Severity_SEVERITY_UNSPECIFIED, toProtoSeverity(notify.Severity(42)))
}
