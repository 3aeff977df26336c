package teleop

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/oshokin/rover-guard/internal/pb/v1"
)

// TestDial_ValidatesAddress verifies that Dial rejects empty addresses.
func TestDial_ValidatesAddress(t *testing.T) {
	t.Parallel()

	c, err := Dial(context.Background(), "")
	require.Error(t, err)
	require.Nil(t, c)
}

// TestClient_callContext checks timeout vs cancel-only behavior of callContext.
func TestClient_callContext(t *testing.T) {
	t.Parallel()

	c := &Client{
		callTimeout: 0,
	}

	ctx, cancel := c.callContext(context.Background())
	cancel()

	require.NotNil(t, ctx)

	c.callTimeout = 10 * time.Millisecond

	ctx, cancel = c.callContext(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	require.WithinDuration(t, time.Now().Add(10*time.Millisecond), deadline, 30*time.Millisecond)
}

// TestParseDirection covers every verb and the error path.
func TestParseDirection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		verb string
		want pb.DriveDirection
	}{
		{verb: "forward", want: pb.DriveDirection_DRIVE_DIRECTION_FORWARD},
		{verb: "go", want: pb.DriveDirection_DRIVE_DIRECTION_FORWARD},
		{verb: "backward", want: pb.DriveDirection_DRIVE_DIRECTION_BACKWARD},
		{verb: "back", want: pb.DriveDirection_DRIVE_DIRECTION_BACKWARD},
		{verb: "left", want: pb.DriveDirection_DRIVE_DIRECTION_LEFT},
		{verb: "right", want: pb.DriveDirection_DRIVE_DIRECTION_RIGHT},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.verb)
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}

	_, err := ParseDirection("sideways")
	require.ErrorIs(t, err, errUnknownDirection)
}

// TestFormatStatus renders the full snapshot and the nil fallback.
func TestFormatStatus(t *testing.T) {
	t.Parallel()

	require.Equal(t, "<nil status>", FormatStatus(nil))

	got := FormatStatus(&pb.GetStatusResponse{
		SafetyEnabled:  true,
		Blocked:        true,
		ManeuverActive: true,
		Setpoint:       &pb.MotionCommand{Linear: 0.4, Angular: -0.2},
	})
	require.Equal(t, "safety on, path blocked, maneuver active, setpoint {linear 0.40, angular -0.20}", got)

	got = FormatStatus(&pb.GetStatusResponse{})
	require.Equal(t, "safety off, path clear, maneuver idle, setpoint {linear 0.00, angular 0.00}", got)
}

// TestFormatNotification checks the timestamp fallback and the happy path.
func TestFormatNotification(t *testing.T) {
	t.Parallel()

	require.Equal(t, "<nil notification>", FormatNotification(nil))
	require.Contains(t, FormatNotification(&pb.Notification{Text: "path clear"}), "<unknown>")

	n := &pb.Notification{
		Timestamp: timestamppb.New(time.Now()),
		Text:      "obstacle detected",
	}
	require.Contains(t, FormatNotification(n), "obstacle detected")
}
