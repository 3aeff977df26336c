package maneuver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	domain "github.com/oshokin/rover-guard/internal/domain/maneuver"
	pb "github.com/oshokin/rover-guard/internal/pb/v1"
)

// fakeStream captures everything the handler sends.
type fakeStream struct {
	grpc.ServerStream

	ctx    context.Context
	events []*pb.ManeuverEvent
}

func newFakeStream(ctx context.Context) *fakeStream {
	return &fakeStream{ctx: ctx}
}

func (f *fakeStream) Context() context.Context { return f.ctx }

func (f *fakeStream) Send(event *pb.ManeuverEvent) error {
	f.events = append(f.events, event)

	return nil
}

// fakeRunner implements the Runner interface, replaying scripted feedback.
type fakeRunner struct {
	feedbacks []domain.Feedback
	outcome   domain.Outcome
	err       error
	canceled  bool
}

func (f *fakeRunner) Run(_ context.Context, feedback domain.FeedbackFunc) (domain.Outcome, error) {
	if f.err != nil {
		return 0, f.err
	}

	for _, event := range f.feedbacks {
		feedback(event)
	}

	return f.outcome, nil
}

func (f *fakeRunner) Cancel() bool { return f.canceled }

// TestServer_Start_AlreadyRunning verifies a busy executor maps to AlreadyExists.
func TestServer_Start_AlreadyRunning(t *testing.T) {
	t.Parallel()

	s := NewServer(&fakeRunner{err: domain.ErrAlreadyRunning})

	err := s.Start(&pb.StartManeuverRequest{}, newFakeStream(context.Background()))
	require.Equal(t, codes.AlreadyExists, status.Code(err))
}

// TestServer_Start_TerminalEvent verifies the stream ends with exactly one
// terminal event carrying the outcome.
func TestServer_Start_TerminalEvent(t *testing.T) {
	t.Parallel()

	s := NewServer(&fakeRunner{outcome: domain.OutcomeCanceled})
	stream := newFakeStream(context.Background())

	require.NoError(t, s.Start(&pb.StartManeuverRequest{}, stream))
	require.Len(t, stream.events, 1)
	require.True(t, stream.events[0].GetTerminal())
	require.Equal(t, pb.ManeuverOutcome_MANEUVER_OUTCOME_CANCELED, stream.events[0].GetOutcome())
}

// TestServer_Start_FeedbackCadence verifies phase-boundary feedback reaches
// the wire in order, followed by the terminal event.
func TestServer_Start_FeedbackCadence(t *testing.T) {
	t.Parallel()

	s := NewServer(&fakeRunner{
		feedbacks: []domain.Feedback{
			{Phase: domain.PhaseRotate, Cycle: 1},
			{Phase: domain.PhasePause, Cycle: 1},
			{Phase: domain.PhaseRotate, Cycle: 2},
			{Phase: domain.PhasePause, Cycle: 2},
		},
		outcome: domain.OutcomeSucceeded,
	})

	stream := newFakeStream(context.Background())

	require.NoError(t, s.Start(&pb.StartManeuverRequest{}, stream))
	require.Len(t, stream.events, 5)

	require.Equal(t, "rotate", stream.events[0].GetPhase())
	require.Equal(t, uint32(1), stream.events[0].GetCycle())
	require.Equal(t, "pause", stream.events[1].GetPhase())
	require.Equal(t, "rotate", stream.events[2].GetPhase())
	require.Equal(t, uint32(2), stream.events[2].GetCycle())
	require.False(t, stream.events[3].GetTerminal())

	last := stream.events[len(stream.events)-1]
	require.True(t, last.GetTerminal())
	require.Equal(t, pb.ManeuverOutcome_MANEUVER_OUTCOME_SUCCEEDED, last.GetOutcome())
}

// TestServer_Cancel verifies the cancel flag reflects whether anything was running.
func TestServer_Cancel(t *testing.T) {
	t.Parallel()

	s := NewServer(&fakeRunner{canceled: true})

	response, err := s.Cancel(context.Background(), &pb.CancelManeuverRequest{})
	require.NoError(t, err)
	require.True(t, response.GetCanceling())

	s = NewServer(&fakeRunner{})

	response, err = s.Cancel(context.Background(), &pb.CancelManeuverRequest{})
	require.NoError(t, err)
	require.False(t, response.GetCanceling())
}
