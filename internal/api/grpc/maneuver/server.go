package maneuver

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	domain "github.com/oshokin/rover-guard/internal/domain/maneuver"
	pb "github.com/oshokin/rover-guard/internal/pb/v1"
)

// Runner abstracts the maneuver executor the transport layer depends on.
type Runner interface {
	Run(ctx context.Context, feedback domain.FeedbackFunc) (domain.Outcome, error)
	Cancel() bool
}

// Server implements the ManeuverService gRPC API.
type Server struct {
	pb.UnimplementedManeuverServiceServer

	// runner executes maneuvers, one at a time.
	runner Runner
}

// NewServer wires the provided executor into a gRPC handler.
func NewServer(runner Runner) *Server {
	return &Server{
		runner: runner,
	}
}

// Start runs one maneuver on the stream's goroutine, sending a feedback
// event at every phase boundary and exactly one terminal event at the end.
// A second Start while one is running is rejected with AlreadyExists.
func (s *Server) Start(_ *pb.StartManeuverRequest, stream pb.ManeuverService_StartServer) error {
	ctx := stream.Context()

	// Feedback fires on the executor's goroutine, which is this one, so
	// sending on the stream directly is safe. A dead client surfaces as a
	// send error and cancels the maneuver through the stream context.
	var sendErr error

	outcome, err := s.runner.Run(ctx, func(feedback domain.Feedback) {
		if sendErr != nil {
			return
		}

		sendErr = stream.Send(&pb.ManeuverEvent{
			Phase: string(feedback.Phase),
			Cycle: uint32(feedback.Cycle),
		})
	})

	switch {
	case errors.Is(err, domain.ErrAlreadyRunning):
		return status.Error(codes.AlreadyExists, "a maneuver is already running")
	case err != nil:
		return status.Error(codes.Internal, "maneuver failed")
	}

	if sendErr != nil {
		return sendErr
	}

	return stream.Send(&pb.ManeuverEvent{
		Terminal: true,
		Outcome:  toProtoOutcome(outcome),
	})
}

// Cancel requests cooperative cancellation of the running maneuver.
// Canceling with nothing running reports canceling=false rather than an error.
func (s *Server) Cancel(_ context.Context, _ *pb.CancelManeuverRequest) (*pb.CancelManeuverResponse, error) {
	return &pb.CancelManeuverResponse{
		Canceling: s.runner.Cancel(),
	}, nil
}

// toProtoOutcome maps a terminal outcome onto the wire enum.
func toProtoOutcome(outcome domain.Outcome) pb.ManeuverOutcome {
	if outcome == domain.OutcomeCanceled {
		return pb.ManeuverOutcome_MANEUVER_OUTCOME_CANCELED
	}

	return pb.ManeuverOutcome_MANEUVER_OUTCOME_SUCCEEDED
}
