package supervisor

import (
	"context"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/oshokin/rover-guard/internal/pb/v1"
)

// GRPCTransport drives maneuvers over the ManeuverService API.
type GRPCTransport struct {
	client pb.ManeuverServiceClient
}

// NewGRPCTransport wraps a maneuver service client.
func NewGRPCTransport(client pb.ManeuverServiceClient) *GRPCTransport {
	return &GRPCTransport{client: client}
}

// Start opens the event stream and waits for the first event, which doubles
// as the acceptance handshake: the executor announces the first rotate phase
// immediately, and a rejection surfaces here as an AlreadyExists status.
// Remaining events are pumped to the callback from a background goroutine.
func (t *GRPCTransport) Start(ctx context.Context, events func(Event)) error {
	stream, err := t.client.Start(ctx, &pb.StartManeuverRequest{})
	if err != nil {
		return fmt.Errorf("start maneuver: %w", err)
	}

	first, err := stream.Recv()
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return ErrRejected
		}

		return fmt.Errorf("await maneuver acceptance: %w", err)
	}

	go func() {
		event := toEvent(first)
		events(event)

		for !event.Terminal {
			msg, err := stream.Recv()
			if err != nil {
				// Lost the stream mid-maneuver; report it canceled so the
				// handle clears and the operator is told.
				events(Event{Terminal: true, Canceled: true})

				return
			}

			event = toEvent(msg)
			events(event)
		}
	}()

	return nil
}

// Cancel requests cooperative cancellation of the running invocation.
func (t *GRPCTransport) Cancel(ctx context.Context) error {
	if _, err := t.client.Cancel(ctx, &pb.CancelManeuverRequest{}); err != nil {
		return fmt.Errorf("cancel maneuver: %w", err)
	}

	return nil
}

// toEvent converts one wire event.
func toEvent(msg *pb.ManeuverEvent) Event {
	return Event{
		Phase:    msg.GetPhase(),
		Cycle:    int(msg.GetCycle()),
		Terminal: msg.GetTerminal(),
		Canceled: msg.GetOutcome() == pb.ManeuverOutcome_MANEUVER_OUTCOME_CANCELED,
	}
}
