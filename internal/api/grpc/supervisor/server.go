package supervisor

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/oshokin/rover-guard/internal/domain/motion"
	"github.com/oshokin/rover-guard/internal/notify"
	pb "github.com/oshokin/rover-guard/internal/pb/v1"
)

// Service abstracts the supervisor operations the transport layer depends on.
type Service interface {
	Drive(ctx context.Context, direction motion.Direction) (bool, motion.Command)
	Halt(ctx context.Context) motion.Command
	SetSafetyMode(ctx context.Context, enabled bool) string
	Status(ctx context.Context) motion.Status
	Notifications() (<-chan notify.Notification, func())
}

// Server implements the SupervisorService gRPC API.
type Server struct {
	pb.UnimplementedSupervisorServiceServer

	// service provides the supervisor business logic.
	service Service
}

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// SetSafetyMode switches obstacle guarding on or off.
func (s *Server) SetSafetyMode(ctx context.Context, req *pb.SetSafetyModeRequest) (*pb.SetSafetyModeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	message := s.service.SetSafetyMode(ctx, req.GetEnabled())

	return &pb.SetSafetyModeResponse{
		Success: true,
		Message: message,
	}, nil
}

// Drive applies one manual nudge to the velocity setpoint.
func (s *Server) Drive(ctx context.Context, req *pb.DriveRequest) (*pb.DriveResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	direction, err := toDomainDirection(req.GetDirection())
	if err != nil {
		return nil, err
	}

	accepted, setpoint := s.service.Drive(ctx, direction)

	return &pb.DriveResponse{
		Accepted: accepted,
		Setpoint: toProtoCommand(setpoint),
	}, nil
}

// Stop zeroes the setpoint and cancels any in-flight maneuver.
func (s *Server) Stop(ctx context.Context, _ *pb.StopRequest) (*pb.StopResponse, error) {
	setpoint := s.service.Halt(ctx)

	return &pb.StopResponse{
		Setpoint: toProtoCommand(setpoint),
	}, nil
}

// GetStatus returns a snapshot of the supervisor's state.
func (s *Server) GetStatus(ctx context.Context, _ *pb.GetStatusRequest) (*pb.GetStatusResponse, error) {
	snapshot := s.service.Status(ctx)

	return &pb.GetStatusResponse{
		SafetyEnabled:  snapshot.SafetyEnabled,
		Blocked:        snapshot.Blocked,
		ManeuverActive: snapshot.ManeuverActive,
		Setpoint:       toProtoCommand(snapshot.Setpoint),
	}, nil
}

// StreamNotifications forwards operator notifications until the client goes
// away or the hub shuts down.
func (s *Server) StreamNotifications(_ *pb.StreamNotificationsRequest, stream pb.SupervisorService_StreamNotificationsServer) error {
	notifications, cancel := s.service.Notifications()
	defer cancel()

	for {
		select {
		case <-stream.Context().Done():
			return stream.Context().Err()
		case n, ok := <-notifications:
			if !ok {
				return nil
			}

			if err := stream.Send(toProtoNotification(n)); err != nil {
				return err
			}
		}
	}
}

// toDomainDirection converts a protobuf direction, rejecting the unspecified value.
func toDomainDirection(d pb.DriveDirection) (motion.Direction, error) {
	switch d {
	case pb.DriveDirection_DRIVE_DIRECTION_FORWARD:
		return motion.Forward, nil
	case pb.DriveDirection_DRIVE_DIRECTION_BACKWARD:
		return motion.Backward, nil
	case pb.DriveDirection_DRIVE_DIRECTION_LEFT:
		return motion.Left, nil
	case pb.DriveDirection_DRIVE_DIRECTION_RIGHT:
		return motion.Right, nil
	case pb.DriveDirection_DRIVE_DIRECTION_UNSPECIFIED:
	}

	return 0, status.Error(codes.InvalidArgument, "drive direction is required")
}

// toProtoCommand converts a domain command to its wire form.
func toProtoCommand(cmd motion.Command) *pb.MotionCommand {
	return &pb.MotionCommand{
		Linear:  cmd.Linear,
		Angular: cmd.Angular,
	}
}

// toProtoNotification converts a notification to its wire form.
func toProtoNotification(n notify.Notification) *pb.Notification {
	return &pb.Notification{
		Timestamp: timestamppb.New(n.Timestamp),
		Severity:  toProtoSeverity(n.Severity),
		Text:      n.Text,
	}
}

// toProtoSeverity maps notification severities onto the wire enum.
func toProtoSeverity(s notify.Severity) pb.Severity {
	switch s {
	case notify.SeverityInfo:
		return pb.Severity_SEVERITY_INFO
	case notify.SeverityWarning:
		return pb.Severity_SEVERITY_WARNING
	case notify.SeverityAlert:
		return pb.Severity_SEVERITY_ALERT
	default:
		return pb.Severity_SEVERITY_UNSPECIFIED
	}
}
