package supervisor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/oshokin/rover-guard/internal/config"
	"github.com/oshokin/rover-guard/internal/domain/motion"
	"github.com/oshokin/rover-guard/internal/domain/scan"
	"github.com/oshokin/rover-guard/internal/logger"
	"github.com/oshokin/rover-guard/internal/notify"
	"github.com/oshokin/rover-guard/internal/sink"
)

// Service is the motion supervisor: it accumulates the operator's velocity
// setpoint, gates it on obstacle proximity, and requests evasive maneuvers
// when an obstacle appears. All shared state sits behind one mutex; the
// dispatcher's network work happens outside it.
type Service struct {
	tuning     config.Tuning
	analyzer   scan.Analyzer
	sink       sink.Sink
	hub        *notify.Hub
	dispatcher Dispatcher

	mu            sync.Mutex
	gate          *gate
	safetyEnabled bool
	setpoint      motion.Command
}

// NewService assembles a supervisor. Safety starts enabled and the gate
// starts clear.
func NewService(tuning config.Tuning, s sink.Sink, hub *notify.Hub, dispatcher Dispatcher) *Service {
	return &Service{
		tuning: tuning,
		analyzer: scan.Analyzer{
			HalfWidth: tuning.ZoneHalfWidth,
			MinValid:  tuning.MinValidRange,
		},
		sink:          s,
		hub:           hub,
		dispatcher:    dispatcher,
		gate:          newGate(tuning.ObstacleEnterDistance, tuning.ObstacleClearDistance),
		safetyEnabled: true,
	}
}

// HandleFrame feeds one range scan through the obstacle gate. On the edge
// into the blocked state it alerts the operator and requests one evasive
// maneuver; on the edge out it announces the clear path. Frames without a
// valid reading leave the gate untouched.
func (s *Service) HandleFrame(ctx context.Context, frame *scan.Frame) {
	distance, ok := s.analyzer.NearestObstacle(frame)

	s.mu.Lock()
	transition := s.gate.observe(distance, ok, s.safetyEnabled)
	s.mu.Unlock()

	switch transition {
	case edgeEntered:
		logger.WarnKV(ctx, "obstacle detected", "distance", distance)

		s.hub.Publish(notify.Notification{
			Severity: notify.SeverityAlert,
			Text:     fmt.Sprintf("obstacle detected at %.2f m, starting evasive maneuver", distance),
		})

		// The gate is already blocked, so the maneuver is the only writer of
		// non-zero commands from here on.
		s.dispatcher.Request(ctx)
	case edgeCleared:
		logger.InfoKV(ctx, "path clear", "distance", distance)

		s.hub.Publish(notify.Notification{
			Severity: notify.SeverityInfo,
			Text:     fmt.Sprintf("path clear at %.2f m", distance),
		})
	case edgeNone:
	}
}

// Drive nudges the setpoint one step in the given direction. While blocked
// the nudge is refused and the setpoint is returned unchanged.
func (s *Service) Drive(ctx context.Context, direction motion.Direction) (bool, motion.Command) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gate.blocked {
		logger.DebugKV(ctx, "drive refused while blocked")

		return false, s.setpoint
	}

	s.setpoint = s.setpoint.Nudge(direction, s.tuning.DriveStep)

	return true, s.setpoint
}

// Halt zeroes the setpoint, cancels any outstanding maneuver and drives the
// sink to zero immediately rather than waiting for the next mixer tick.
func (s *Service) Halt(ctx context.Context) motion.Command {
	s.mu.Lock()
	s.setpoint = motion.Stop
	s.mu.Unlock()

	s.dispatcher.Cancel(ctx)

	if err := s.sink.Publish(ctx, motion.Stop); err != nil {
		logger.ErrorKV(ctx, "failed to publish stop command", "error", err)
	}

	return motion.Stop
}

// SetSafetyMode switches obstacle guarding on or off and returns a
// human-readable description of the new mode. Switching off forces the gate
// clear, zeroes the setpoint and cancels any outstanding maneuver, so the
// robot is stationary until the operator drives it again.
func (s *Service) SetSafetyMode(ctx context.Context, enabled bool) string {
	s.mu.Lock()
	s.safetyEnabled = enabled

	if enabled {
		s.mu.Unlock()

		logger.InfoKV(ctx, "safety mode enabled")

		s.hub.Publish(notify.Notification{
			Severity: notify.SeverityInfo,
			Text:     "safety mode enabled: obstacle guarding active",
		})

		return "safety mode enabled"
	}

	s.gate.forceClear()
	s.setpoint = motion.Stop
	s.mu.Unlock()

	s.dispatcher.Cancel(ctx)

	logger.WarnKV(ctx, "safety mode disabled")

	s.hub.Publish(notify.Notification{
		Severity: notify.SeverityWarning,
		Text:     "safety mode disabled: obstacle guarding off, setpoint reset",
	})

	return "safety mode disabled"
}

// Status returns a consistent snapshot of the supervisor's state.
func (s *Service) Status(context.Context) motion.Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return motion.Status{
		SafetyEnabled:  s.safetyEnabled,
		Blocked:        s.gate.blocked,
		ManeuverActive: s.dispatcher.Active(),
		Setpoint:       s.setpoint,
	}
}

// Notifications subscribes the caller to operator notifications.
func (s *Service) Notifications() (<-chan notify.Notification, func()) {
	return s.hub.Subscribe()
}

// Run drives the velocity mixer until the context ends: every tick it emits
// the setpoint, or zero while blocked. The setpoint is read as a pair under
// the lock, so the sink never sees a torn command.
func (s *Service) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.tuning.TickPeriod)
	defer ticker.Stop()

	logger.InfoKV(ctx, "velocity mixer started", "period", s.tuning.TickPeriod)

	for {
		select {
		case <-ctx.Done():
			// Leave the sink at zero on the way out.
			if err := s.sink.Publish(context.WithoutCancel(ctx), motion.Stop); err != nil {
				logger.ErrorKV(ctx, "failed to publish final stop", "error", err)
			}

			return ctx.Err()
		case <-ticker.C:
			if err := s.sink.Publish(ctx, s.mixerOutput()); err != nil {
				logger.ErrorKV(ctx, "failed to publish mixer command", "error", err)
			}
		}
	}
}

// mixerOutput picks the command for one mixer tick.
func (s *Service) mixerOutput() motion.Command {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gate.blocked {
		return motion.Stop
	}

	return s.setpoint
}
