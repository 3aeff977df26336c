package teleop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oshokin/rover-guard/internal/config"
	"github.com/oshokin/rover-guard/internal/logger"
	pb "github.com/oshokin/rover-guard/internal/pb/v1"
)

// Options configures a teleoperation command invocation.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string

	// SupervisorAddress overrides the supervisor address from config when specified.
	SupervisorAddress string
}

// errUnknownDirection is returned when a drive verb is not recognized.
var errUnknownDirection = errors.New("unknown direction")

// ParseDirection maps a CLI verb onto the wire direction.
func ParseDirection(verb string) (pb.DriveDirection, error) {
	switch verb {
	case "forward", "go":
		return pb.DriveDirection_DRIVE_DIRECTION_FORWARD, nil
	case "backward", "back":
		return pb.DriveDirection_DRIVE_DIRECTION_BACKWARD, nil
	case "left":
		return pb.DriveDirection_DRIVE_DIRECTION_LEFT, nil
	case "right":
		return pb.DriveDirection_DRIVE_DIRECTION_RIGHT, nil
	default:
		return pb.DriveDirection_DRIVE_DIRECTION_UNSPECIFIED,
			fmt.Errorf("%w: %q (want forward, backward, left or right)", errUnknownDirection, verb)
	}
}

// connect loads the configuration and dials the supervisor.
func connect(ctx context.Context, opts *Options) (*Client, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	address := cfg.SupervisorAddress
	if opts.SupervisorAddress != "" {
		address = opts.SupervisorAddress
	}

	return Dial(ctx, address, WithCallTimeout(cfg.Timeout))
}

// RunDrive sends one nudge and reports the resulting setpoint.
func RunDrive(ctx context.Context, opts *Options, verb string) error {
	ctx = logger.WithName(ctx, "rover-teleop")

	direction, err := ParseDirection(verb)
	if err != nil {
		return err
	}

	client, err := connect(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		_ = client.Close()
	}()

	response, err := client.Drive(ctx, direction)
	if err != nil {
		return err
	}

	if !response.GetAccepted() {
		logger.WarnKV(ctx, "nudge refused: robot is blocked by an obstacle",
			"setpoint", formatCommand(response.GetSetpoint()))

		return nil
	}

	logger.InfoKV(ctx, "setpoint updated", "setpoint", formatCommand(response.GetSetpoint()))

	return nil
}

// RunStop zeroes the setpoint and cancels any in-flight maneuver.
func RunStop(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "rover-teleop")

	client, err := connect(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		_ = client.Close()
	}()

	if _, err := client.Stop(ctx); err != nil {
		return err
	}

	logger.Info(ctx, "Robot stopped")

	return nil
}

// RunSafety switches obstacle guarding on or off.
func RunSafety(ctx context.Context, opts *Options, enabled bool) error {
	ctx = logger.WithName(ctx, "rover-teleop")

	client, err := connect(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		_ = client.Close()
	}()

	response, err := client.SetSafetyMode(ctx, enabled)
	if err != nil {
		return err
	}

	logger.Info(ctx, response.GetMessage())

	return nil
}

// RunStatus prints a snapshot of the supervisor's state.
func RunStatus(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "rover-teleop")

	client, err := connect(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		_ = client.Close()
	}()

	status, err := client.Status(ctx)
	if err != nil {
		return err
	}

	logger.Infof(ctx, "Supervisor status: %s", FormatStatus(status))

	return nil
}

// RunWatch streams notifications to the log until interrupted.
func RunWatch(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "rover-teleop")

	client, err := connect(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		_ = client.Close()
	}()

	logger.Info(ctx, "Watching supervisor notifications, press Ctrl+C to stop")

	return client.Watch(ctx, func(n *pb.Notification) {
		logger.Infof(ctx, "[%s] %s", severityLabel(n.GetSeverity()), FormatNotification(n))
	})
}

// FormatStatus renders a status snapshot for humans.
func FormatStatus(status *pb.GetStatusResponse) string {
	if status == nil {
		return "<nil status>"
	}

	safety := "off"
	if status.GetSafetyEnabled() {
		safety = "on"
	}

	path := "clear"
	if status.GetBlocked() {
		path = "blocked"
	}

	maneuver := "idle"
	if status.GetManeuverActive() {
		maneuver = "active"
	}

	return fmt.Sprintf("safety %s, path %s, maneuver %s, setpoint %s",
		safety, path, maneuver, formatCommand(status.GetSetpoint()))
}

// FormatNotification renders a notification for humans.
func FormatNotification(n *pb.Notification) string {
	if n == nil {
		return "<nil notification>"
	}

	timestamp := "<unknown>"
	if t := n.GetTimestamp(); t != nil {
		timestamp = t.AsTime().Local().Format(time.TimeOnly)
	}

	return fmt.Sprintf("%s %s", timestamp, n.GetText())
}

// formatCommand renders a velocity command for humans.
func formatCommand(cmd *pb.MotionCommand) string {
	return fmt.Sprintf("{linear %.2f, angular %.2f}", cmd.GetLinear(), cmd.GetAngular())
}

// severityLabel renders a wire severity for humans.
func severityLabel(s pb.Severity) string {
	switch s {
	case pb.Severity_SEVERITY_INFO:
		return "info"
	case pb.Severity_SEVERITY_WARNING:
		return "warning"
	case pb.Severity_SEVERITY_ALERT:
		return "alert"
	case pb.Severity_SEVERITY_UNSPECIFIED:
	}

	return "unknown"
}
