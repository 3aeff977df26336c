package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/rover-guard/internal/config"
	"github.com/oshokin/rover-guard/internal/service/teleop"
	"github.com/oshokin/rover-guard/internal/version"
)

var (
	// cfgPath stores the configuration file path.
	cfgPath string
	// supervisorAddress overrides the supervisor address from config.
	supervisorAddress string

	// rootCmd represents the base command for the teleoperation client.
	rootCmd = &cobra.Command{
		Use:   "rover-teleop",
		Short: "Teleoperation client for the rover supervisor.",
		Long: `Command-line client for driving the rover through the motion supervisor.

Nudges the velocity setpoint, stops the rover, toggles safety mode, queries
supervisor status, and watches the notification stream. The supervisor
address can be set with the --server flag or loaded from configuration file.`,
	}

	// driveCmd nudges the velocity setpoint in one direction.
	driveCmd = &cobra.Command{
		Use:   "drive (forward|backward|left|right)",
		Short: "Nudge the velocity setpoint in the given direction.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return teleop.RunDrive(ctx, options(), args[0])
		},
	}

	// stopCmd zeroes the setpoint and cancels any running maneuver.
	stopCmd = &cobra.Command{
		Use:   "stop",
		Short: "Stop the rover and cancel any running maneuver.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return teleop.RunStop(ctx, options())
		},
	}

	// safetyCmd toggles the obstacle-guard safety mode.
	safetyCmd = &cobra.Command{
		Use:   "safety (on|off)",
		Short: "Enable or disable the obstacle guard.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var enabled bool

			switch args[0] {
			case "on":
				enabled = true
			case "off":
				enabled = false
			default:
				return fmt.Errorf("safety mode must be %q or %q, got %q", "on", "off", args[0])
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return teleop.RunSafety(ctx, options(), enabled)
		},
	}

	// statusCmd prints the current supervisor status.
	statusCmd = &cobra.Command{
		Use:   "status",
		Short: "Show safety mode, gate state, and the current setpoint.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return teleop.RunStatus(ctx, options())
		},
	}

	// watchCmd streams supervisor notifications until interrupted.
	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Stream supervisor notifications until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return teleop.RunWatch(ctx, options())
		},
	}
)

// options collects the persistent flag values into teleop options.
func options() *teleop.Options {
	return &teleop.Options{
		ConfigPath:        cfgPath,
		SupervisorAddress: supervisorAddress,
	}
}

// Execute runs the rover-teleop CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().StringVarP(&supervisorAddress, "server", "s", "", "supervisor address override")

	rootCmd.AddCommand(driveCmd, stopCmd, safetyCmd, statusCmd, watchCmd)
}
