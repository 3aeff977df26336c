package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/rover-guard/internal/config"
	"github.com/oshokin/rover-guard/internal/service/supervisor"
	"github.com/oshokin/rover-guard/internal/version"
)

var (
	// cfgPath stores the configuration file path.
	cfgPath string
	// sensorListen overrides the UDP address range scans arrive on.
	sensorListen string
	// commandSink overrides the UDP address motion commands go to.
	commandSink string
	// maneuverAddress overrides the maneuver service address.
	maneuverAddress string

	// rootCmd represents the base command for the motion supervisor.
	rootCmd = &cobra.Command{
		Use:   "rover-supervisor [listen-address]",
		Short: "Run the safety-gated motion supervisor.",
		Long: `Runs the motion supervisor that sits between operators and the drive base.

Listens for range scans over UDP, blocks motion when an obstacle enters the
guard zone, and dispatches an evasive maneuver to the executor. Operators
connect over gRPC to nudge the velocity setpoint, toggle safety mode, and
watch notifications. When no maneuver service address is configured, the
supervisor hosts the maneuver executor in-process.

Listen address can be provided as argument or loaded from configuration file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use listen address argument if provided, otherwise rely on config.
			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			return supervisor.Run(ctx, &supervisor.Options{
				ConfigPath:          cfgPath,
				ListenAddress:       listenAddress,
				SensorListenAddress: sensorListen,
				CommandSinkAddress:  commandSink,
				ManeuverAddress:     maneuverAddress,
			})
		},
	}
)

// Execute runs the rover-supervisor CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVar(&sensorListen, "sensor-listen", "", "UDP address to receive range scans on")
	rootCmd.Flags().StringVar(&commandSink, "command-sink", "", "UDP address to publish motion commands to")
	rootCmd.Flags().StringVar(&maneuverAddress, "maneuver-addr", "", "address of an external maneuver service")
}
