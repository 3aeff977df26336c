package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/rover-guard/internal/config"
	"github.com/oshokin/rover-guard/internal/service/maneuver"
	"github.com/oshokin/rover-guard/internal/version"
)

var (
	// cfgPath stores the configuration file path.
	cfgPath string
	// commandSink overrides the UDP address motion commands go to.
	commandSink string

	// rootCmd represents the base command for the maneuver executor.
	rootCmd = &cobra.Command{
		Use:   "rover-maneuver [listen-address]",
		Short: "Run the standalone evasive-maneuver executor.",
		Long: `Runs the evasive-maneuver executor as its own process.

Accepts one maneuver at a time over gRPC, streams per-cycle feedback back to
the caller, and publishes rotation commands to the motion sink. Most
deployments let the supervisor host the executor in-process; run this binary
when the executor needs to sit closer to the drive base.

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

			return maneuver.Run(ctx, &maneuver.Options{
				ConfigPath:         cfgPath,
				ListenAddress:      listenAddress,
				CommandSinkAddress: commandSink,
			})
		},
	}
)

// Execute runs the rover-maneuver CLI and exits with non-zero status on error.
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
	rootCmd.Flags().StringVar(&commandSink, "command-sink", "", "UDP address to publish motion commands to")
}
