package maneuver

import (
	"context"
	"errors"
	"fmt"
	"net"

	"google.golang.org/grpc"

	api "github.com/oshokin/rover-guard/internal/api/grpc/maneuver"
	"github.com/oshokin/rover-guard/internal/config"
	domain "github.com/oshokin/rover-guard/internal/domain/maneuver"
	"github.com/oshokin/rover-guard/internal/logger"
	pb "github.com/oshokin/rover-guard/internal/pb/v1"
	"github.com/oshokin/rover-guard/internal/sink"
)

// Options controls the rover-maneuver process and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ListenAddress provides an optional listen address override for the gRPC server.
	ListenAddress string
	// CommandSinkAddress overrides the UDP address motion commands go to.
	CommandSinkAddress string
}

// ErrNoManeuverAddress indicates the standalone executor has no address to
// listen on.
var ErrNoManeuverAddress = errors.New("no maneuver address configured")

// Run starts the standalone maneuver executor and blocks until the context
// is canceled. Deployments that run the supervisor alone do not need this
// process; it exists for setups where the executor sits closer to the base.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "rover-maneuver")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if opts.CommandSinkAddress != "" {
		cfg.CommandSinkAddress = opts.CommandSinkAddress
	}

	listenAddress, err := resolveListenAddress(cfg.ManeuverAddress, opts.ListenAddress)
	if err != nil {
		return fmt.Errorf("resolve listen address: %w", err)
	}

	var commandSink sink.Sink = sink.NewLog()

	if cfg.CommandSinkAddress != "" {
		udp, err := sink.NewUDP(cfg.CommandSinkAddress)
		if err != nil {
			return fmt.Errorf("open command sink: %w", err)
		}

		defer func() {
			_ = udp.Close()
		}()

		commandSink = udp
	}

	plan := domain.Plan{
		Cycles:        cfg.Tuning.ManeuverCycles,
		Subticks:      cfg.Tuning.ManeuverSubticks,
		SubtickPeriod: cfg.Tuning.ManeuverSubtickPeriod,
		PausePeriod:   cfg.Tuning.ManeuverPausePeriod,
		AngularRate:   cfg.Tuning.ManeuverAngularRate,
	}

	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	grpcServer := grpc.NewServer()
	pb.RegisterManeuverServiceServer(grpcServer, api.NewServer(NewExecutor(plan, commandSink)))

	logger.InfoKV(ctx, "Maneuver executor listening",
		"listen_address", lis.Addr().String(),
		"cycles", plan.Cycles,
		"angular_rate", plan.AngularRate)

	// Done channel is closed after GracefulStop finishes to ensure we block
	// until the server fully stops before returning.
	done := make(chan struct{})

	go func() {
		<-ctx.Done()
		logger.Info(ctx, "Shutting down gRPC server")
		grpcServer.GracefulStop()
		close(done)
	}()

	if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	<-done
	logger.Info(ctx, "GRPC server stopped")

	return nil
}

// resolveListenAddress determines the listen address for the gRPC server.
func resolveListenAddress(configAddr, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	if configAddr == "" {
		return "", ErrNoManeuverAddress
	}

	_, port, err := net.SplitHostPort(configAddr)
	if err != nil {
		return "", fmt.Errorf("invalid maneuver address format %q: %w", configAddr, err)
	}

	return ":" + port, nil
}
