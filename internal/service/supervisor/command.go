package supervisor

import (
	"context"
	"errors"
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	maneuverapi "github.com/oshokin/rover-guard/internal/api/grpc/maneuver"
	api "github.com/oshokin/rover-guard/internal/api/grpc/supervisor"
	"github.com/oshokin/rover-guard/internal/config"
	"github.com/oshokin/rover-guard/internal/domain/maneuver"
	"github.com/oshokin/rover-guard/internal/domain/scan"
	"github.com/oshokin/rover-guard/internal/logger"
	"github.com/oshokin/rover-guard/internal/notify"
	pb "github.com/oshokin/rover-guard/internal/pb/v1"
	"github.com/oshokin/rover-guard/internal/sensor"
	executor "github.com/oshokin/rover-guard/internal/service/maneuver"
	"github.com/oshokin/rover-guard/internal/sink"
)

// Options controls the rover-supervisor process and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ListenAddress provides an optional listen address override for the gRPC server.
	ListenAddress string
	// SensorListenAddress overrides the UDP address range scans arrive on.
	SensorListenAddress string
	// CommandSinkAddress overrides the UDP address motion commands go to.
	CommandSinkAddress string
	// ManeuverAddress overrides the maneuver service address. When neither
	// this nor the config sets one, the supervisor hosts the maneuver
	// service itself.
	ManeuverAddress string
}

// ErrNoSupervisorAddress indicates missing supervisor configuration.
var ErrNoSupervisorAddress = errors.New("no supervisor address configured")

// Run assembles the supervisor and blocks until the context is canceled:
// the gRPC server, the sensor listener, the velocity mixer and, unless an
// external maneuver service is configured, an in-process maneuver executor.
//
//nolint:funlen,cyclop // Process wiring is long but linear.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "rover-supervisor")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	applyOverrides(cfg, opts)

	listenAddress, err := resolveListenAddress(cfg.SupervisorAddress, opts.ListenAddress)
	if err != nil {
		return fmt.Errorf("resolve listen address: %w", err)
	}

	commandSink, closeSink, err := buildSink(cfg.CommandSinkAddress)
	if err != nil {
		return err
	}
	defer closeSink()

	hub := notify.NewHub()
	defer hub.Close()

	// Setup TCP listener for the gRPC server before dialing the maneuver
	// service: when hosting it locally, the dial target is our own port.
	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	maneuverAddress := cfg.ManeuverAddress
	hostManeuver := maneuverAddress == ""

	if hostManeuver {
		_, port, err := net.SplitHostPort(lis.Addr().String())
		if err != nil {
			return fmt.Errorf("split listen address: %w", err)
		}

		maneuverAddress = net.JoinHostPort("127.0.0.1", port)
	}

	conn, err := grpc.NewClient(maneuverAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("dial maneuver service: %w", err)
	}

	defer func() {
		_ = conn.Close()
	}()

	dispatcher := NewManeuverDispatcher(NewGRPCTransport(pb.NewManeuverServiceClient(conn)), hub)
	svc := NewService(cfg.Tuning, commandSink, hub, dispatcher)

	grpcServer := grpc.NewServer()
	pb.RegisterSupervisorServiceServer(grpcServer, api.NewServer(svc))

	if hostManeuver {
		plan := maneuverPlan(cfg.Tuning)
		pb.RegisterManeuverServiceServer(grpcServer, maneuverapi.NewServer(executor.NewExecutor(plan, commandSink)))
	}

	listener := sensor.NewListener(cfg.SensorListenAddress, func(frame *scan.Frame) {
		svc.HandleFrame(ctx, frame)
	})

	logger.InfoKV(ctx, "Rover supervisor listening",
		"listen_address", lis.Addr().String(),
		"sensor_listen", cfg.SensorListenAddress,
		"maneuver_address", maneuverAddress,
		"hosting_maneuver", hostManeuver)

	// The loops stop with the process context; their context errors are
	// expected on shutdown and not reported.
	loopCtx, cancelLoops := context.WithCancel(ctx)
	defer cancelLoops()

	loopErrs := make(chan error, 2)

	go func() {
		loopErrs <- svc.Run(loopCtx)
	}()

	go func() {
		loopErrs <- listener.Run(loopCtx)
	}()

	// Done channel is closed after GracefulStop finishes to ensure we block
	// until the server fully stops before returning.
	done := make(chan struct{})

	go func() {
		select {
		case <-ctx.Done():
		case err := <-loopErrs:
			// A loop failing outside shutdown takes the process down.
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.ErrorKV(ctx, "control loop failed", "error", err)
			}
		}

		logger.Info(ctx, "Shutting down gRPC server")
		cancelLoops()
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

// applyOverrides copies command-line overrides onto the loaded configuration.
func applyOverrides(cfg *config.Config, opts *Options) {
	if opts.SensorListenAddress != "" {
		cfg.SensorListenAddress = opts.SensorListenAddress
	}

	if opts.CommandSinkAddress != "" {
		cfg.CommandSinkAddress = opts.CommandSinkAddress
	}

	if opts.ManeuverAddress != "" {
		cfg.ManeuverAddress = opts.ManeuverAddress
	}
}

// buildSink picks the motion sink for the configured address: UDP when one
// is set, the log sink otherwise.
func buildSink(address string) (sink.Sink, func(), error) {
	if address == "" {
		return sink.NewLog(), func() {}, nil
	}

	udp, err := sink.NewUDP(address)
	if err != nil {
		return nil, nil, fmt.Errorf("open command sink: %w", err)
	}

	return udp, func() { _ = udp.Close() }, nil
}

// maneuverPlan derives the executor's plan from the tuning block.
func maneuverPlan(tuning config.Tuning) maneuver.Plan {
	return maneuver.Plan{
		Cycles:        tuning.ManeuverCycles,
		Subticks:      tuning.ManeuverSubticks,
		SubtickPeriod: tuning.ManeuverSubtickPeriod,
		PausePeriod:   tuning.ManeuverPausePeriod,
		AngularRate:   tuning.ManeuverAngularRate,
	}
}

// resolveListenAddress determines the listen address for the gRPC server.
// If override is provided, uses it directly. Otherwise extracts the port from
// configAddr and binds on all interfaces.
func resolveListenAddress(configAddr, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	if configAddr == "" {
		return "", ErrNoSupervisorAddress
	}

	_, port, err := net.SplitHostPort(configAddr)
	if err != nil {
		return "", fmt.Errorf("invalid supervisor address format %q: %w", configAddr, err)
	}

	return ":" + port, nil
}
