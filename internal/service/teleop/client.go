package teleop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/oshokin/rover-guard/internal/config"
	pb "github.com/oshokin/rover-guard/internal/pb/v1"
)

// Client wraps the gRPC SupervisorService client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the supervisor.
	conn *grpc.ClientConn
	// api is the generated SupervisorService client interface.
	api pb.SupervisorServiceClient

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

// errAddressRequired is returned when a required address value is missing.
var errAddressRequired = errors.New("address must be provided")

// Dial establishes a gRPC connection to the supervisor.
// Note: this uses insecure transport credentials; deploy on a trusted network
// or terminate TLS in a proxy until native TLS is added.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial supervisor: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         pb.NewSupervisorServiceClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// Drive sends one nudge in the given direction.
func (c *Client) Drive(ctx context.Context, direction pb.DriveDirection) (*pb.DriveResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.Drive(callCtx, &pb.DriveRequest{Direction: direction})
	if err != nil {
		return nil, fmt.Errorf("drive: %w", err)
	}

	return response, nil
}

// Stop zeroes the setpoint and cancels any in-flight maneuver.
func (c *Client) Stop(ctx context.Context) (*pb.StopResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.Stop(callCtx, &pb.StopRequest{})
	if err != nil {
		return nil, fmt.Errorf("stop: %w", err)
	}

	return response, nil
}

// SetSafetyMode switches obstacle guarding on or off.
func (c *Client) SetSafetyMode(ctx context.Context, enabled bool) (*pb.SetSafetyModeResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.SetSafetyMode(callCtx, &pb.SetSafetyModeRequest{Enabled: enabled})
	if err != nil {
		return nil, fmt.Errorf("set safety mode: %w", err)
	}

	return response, nil
}

// Status retrieves a snapshot of the supervisor's state.
func (c *Client) Status(ctx context.Context) (*pb.GetStatusResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.GetStatus(callCtx, &pb.GetStatusRequest{})
	if err != nil {
		return nil, fmt.Errorf("get status: %w", err)
	}

	return response, nil
}

// Watch streams notifications to the handler until the context ends or the
// stream closes. Watch blocks; it returns nil on a clean end of stream.
// The call deliberately ignores the call timeout: a watch runs until stopped.
func (c *Client) Watch(ctx context.Context, handler func(*pb.Notification)) error {
	stream, err := c.api.StreamNotifications(ctx, &pb.StreamNotificationsRequest{})
	if err != nil {
		return fmt.Errorf("open notification stream: %w", err)
	}

	for {
		notification, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			return fmt.Errorf("receive notification: %w", err)
		}

		handler(notification)
	}
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
