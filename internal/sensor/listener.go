package sensor

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"google.golang.org/protobuf/proto"

	"github.com/oshokin/rover-guard/internal/domain/scan"
	"github.com/oshokin/rover-guard/internal/logger"
	pb "github.com/oshokin/rover-guard/internal/pb/v1"
)

const (
	// readBufferSize fits a full sweep: a dense scanner sends on the order of
	// a few thousand float64 readings per frame.
	readBufferSize = 64 * 1024

	// readDeadline bounds each blocking read so context cancellation is
	// observed promptly.
	readDeadline = 100 * time.Millisecond
)

// Handler consumes one decoded frame. It is called on the listener goroutine,
// so it must return quickly.
type Handler func(frame *scan.Frame)

// Listener receives protobuf RangeScan datagrams and hands the decoded frames
// to a handler. Malformed datagrams are logged and skipped; the listener only
// stops when its context is canceled or the socket fails.
type Listener struct {
	address string
	handler Handler
}

// NewListener returns a listener bound to the given UDP address once Run is called.
func NewListener(address string, handler Handler) *Listener {
	return &Listener{
		address: address,
		handler: handler,
	}
}

// Run listens until the context is canceled. It returns the context error on
// cancellation and a socket error otherwise.
func (l *Listener) Run(ctx context.Context) error {
	addr, err := net.ResolveUDPAddr("udp", l.address)
	if err != nil {
		return fmt.Errorf("resolve sensor listen address: %w", err)
	}

	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return fmt.Errorf("listen for range scans: %w", err)
	}

	defer conn.Close()

	logger.InfoKV(ctx, "sensor listener started", "address", conn.LocalAddr().String())

	buffer := make([]byte, readBufferSize)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		// Bounded reads keep the loop responsive to cancellation.
		if err := conn.SetReadDeadline(time.Now().Add(readDeadline)); err != nil {
			return fmt.Errorf("set read deadline: %w", err)
		}

		n, _, err := conn.ReadFromUDP(buffer)
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}

			if ctx.Err() != nil {
				return ctx.Err()
			}

			return fmt.Errorf("read range scan: %w", err)
		}

		frame, err := decodeFrame(buffer[:n])
		if err != nil {
			logger.WarnKV(ctx, "discarding malformed range scan", "error", err)

			continue
		}

		l.handler(frame)
	}
}

// decodeFrame unmarshals one datagram into a frame. A missing capture time
// is replaced with the arrival time.
func decodeFrame(payload []byte) (*scan.Frame, error) {
	var msg pb.RangeScan
	if err := proto.Unmarshal(payload, &msg); err != nil {
		return nil, fmt.Errorf("unmarshal range scan: %w", err)
	}

	capturedAt := time.Now()
	if ts := msg.GetCapturedAt(); ts != nil {
		capturedAt = ts.AsTime()
	}

	return &scan.Frame{
		Ranges:     msg.GetRanges(),
		CapturedAt: capturedAt,
	}, nil
}
