package sensor

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/oshokin/rover-guard/internal/domain/scan"
	pb "github.com/oshokin/rover-guard/internal/pb/v1"
)

// TestListener_DeliversFrames sends a well-formed datagram and expects the
// handler to receive the decoded frame, then a malformed one which must be
// skipped without stopping the listener.
func TestListener_DeliversFrames(t *testing.T) {
	t.Parallel()

	frames := make(chan *scan.Frame, 4)

	listener := NewListener("127.0.0.1:0", func(frame *scan.Frame) {
		frames <- frame
	})

	// Bind a throwaway socket first to learn a free port, then hand the same
	// address to the listener.
	probe, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)

	address := probe.LocalAddr().String()
	require.NoError(t, probe.Close())

	listener.address = address

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)

	go func() {
		done <- listener.Run(ctx)
	}()

	captured := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	payload, err := proto.Marshal(&pb.RangeScan{
		Ranges:     []float64{1.5, 2.5, 0.3},
		CapturedAt: timestamppb.New(captured),
	})
	require.NoError(t, err)

	target, err := net.ResolveUDPAddr("udp", address)
	require.NoError(t, err)

	// An unconnected socket does not surface ICMP port-unreachable errors,
	// so early writes racing the listener's bind stay harmless.
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)

	defer conn.Close()

	// The listener may not have bound yet; retry until the frame arrives.
	var frame *scan.Frame

	deadline := time.After(5 * time.Second)

	for frame == nil {
		_, err = conn.WriteToUDP(payload, target)
		require.NoError(t, err)

		select {
		case frame = <-frames:
		case <-time.After(50 * time.Millisecond):
		case <-deadline:
			t.Fatal("frame never delivered")
		}
	}

	require.Equal(t, []float64{1.5, 2.5, 0.3}, frame.Ranges)
	require.True(t, frame.CapturedAt.Equal(captured))

	// Garbage must be discarded, not fatal.
	_, err = conn.WriteToUDP([]byte{0xff, 0xff, 0xff, 0xff}, target)
	require.NoError(t, err)

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}

// TestDecodeFrame_DefaultsCaptureTime verifies frames without a capture
// timestamp get stamped on arrival.
func TestDecodeFrame_DefaultsCaptureTime(t *testing.T) {
	t.Parallel()

	payload, err := proto.Marshal(&pb.RangeScan{Ranges: []float64{0.9}})
	require.NoError(t, err)

	before := time.Now()

	frame, err := decodeFrame(payload)
	require.NoError(t, err)
	require.Equal(t, []float64{0.9}, frame.Ranges)
	require.False(t, frame.CapturedAt.Before(before))
}

// TestDecodeFrame_Malformed verifies garbage input is an error.
func TestDecodeFrame_Malformed(t *testing.T) {
	t.Parallel()

	_, err := decodeFrame([]byte{0xde, 0xad, 0xbe, 0xef})
	require.Error(t, err)
}
