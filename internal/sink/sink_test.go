package sink

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"github.com/oshokin/rover-guard/internal/domain/motion"
	pb "github.com/oshokin/rover-guard/internal/pb/v1"
)

// TestUDP_PublishRoundtrip sends a command through the UDP sink and decodes
// the datagram on a local listener.
func TestUDP_PublishRoundtrip(t *testing.T) {
	t.Parallel()

	listener, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)

	defer listener.Close()

	s, err := NewUDP(listener.LocalAddr().String())
	require.NoError(t, err)

	defer s.Close()

	want := motion.Command{Linear: 0.4, Angular: -0.6}
	require.NoError(t, s.Publish(context.Background(), want))

	require.NoError(t, listener.SetReadDeadline(time.Now().Add(2*time.Second)))

	buf := make([]byte, 512)

	n, _, err := listener.ReadFromUDP(buf)
	require.NoError(t, err)

	var got pb.MotionCommand

	require.NoError(t, proto.Unmarshal(buf[:n], &got))
	require.InDelta(t, want.Linear, got.GetLinear(), 1e-9)
	require.InDelta(t, want.Angular, got.GetAngular(), 1e-9)
}

// TestUDP_PublishCanceledContext verifies a canceled context short-circuits the write.
func TestUDP_PublishCanceledContext(t *testing.T) {
	t.Parallel()

	listener, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)

	defer listener.Close()

	s, err := NewUDP(listener.LocalAddr().String())
	require.NoError(t, err)

	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Error(t, s.Publish(ctx, motion.Stop))
}

// TestFunc_Publish exercises the function adapter.
func TestFunc_Publish(t *testing.T) {
	t.Parallel()

	var got motion.Command

	s := Func(func(_ context.Context, cmd motion.Command) error {
		got = cmd

		return nil
	})

	require.NoError(t, s.Publish(context.Background(), motion.Command{Angular: 0.6}))
	require.InDelta(t, 0.6, got.Angular, 1e-9)
}

// TestLog_Publish ensures the log sink accepts any command without error.
func TestLog_Publish(t *testing.T) {
	t.Parallel()

	require.NoError(t, NewLog().Publish(context.Background(), motion.Command{Linear: 1}))
}
