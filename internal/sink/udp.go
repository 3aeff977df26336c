package sink

import (
	"context"
	"fmt"
	"net"
	"sync"

	"google.golang.org/protobuf/proto"

	"github.com/oshokin/rover-guard/internal/domain/motion"
	pb "github.com/oshokin/rover-guard/internal/pb/v1"
)

// UDP publishes each command as one protobuf MotionCommand datagram.
// Datagram delivery is best-effort, which matches the fire-and-forget
// contract of the sink: the freshest command always supersedes older ones,
// so there is nothing useful to retry.
type UDP struct {
	mu   sync.Mutex
	conn *net.UDPConn
}

// NewUDP resolves the target address and opens the sending socket.
func NewUDP(address string) (*UDP, error) {
	addr, err := net.ResolveUDPAddr("udp", address)
	if err != nil {
		return nil, fmt.Errorf("resolve command sink address: %w", err)
	}

	conn, err := net.DialUDP("udp", nil, addr)
	if err != nil {
		return nil, fmt.Errorf("dial command sink: %w", err)
	}

	return &UDP{conn: conn}, nil
}

// Publish marshals the command and writes one datagram.
func (u *UDP) Publish(ctx context.Context, cmd motion.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := proto.Marshal(&pb.MotionCommand{
		Linear:  cmd.Linear,
		Angular: cmd.Angular,
	})
	if err != nil {
		return fmt.Errorf("marshal command: %w", err)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if _, err := u.conn.Write(payload); err != nil {
		return fmt.Errorf("write command: %w", err)
	}

	return nil
}

// Close releases the socket.
func (u *UDP) Close() error {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.conn.Close()
}
