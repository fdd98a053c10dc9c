package transport

import (
	"context"
	"fmt"
	"net"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultTCPPort is the Meshtastic firmware API port.
	DefaultTCPPort     = "4403"
	defaultDialTimeout = 5 * time.Second
)

// TCPTransport connects to a Meshtastic device over TCP (default :4403).
type TCPTransport struct {
	addr    string
	timeout time.Duration
	log     *zap.Logger
}

// NewTCPTransport returns an Opener for addr. A missing port selects 4403.
func NewTCPTransport(addr string, timeout time.Duration, log *zap.Logger) *TCPTransport {
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = net.JoinHostPort(addr, DefaultTCPPort)
	}
	if timeout <= 0 {
		timeout = defaultDialTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &TCPTransport{addr: addr, timeout: timeout, log: log}
}

// Addr returns the dial address.
func (t *TCPTransport) Addr() string { return t.addr }

// Open dials the device. net.Conn already unblocks Read on Close.
func (t *TCPTransport) Open(ctx context.Context) (Transport, error) {
	d := net.Dialer{Timeout: t.timeout, KeepAlive: 30 * time.Second}
	conn, err := d.DialContext(ctx, "tcp", t.addr)
	if err != nil {
		return nil, fmt.Errorf("tcp: dial %s: %w", t.addr, err)
	}
	if tc, ok := conn.(*net.TCPConn); ok {
		_ = tc.SetNoDelay(true)
	}
	t.log.Info("tcp: connected", zap.String("addr", t.addr))
	return conn, nil
}
