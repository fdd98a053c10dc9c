// Package transport provides the byte-stream link to a Meshtastic device and
// its TCP, serial, BLE and in-memory implementations.
package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
)

// ErrClosed is returned by operations on a transport that has been closed.
var ErrClosed = errors.New("transport: closed")

// Transport is an ordered, reliable duplex byte stream. Close must unblock a
// pending Read. Implementations must allow one reader and one writer to run
// concurrently.
type Transport interface {
	io.ReadWriteCloser
}

// Opener establishes a Transport.
type Opener interface {
	Open(ctx context.Context) (Transport, error)
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(ctx context.Context) (Transport, error)

func (f OpenerFunc) Open(ctx context.Context) (Transport, error) { return f(ctx) }

// Kind selects a provider.
type Kind string

const (
	KindTCP    Kind = "tcp"
	KindSerial Kind = "serial"
	KindBLE    Kind = "ble"
)

// Options configures New.
type Options struct {
	Kind        Kind
	Addr        string        // tcp host[:port]
	Port        string        // serial device path
	BaudRate    int           // serial
	Device      string        // ble name or address; empty selects the first radio seen
	DialTimeout time.Duration // tcp
	ScanTimeout time.Duration // ble
}

// New returns the Opener selected by opts.Kind.
func New(opts Options, log *zap.Logger) (Opener, error) {
	if log == nil {
		log = zap.NewNop()
	}
	switch opts.Kind {
	case KindTCP, "":
		if opts.Addr == "" {
			return nil, fmt.Errorf("transport: tcp address is required")
		}
		return NewTCPTransport(opts.Addr, opts.DialTimeout, log), nil
	case KindSerial:
		if opts.Port == "" {
			return nil, fmt.Errorf("transport: serial port is required")
		}
		return NewSerialTransport(opts.Port, opts.BaudRate, log), nil
	case KindBLE:
		return NewBLETransport(opts.Device, opts.ScanTimeout, log), nil
	default:
		return nil, fmt.Errorf("transport: unknown kind %q", opts.Kind)
	}
}

const (
	initialBackoff = 2 * time.Second
	maxBackoff     = 60 * time.Second
)

// OpenWithRetry calls o.Open until it succeeds or ctx ends, backing off
// exponentially between attempts.
func OpenWithRetry(ctx context.Context, o Opener, log *zap.Logger) (Transport, error) {
	if log == nil {
		log = zap.NewNop()
	}
	backoff := initialBackoff
	for {
		t, err := o.Open(ctx)
		if err == nil {
			return t, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Warn("transport: open failed",
			zap.Duration("retry_in", backoff),
			zap.Error(err),
		)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
			backoff = min(backoff*2, maxBackoff)
		}
	}
}
