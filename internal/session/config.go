package session

import (
	"time"

	"go.uber.org/zap"

	"github.com/gg-glitch-88/meshlink/internal/frame"
)

// Config tunes a Session. The zero value of each field selects its default.
type Config struct {
	// HandshakeTimeout bounds Configure when its context has no earlier deadline.
	HandshakeTimeout time.Duration
	// WriteQueueSize bounds the outbound queue; 0 means unbounded.
	WriteQueueSize int
	// ConsumerBuffer bounds envelopes held for a slow consumer; 0 means
	// unbounded. A full buffer stalls the reader, never drops.
	ConsumerBuffer int
	// DisconnectGrace is how long Disconnect waits for the goodbye frame.
	DisconnectGrace time.Duration
	// HeartbeatInterval sends a heartbeat while Active; 0 disables it.
	HeartbeatInterval time.Duration
	// ReadBufferSize is the size of each transport read.
	ReadBufferSize int
	// Frame controls the decoder's payload limit and resync policy.
	Frame frame.Options
}

const (
	DefaultHandshakeTimeout = 30 * time.Second
	DefaultDisconnectGrace  = 500 * time.Millisecond
	defaultReadBufferSize   = 1024
)

// DefaultConfig returns the settings used when no Config is supplied.
func DefaultConfig() Config {
	return Config{
		HandshakeTimeout: DefaultHandshakeTimeout,
		DisconnectGrace:  DefaultDisconnectGrace,
		ReadBufferSize:   defaultReadBufferSize,
		Frame:            frame.DefaultOptions(),
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.HandshakeTimeout <= 0 {
		c.HandshakeTimeout = d.HandshakeTimeout
	}
	if c.DisconnectGrace <= 0 {
		c.DisconnectGrace = d.DisconnectGrace
	}
	if c.ReadBufferSize <= 0 {
		c.ReadBufferSize = d.ReadBufferSize
	}
	if c.Frame.MaxPayload <= 0 {
		c.Frame.MaxPayload = frame.MaxPayload
	}
	if c.WriteQueueSize < 0 {
		c.WriteQueueSize = 0
	}
	if c.ConsumerBuffer < 0 {
		c.ConsumerBuffer = 0
	}
	return c
}

// DecodeErrorHandler observes payloads that failed to decode. It runs on the
// reader goroutine and must not block.
type DecodeErrorHandler func(err error, payload []byte)

// Option configures a Session.
type Option func(*Session)

func WithConfig(c Config) Option {
	return func(s *Session) { s.cfg = c.withDefaults() }
}

func WithLogger(log *zap.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

func WithMetrics(m *Metrics) Option {
	return func(s *Session) { s.metrics = m }
}

func WithDecodeErrorHandler(h DecodeErrorHandler) Option {
	return func(s *Session) { s.onDecodeErr = h }
}
