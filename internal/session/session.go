// Package session runs the host side of a Meshtastic API link: one reader
// goroutine that frames and decodes the device stream, one writer goroutine
// that serializes outgoing frames, and the state machine that drives the
// want_config_id / config_complete_id handshake.
package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/gg-glitch-88/meshlink/internal/frame"
	"github.com/gg-glitch-88/meshlink/internal/proto"
	pb "github.com/gg-glitch-88/meshlink/internal/proto/meshtasticpb"
	"github.com/gg-glitch-88/meshlink/internal/transport"
)

// Session binds one transport, its handshake and its consumer channel.
type Session struct {
	cfg         Config
	log         *zap.Logger
	metrics     *Metrics
	codec       *proto.MeshtasticProtobuf
	onDecodeErr DecodeErrorHandler

	// mu guards the fields shared between callers and the reader.
	mu      sync.Mutex
	state   State
	tr      transport.Transport
	err     error
	awaitID uint32
	waiter  chan struct{} // closed when the awaited marker arrives

	nextID atomic.Uint32

	out      *outbox
	in       chan *pb.FromRadio // reader -> pump
	events   chan *pb.FromRadio // pump -> consumer
	flushed  chan struct{}      // writer drained a closed outbox
	quit     chan struct{}      // stops writer and heartbeat
	abort    chan struct{}      // stops pump and a blocked reader
	done     chan struct{}      // closed on reaching StateClosed
	pumpDone chan struct{}

	wg           sync.WaitGroup
	teardownOnce sync.Once
	abortOnce    sync.Once
	flushOnce    sync.Once
}

// New returns an Idle session.
func New(opts ...Option) *Session {
	s := &Session{
		cfg:      DefaultConfig(),
		log:      zap.NewNop(),
		codec:    proto.New(),
		in:       make(chan *pb.FromRadio),
		events:   make(chan *pb.FromRadio),
		flushed:  make(chan struct{}),
		quit:     make(chan struct{}),
		abort:    make(chan struct{}),
		done:     make(chan struct{}),
		pumpDone: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = NewMetrics(nil)
	}
	s.out = newOutbox(s.cfg.WriteQueueSize)
	s.nextID.Store(rand.Uint32())
	return s
}

// Connect is New followed by (*Session).Connect.
func Connect(tr transport.Transport, opts ...Option) (*Session, <-chan *pb.FromRadio, error) {
	s := New(opts...)
	ch, err := s.Connect(tr)
	if err != nil {
		return nil, nil, err
	}
	return s, ch, nil
}

// Connect attaches an open transport and starts the session tasks. The
// returned channel carries every decoded envelope in wire order, including
// those that arrive before Configure, and is closed exactly once.
func (s *Session) Connect(tr transport.Transport) (<-chan *pb.FromRadio, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	return s.attach(tr), nil
}

// Open dials through o while in StateConnecting, then behaves like Connect.
// A failed open leaves the session Closed with a *TransportError.
func (s *Session) Open(ctx context.Context, o transport.Opener) (<-chan *pb.FromRadio, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	tr, err := o.Open(ctx)
	if err != nil {
		terr := &TransportError{Op: "open", Err: err}
		s.closeUnattached(terr)
		return nil, terr
	}
	s.mu.Lock()
	aborted := s.state != StateConnecting
	s.mu.Unlock()
	if aborted {
		// Disconnect ran while dialing.
		_ = tr.Close()
		s.closeUnattached(nil)
		return nil, ErrNotConnected
	}
	return s.attach(tr), nil
}

// closeUnattached moves a session that never started its tasks to Closed.
func (s *Session) closeUnattached(cause error) {
	s.teardownOnce.Do(func() {
		s.mu.Lock()
		s.err = cause
		s.setStateLocked(StateClosed)
		s.mu.Unlock()
		s.out.close()
		close(s.quit)
		close(s.events)
		close(s.pumpDone)
		close(s.done)
	})
}

func (s *Session) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateIdle {
		return ErrAlreadyConnected
	}
	s.setStateLocked(StateConnecting)
	return nil
}

func (s *Session) attach(tr transport.Transport) <-chan *pb.FromRadio {
	s.mu.Lock()
	s.tr = tr
	s.setStateLocked(StateConnected)
	s.mu.Unlock()

	s.wg.Add(2)
	go s.readLoop(tr)
	go s.writeLoop(tr)
	if s.cfg.HeartbeatInterval > 0 {
		s.wg.Add(1)
		go s.heartbeatLoop()
	}
	go s.pump()
	return s.events
}

// Configure runs the configuration handshake: it sends want_config_id and
// waits until a config_complete_id carrying the same id passes through
// dispatch. Markers with other ids are logged and ignored. On timeout or
// cancellation the session returns to the state it was in.
func (s *Session) Configure(ctx context.Context, id uint32) error {
	b, err := s.encode(proto.WantConfig(id))
	if err != nil {
		return err
	}

	s.mu.Lock()
	prev := s.state
	switch prev {
	case StateConnected, StateActive:
	case StateConfiguring:
		s.mu.Unlock()
		return ErrHandshakeInProgress
	default:
		s.mu.Unlock()
		return ErrNotConnected
	}
	waiter := make(chan struct{})
	s.awaitID, s.waiter = id, waiter
	s.setStateLocked(StateConfiguring)
	if err := s.out.push(b); err != nil {
		s.waiter = nil
		s.setStateLocked(prev)
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	s.log.Debug("session: configure", zap.Uint32("config_id", id))
	start := time.Now()
	timer := time.NewTimer(s.cfg.HandshakeTimeout)
	defer timer.Stop()

	select {
	case <-waiter:
		s.metrics.Handshakes.WithLabelValues("ok").Inc()
		s.log.Info("session: configured",
			zap.Uint32("config_id", id),
			zap.Duration("took", time.Since(start)),
		)
		return nil
	case <-timer.C:
		err = ErrConfigurationTimeout
	case <-ctx.Done():
		err = ctx.Err()
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %w", ErrConfigurationTimeout, err)
		}
	case <-s.done:
		if cause := s.Err(); cause != nil {
			return cause
		}
		return ErrNotConnected
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-waiter:
		// Marker won the race with the timer.
		s.metrics.Handshakes.WithLabelValues("ok").Inc()
		return nil
	default:
	}
	if s.waiter == waiter {
		s.waiter = nil
		if s.state == StateConfiguring {
			s.setStateLocked(prev)
		}
	}
	result := "timeout"
	if errors.Is(err, context.Canceled) {
		result = "canceled"
	}
	s.metrics.Handshakes.WithLabelValues(result).Inc()
	s.log.Warn("session: configure failed", zap.Uint32("config_id", id), zap.Error(err))
	return err
}

// Send queues msg for the writer. It is only accepted while Active.
func (s *Session) Send(msg *pb.ToRadio) error {
	b, err := s.encode(msg)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateActive {
		return ErrNotConnected
	}
	return s.out.push(b)
}

// Disconnect ends the session: it flushes a best-effort goodbye frame,
// closes the transport, stops every task and closes the consumer channel.
// It succeeds on a session that is already closing or closed.
func (s *Session) Disconnect() error {
	s.mu.Lock()
	st := s.state
	if st == StateIdle {
		s.mu.Unlock()
		return ErrNotConnected
	}
	first := st >= StateConnected && st <= StateActive
	if first || st == StateConnecting {
		s.setStateLocked(StateDisconnecting)
	}
	s.mu.Unlock()

	if !first {
		s.stopPump()
		<-s.done
		<-s.pumpDone
		return nil
	}

	s.sayGoodbye()
	s.stopPump()
	s.teardown(nil)
	<-s.pumpDone
	s.log.Info("session: disconnected")
	return nil
}

func (s *Session) sayGoodbye() {
	if b, err := s.encode(proto.Goodbye()); err == nil {
		_ = s.out.add(b, false)
	}
	s.out.close()
	t := time.NewTimer(s.cfg.DisconnectGrace)
	defer t.Stop()
	select {
	case <-s.flushed:
	case <-s.quit:
	case <-t.C:
		s.log.Debug("session: goodbye not flushed", zap.Int("queued", s.out.len()))
	}
}

func (s *Session) stopPump() {
	s.abortOnce.Do(func() { close(s.abort) })
}

// teardown stops the reader and writer and closes the transport. cause is
// recorded as the session error when it is the first failure.
func (s *Session) teardown(cause error) {
	s.teardownOnce.Do(func() {
		s.mu.Lock()
		if s.err == nil {
			s.err = cause
		}
		if s.state != StateClosed {
			s.setStateLocked(StateDisconnecting)
		}
		tr := s.tr
		s.mu.Unlock()

		if cause != nil {
			s.log.Warn("session: link failed", zap.Error(cause))
		}
		s.out.close()
		close(s.quit)
		if tr != nil {
			if err := tr.Close(); err != nil {
				s.log.Debug("session: close transport", zap.Error(err))
			}
		}
		s.wg.Wait()

		s.mu.Lock()
		s.setStateLocked(StateClosed)
		s.mu.Unlock()
		close(s.done)
	})
}

func (s *Session) heartbeatLoop() {
	defer s.wg.Done()
	tick := time.NewTicker(s.cfg.HeartbeatInterval)
	defer tick.Stop()
	b, err := s.encode(proto.Heartbeat())
	if err != nil {
		return
	}
	for {
		select {
		case <-s.quit:
			return
		case <-tick.C:
			if s.State() != StateActive {
				continue
			}
			if err := s.out.add(b, false); err != nil {
				return
			}
		}
	}
}

func (s *Session) encode(msg *pb.ToRadio) ([]byte, error) {
	payload, err := s.codec.EncodeToRadio(msg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return frame.Encode(payload, s.cfg.Frame.MaxPayload)
}

func (s *Session) setStateLocked(st State) {
	if s.state == st {
		return
	}
	s.log.Debug("session: state", zap.Stringer("from", s.state), zap.Stringer("to", st))
	s.state = st
	s.metrics.State.Set(float64(st))
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Done is closed once the session is Closed and its tasks have stopped.
func (s *Session) Done() <-chan struct{} { return s.done }

// Err returns the failure that closed the session, or nil after a clean
// Disconnect.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// NextConfigID returns a fresh correlation id for Configure.
func (s *Session) NextConfigID() uint32 {
	return s.nextID.Add(1)
}
