package session

import (
	"go.uber.org/zap"

	"github.com/gg-glitch-88/meshlink/internal/frame"
	"github.com/gg-glitch-88/meshlink/internal/proto"
	pb "github.com/gg-glitch-88/meshlink/internal/proto/meshtasticpb"
	"github.com/gg-glitch-88/meshlink/internal/transport"
)

// readLoop owns the transport's read side and the frame decoder. It exits on
// a read error, or when the pump is aborted while it waits to hand over.
func (s *Session) readLoop(tr transport.Transport) {
	defer s.wg.Done()
	defer close(s.in)

	dec := frame.NewDecoder(s.cfg.Frame)
	buf := make([]byte, s.cfg.ReadBufferSize)
	for {
		n, err := tr.Read(buf)
		if n > 0 {
			s.metrics.BytesIn.Add(float64(n))
			before := dec.Discarded()
			frames := dec.Feed(buf[:n])
			if d := dec.Discarded() - before; d > 0 {
				s.metrics.ResyncDiscards.Add(float64(d))
				s.log.Debug("session: resync", zap.Uint64("discarded", d))
			}
			for _, f := range frames {
				if !s.dispatch(f.Payload) {
					return
				}
			}
		}
		if err != nil {
			select {
			case <-s.quit:
			default:
				go s.teardown(&TransportError{Op: "read", Err: err})
			}
			return
		}
	}
}

// dispatch decodes one payload, lets the handshake watcher see it, then
// forwards it to the pump. It reports false when the session is aborting.
func (s *Session) dispatch(payload []byte) bool {
	s.metrics.FramesIn.Inc()
	env, err := s.codec.DecodeFromRadio(payload)
	if err != nil {
		s.metrics.DecodeErrors.Inc()
		s.log.Warn("session: dropping undecodable frame",
			zap.Int("len", len(payload)),
			zap.Error(err),
		)
		if s.onDecodeErr != nil {
			s.onDecodeErr(err, payload)
		}
		return true
	}
	s.metrics.Envelopes.WithLabelValues(proto.Variant(env)).Inc()

	// The watcher runs first so a consumer that sees the marker also sees
	// StateActive.
	s.watch(env)

	select {
	case s.in <- env:
		return true
	case <-s.abort:
		return false
	}
}

func (s *Session) watch(env *pb.FromRadio) {
	id, ok := proto.CompleteID(env)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateConfiguring || s.waiter == nil {
		s.log.Debug("session: unsolicited config_complete_id", zap.Uint32("config_id", id))
		return
	}
	if id != s.awaitID {
		s.metrics.Handshakes.WithLabelValues("mismatch").Inc()
		s.log.Warn("session: ignoring config_complete_id",
			zap.Uint32("got", id),
			zap.Uint32("want", s.awaitID),
			zap.Error(ErrCorrelationMismatch),
		)
		return
	}
	close(s.waiter)
	s.waiter = nil
	s.setStateLocked(StateActive)
}
