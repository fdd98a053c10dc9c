package session

import (
	"github.com/gg-glitch-88/meshlink/internal/transport"
)

// writeLoop is the only writer of the transport. Each queued frame goes out
// in one Write call, in submission order.
func (s *Session) writeLoop(tr transport.Transport) {
	defer s.wg.Done()
	for {
		for b := s.out.pop(); b != nil; b = s.out.pop() {
			if _, err := tr.Write(b); err != nil {
				select {
				case <-s.quit:
				default:
					go s.teardown(&TransportError{Op: "write", Err: err})
				}
				return
			}
			s.metrics.FramesOut.Inc()
			s.metrics.BytesOut.Add(float64(len(b)))
		}
		if s.out.drained() {
			s.flushOnce.Do(func() { close(s.flushed) })
		}
		select {
		case <-s.out.notify:
		case <-s.quit:
			return
		}
	}
}
