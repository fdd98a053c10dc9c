package session

import (
	pb "github.com/gg-glitch-88/meshlink/internal/proto/meshtasticpb"
)

// pump moves envelopes from the reader to the consumer through a FIFO so a
// slow consumer never reorders or drops them. With ConsumerBuffer set, a full
// FIFO stops the pump from receiving, which stalls the reader.
//
// When the reader stops on its own the pump delivers what it holds and then
// closes the consumer channel. An abort closes the channel immediately.
func (s *Session) pump() {
	defer close(s.pumpDone)
	defer close(s.events)

	var queue []*pb.FromRadio
	in := s.in
	for {
		if in == nil && len(queue) == 0 {
			return
		}
		recv := in
		if s.cfg.ConsumerBuffer > 0 && len(queue) >= s.cfg.ConsumerBuffer {
			recv = nil
		}
		var (
			out  chan<- *pb.FromRadio
			head *pb.FromRadio
		)
		if len(queue) > 0 {
			out, head = s.events, queue[0]
		}

		select {
		case env, ok := <-recv:
			if !ok {
				in = nil
				continue
			}
			queue = append(queue, env)
		case out <- head:
			queue[0] = nil
			queue = queue[1:]
		case <-s.abort:
			return
		}
	}
}
