package session

import "sync"

// outbox is the ordered queue between Send and the writer goroutine.
type outbox struct {
	mu     sync.Mutex
	frames [][]byte
	limit  int
	closed bool
	notify chan struct{}
}

func newOutbox(limit int) *outbox {
	return &outbox{limit: limit, notify: make(chan struct{}, 1)}
}

func (o *outbox) push(b []byte) error { return o.add(b, true) }

// add appends b; bounded=false ignores the limit for control frames.
func (o *outbox) add(b []byte, bounded bool) error {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return ErrNotConnected
	}
	if bounded && o.limit > 0 && len(o.frames) >= o.limit {
		o.mu.Unlock()
		return ErrWriteQueueFull
	}
	o.frames = append(o.frames, b)
	o.mu.Unlock()
	o.wake()
	return nil
}

func (o *outbox) wake() {
	select {
	case o.notify <- struct{}{}:
	default:
	}
}

// pop returns the oldest frame, or nil when the queue is empty.
func (o *outbox) pop() []byte {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.frames) == 0 {
		return nil
	}
	b := o.frames[0]
	o.frames[0] = nil
	o.frames = o.frames[1:]
	if len(o.frames) == 0 {
		o.frames = nil
	}
	return b
}

func (o *outbox) len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.frames)
}

// drained reports a closed queue with nothing left to write.
func (o *outbox) drained() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.closed && len(o.frames) == 0
}

// close rejects further pushes. Queued frames stay for the writer to flush.
func (o *outbox) close() {
	o.mu.Lock()
	o.closed = true
	o.mu.Unlock()
	o.wake()
}
