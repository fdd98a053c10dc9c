package transport

import (
	"context"
	"io"
	"sync"
)

// Pipe returns two connected in-memory transports. Bytes written to one end
// are read from the other. Writes never block: each direction buffers
// without limit, which lets tests script a device ahead of the host.
func Pipe() (*PipeEnd, *PipeEnd) {
	ab, ba := newPipeBuffer(), newPipeBuffer()
	return &PipeEnd{rx: ba, tx: ab}, &PipeEnd{rx: ab, tx: ba}
}

// PipeEnd is one side of a Pipe.
type PipeEnd struct {
	rx, tx *pipeBuffer
}

var _ Transport = (*PipeEnd)(nil)

func (p *PipeEnd) Read(b []byte) (int, error) { return p.rx.read(b) }

func (p *PipeEnd) Write(b []byte) (int, error) { return p.tx.write(b) }

// Close unblocks a pending Read on this end with ErrClosed; the peer reads
// any buffered bytes and then io.EOF.
func (p *PipeEnd) Close() error {
	p.rx.closeReader()
	p.tx.closeWriter(io.EOF)
	return nil
}

// CloseWithError makes the peer's Read return err once buffered bytes are
// consumed, simulating a link failure.
func (p *PipeEnd) CloseWithError(err error) error {
	p.rx.closeReader()
	p.tx.closeWriter(err)
	return nil
}

// pipeBuffer is one direction of a Pipe.
type pipeBuffer struct {
	mu         sync.Mutex
	data       []byte
	writerErr  error // set once the writing end closes
	readerGone bool
	ready      chan struct{}
}

func newPipeBuffer() *pipeBuffer {
	return &pipeBuffer{ready: make(chan struct{}, 1)}
}

func (b *pipeBuffer) signal() {
	select {
	case b.ready <- struct{}{}:
	default:
	}
}

func (b *pipeBuffer) read(p []byte) (int, error) {
	for {
		b.mu.Lock()
		switch {
		case b.readerGone:
			b.mu.Unlock()
			return 0, ErrClosed
		case len(b.data) > 0:
			n := copy(p, b.data)
			b.data = b.data[n:]
			b.mu.Unlock()
			return n, nil
		case b.writerErr != nil:
			err := b.writerErr
			b.mu.Unlock()
			return 0, err
		}
		b.mu.Unlock()
		<-b.ready
	}
}

func (b *pipeBuffer) write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.writerErr != nil {
		return 0, ErrClosed
	}
	if b.readerGone {
		return 0, io.ErrClosedPipe
	}
	b.data = append(b.data, p...)
	b.signal()
	return len(p), nil
}

func (b *pipeBuffer) closeReader() {
	b.mu.Lock()
	b.readerGone = true
	b.data = nil
	b.mu.Unlock()
	b.signal()
}

func (b *pipeBuffer) closeWriter(err error) {
	b.mu.Lock()
	if b.writerErr == nil {
		b.writerErr = err
	}
	b.mu.Unlock()
	b.signal()
}

// Open lets a PipeEnd stand in for a device Opener.
func (p *PipeEnd) Open(context.Context) (Transport, error) { return p, nil }
