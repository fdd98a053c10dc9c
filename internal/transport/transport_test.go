package transport

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/gg-glitch-88/meshlink/internal/frame"
)

func TestPipeDeliversInOrder(t *testing.T) {
	host, dev := Pipe()
	defer host.Close()
	defer dev.Close()

	for _, s := range []string{"ab", "c", "def"} {
		if _, err := dev.Write([]byte(s)); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	got := make([]byte, 0, 6)
	buf := make([]byte, 4)
	for len(got) < 6 {
		n, err := host.Read(buf)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		got = append(got, buf[:n]...)
	}
	if string(got) != "abcdef" {
		t.Fatalf("got %q", got)
	}
}

func TestPipeCloseUnblocksRead(t *testing.T) {
	host, dev := Pipe()
	defer dev.Close()

	errc := make(chan error, 1)
	go func() {
		_, err := host.Read(make([]byte, 8))
		errc <- err
	}()
	time.Sleep(10 * time.Millisecond)
	host.Close()

	select {
	case err := <-errc:
		if !errors.Is(err, ErrClosed) {
			t.Fatalf("expected ErrClosed, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("read not unblocked by close")
	}
	if _, err := dev.Write([]byte("x")); !errors.Is(err, io.ErrClosedPipe) {
		t.Fatalf("write to closed peer: %v", err)
	}
}

func TestPipePeerCloseDrainsThenEOF(t *testing.T) {
	host, dev := Pipe()
	defer host.Close()

	dev.Write([]byte("tail"))
	dev.Close()

	buf := make([]byte, 16)
	n, err := host.Read(buf)
	if err != nil || string(buf[:n]) != "tail" {
		t.Fatalf("got %q, %v", buf[:n], err)
	}
	if _, err := host.Read(buf); err != io.EOF {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestPipeCloseWithError(t *testing.T) {
	host, dev := Pipe()
	defer host.Close()

	boom := errors.New("link reset")
	dev.CloseWithError(boom)
	if _, err := host.Read(make([]byte, 4)); !errors.Is(err, boom) {
		t.Fatalf("expected injected error, got %v", err)
	}
}

func TestTCPOpen(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	accepted := make(chan net.Conn, 1)
	go func() {
		c, err := ln.Accept()
		if err == nil {
			accepted <- c
		}
	}()

	o := NewTCPTransport(ln.Addr().String(), time.Second, zaptest.NewLogger(t))
	tr, err := o.Open(context.Background())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer tr.Close()

	srv := <-accepted
	defer srv.Close()
	srv.Write([]byte{0x94, 0xc3})

	buf := make([]byte, 2)
	if _, err := io.ReadFull(tr, buf); err != nil || buf[0] != 0x94 {
		t.Fatalf("read: % x %v", buf, err)
	}

	done := make(chan error, 1)
	go func() {
		_, err := tr.Read(buf)
		done <- err
	}()
	tr.Close()
	select {
	case err := <-done:
		if err == nil {
			t.Fatal("expected error after close")
		}
	case <-time.After(time.Second):
		t.Fatal("read not unblocked by close")
	}
}

func TestTCPDefaultPort(t *testing.T) {
	o := NewTCPTransport("radio.local", 0, nil)
	if o.Addr() != "radio.local:4403" {
		t.Fatalf("addr %q", o.Addr())
	}
}

func TestNewSelectsProvider(t *testing.T) {
	log := zaptest.NewLogger(t)
	if _, err := New(Options{Kind: KindTCP}, log); err == nil {
		t.Fatal("tcp without address accepted")
	}
	if _, err := New(Options{Kind: KindSerial}, log); err == nil {
		t.Fatal("serial without port accepted")
	}
	if _, err := New(Options{Kind: "carrier-pigeon"}, log); err == nil {
		t.Fatal("unknown kind accepted")
	}
	o, err := New(Options{Kind: KindTCP, Addr: "10.0.0.2"}, log)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, ok := o.(*TCPTransport); !ok {
		t.Fatalf("got %T", o)
	}
}

func TestOpenWithRetryStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	o := OpenerFunc(func(context.Context) (Transport, error) {
		calls++
		cancel()
		return nil, errors.New("refused")
	})
	if _, err := OpenWithRetry(ctx, o, zaptest.NewLogger(t)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("calls %d", calls)
	}
}

// fakeGATT serves queued FROMRADIO values and records TORADIO writes.
type fakeGATT struct {
	mu      sync.Mutex
	records [][]byte
	written [][]byte
	readErr error
}

func (f *fakeGATT) queue(recs ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range recs {
		f.records = append(f.records, []byte(r))
	}
}

func (f *fakeGATT) Read(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return 0, f.readErr
	}
	if len(f.records) == 0 {
		return 0, nil
	}
	n := copy(p, f.records[0])
	f.records = f.records[1:]
	return n, nil
}

func (f *fakeGATT) WriteWithoutResponse(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.written = append(f.written, bytes.Clone(p))
	return len(p), nil
}

// readFrames reads from c until n frames have been decoded.
func readFrames(t *testing.T, c io.Reader, dec *frame.Decoder, n int) []string {
	t.Helper()
	type result struct {
		got []string
		err error
	}
	done := make(chan result, 1)
	go func() {
		var got []string
		buf := make([]byte, 7)
		for len(got) < n {
			k, err := c.Read(buf)
			for _, f := range dec.Feed(buf[:k]) {
				got = append(got, string(f.Payload))
			}
			if err != nil {
				done <- result{got, err}
				return
			}
		}
		done <- result{got, nil}
	}()
	select {
	case r := <-done:
		if r.err != nil {
			t.Fatalf("read after %v: %v", r.got, r.err)
		}
		return r.got
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for %d frames", n)
		return nil
	}
}

func TestBLEConnDrainsRecordsAsFrames(t *testing.T) {
	gatt := &fakeGATT{}
	gatt.queue("first", "second record", "3")
	c := newBLEConn(gatt, gatt, nil, zaptest.NewLogger(t))
	c.start()
	defer c.Close()

	dec := frame.NewDecoder(frame.DefaultOptions())
	got := readFrames(t, c, dec, 3)
	want := []string{"first", "second record", "3"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("frames = %q, want %q", got, want)
		}
	}

	// A FROMNUM notification drains what arrived since.
	gatt.queue("later", "last")
	c.poke()
	got = readFrames(t, c, dec, 2)
	if got[0] != "later" || got[1] != "last" {
		t.Fatalf("frames after notification = %q", got)
	}
}

func TestBLEConnWriteStripsHeader(t *testing.T) {
	gatt := &fakeGATT{}
	c := newBLEConn(gatt, gatt, nil, zaptest.NewLogger(t))
	c.start()
	defer c.Close()

	b, err := frame.Encode([]byte{0x18, 0x2a}, 0)
	if err != nil {
		t.Fatal(err)
	}
	n, err := c.Write(b)
	if err != nil || n != len(b) {
		t.Fatalf("Write = %d, %v", n, err)
	}
	if _, err := c.Write([]byte{0x18, 0x2a}); !errors.Is(err, frame.ErrBadHeader) {
		t.Fatalf("unframed write: %v", err)
	}

	gatt.mu.Lock()
	defer gatt.mu.Unlock()
	if len(gatt.written) != 1 || !bytes.Equal(gatt.written[0], []byte{0x18, 0x2a}) {
		t.Fatalf("toradio got %x", gatt.written)
	}
}

func TestBLEConnCloseUnblocksRead(t *testing.T) {
	gatt := &fakeGATT{}
	var disconnects int
	c := newBLEConn(gatt, gatt, func() error { disconnects++; return nil }, zaptest.NewLogger(t))
	c.start()

	errc := make(chan error, 1)
	go func() {
		_, err := c.Read(make([]byte, 8))
		errc <- err
	}()
	time.Sleep(10 * time.Millisecond)
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	select {
	case err := <-errc:
		if !errors.Is(err, ErrClosed) {
			t.Fatalf("expected ErrClosed, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("read not unblocked by close")
	}
	c.Close() //nolint:errcheck
	if disconnects != 1 {
		t.Fatalf("disconnected %d times", disconnects)
	}
}

func TestBLEConnReadErrorEndsStream(t *testing.T) {
	gone := errors.New("gatt: link lost")
	gatt := &fakeGATT{readErr: gone}
	c := newBLEConn(gatt, gatt, nil, zaptest.NewLogger(t))
	c.start()
	defer c.Close()

	errc := make(chan error, 1)
	go func() {
		_, err := c.Read(make([]byte, 8))
		errc <- err
	}()
	select {
	case err := <-errc:
		if !errors.Is(err, gone) {
			t.Fatalf("err = %v, want %v", err, gone)
		}
	case <-time.After(time.Second):
		t.Fatal("read error not surfaced")
	}
}
