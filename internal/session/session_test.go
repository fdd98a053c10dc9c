package session

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap/zaptest"

	"github.com/gg-glitch-88/meshlink/internal/frame"
	"github.com/gg-glitch-88/meshlink/internal/proto"
	pb "github.com/gg-glitch-88/meshlink/internal/proto/meshtasticpb"
	"github.com/gg-glitch-88/meshlink/internal/transport"
)

const waitFor = 2 * time.Second

// fakeRadio plays the device side of a Pipe.
type fakeRadio struct {
	t     *testing.T
	end   *transport.PipeEnd
	codec *proto.MeshtasticProtobuf
	got   chan *pb.ToRadio
}

func newFakeRadio(t *testing.T, end *transport.PipeEnd) *fakeRadio {
	r := &fakeRadio{t: t, end: end, codec: proto.New(), got: make(chan *pb.ToRadio, 64)}
	go func() {
		defer close(r.got)
		dec := frame.NewDecoder(frame.DefaultOptions())
		buf := make([]byte, 256)
		for {
			n, err := end.Read(buf)
			for _, f := range dec.Feed(buf[:n]) {
				msg, derr := r.codec.DecodeToRadio(f.Payload)
				if derr != nil {
					t.Errorf("radio: bad frame from host: %v", derr)
					continue
				}
				r.got <- msg
			}
			if err != nil {
				return
			}
		}
	}()
	return r
}

func (r *fakeRadio) wire(env *pb.FromRadio) []byte {
	r.t.Helper()
	payload, err := r.codec.EncodeFromRadio(env)
	if err != nil {
		r.t.Fatalf("radio: encode: %v", err)
	}
	b, err := frame.Encode(payload, 0)
	if err != nil {
		r.t.Fatalf("radio: frame: %v", err)
	}
	return b
}

func (r *fakeRadio) send(envs ...*pb.FromRadio) {
	r.t.Helper()
	for _, env := range envs {
		r.end.Write(r.wire(env))
	}
}

func (r *fakeRadio) expect(v string) *pb.ToRadio {
	r.t.Helper()
	select {
	case msg, ok := <-r.got:
		if !ok {
			r.t.Fatalf("radio: host stream closed, wanted %s", v)
		}
		if got := proto.Variant(msg); got != v {
			r.t.Fatalf("radio: got %s, want %s", got, v)
		}
		return msg
	case <-time.After(waitFor):
		r.t.Fatalf("radio: timed out waiting for %s", v)
	}
	return nil
}

// recorder keeps every Write call made by the session.
type recorder struct {
	*transport.PipeEnd
	mu     sync.Mutex
	writes [][]byte
}

func (r *recorder) Write(b []byte) (int, error) {
	r.mu.Lock()
	r.writes = append(r.writes, append([]byte(nil), b...))
	r.mu.Unlock()
	return r.PipeEnd.Write(b)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.writes)
}

func (r *recorder) last() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writes[len(r.writes)-1]
}

type harness struct {
	s      *Session
	events <-chan *pb.FromRadio
	radio  *fakeRadio
	rec    *recorder
	m      *Metrics
}

func newHarness(t *testing.T, cfg Config) *harness {
	t.Helper()
	host, dev := transport.Pipe()
	rec := &recorder{PipeEnd: host}
	m := NewMetrics(nil)
	s, events, err := Connect(rec, WithConfig(cfg), WithLogger(zaptest.NewLogger(t)), WithMetrics(m))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { s.Disconnect() })
	return &harness{s: s, events: events, radio: newFakeRadio(t, dev), rec: rec, m: m}
}

func (h *harness) next(t *testing.T) *pb.FromRadio {
	t.Helper()
	select {
	case env, ok := <-h.events:
		if !ok {
			t.Fatal("consumer channel closed")
		}
		return env
	case <-time.After(waitFor):
		t.Fatal("timed out waiting for envelope")
	}
	return nil
}

// activate completes a handshake with id and consumes the marker.
func (h *harness) activate(t *testing.T, id uint32) {
	t.Helper()
	errc := make(chan error, 1)
	go func() { errc <- h.s.Configure(context.Background(), id) }()

	if got := h.radio.expect("want_config_id"); got.GetWantConfigId() != id {
		t.Fatalf("want_config_id %d, want %d", got.GetWantConfigId(), id)
	}
	h.radio.send(proto.NewConfigComplete(id))
	if err := <-errc; err != nil {
		t.Fatalf("configure: %v", err)
	}
	if cid, ok := proto.CompleteID(h.next(t)); !ok || cid != id {
		t.Fatalf("consumer did not see marker %d", id)
	}
}

func waitClosed(t *testing.T, ch <-chan *pb.FromRadio) {
	t.Helper()
	select {
	case env, ok := <-ch:
		if ok {
			t.Fatalf("unexpected envelope after close: %s", proto.Variant(env))
		}
	case <-time.After(waitFor):
		t.Fatal("consumer channel not closed")
	}
}

func TestExampleScenario(t *testing.T) {
	h := newHarness(t, Config{})
	if st := h.s.State(); st != StateConnected {
		t.Fatalf("state %s", st)
	}

	var stream []byte
	stream = append(stream, h.radio.wire(&pb.FromRadio{PayloadVariant: &pb.FromRadio_MyInfo{MyInfo: &pb.MyNodeInfo{MyNodeNum: 0x0badf00d}}})...)
	stream = append(stream, h.radio.wire(&pb.FromRadio{PayloadVariant: &pb.FromRadio_NodeInfo{NodeInfo: &pb.NodeInfo{Num: 0x1111}}})...)
	stream = append(stream, h.radio.wire(&pb.FromRadio{PayloadVariant: &pb.FromRadio_Channel{Channel: &pb.Channel{Index: 0, Role: pb.Channel_PRIMARY}}})...)
	prev := 0
	for _, cut := range []int{1, 3, 11, len(stream) - 2, len(stream)} {
		h.radio.end.Write(stream[prev:cut])
		prev = cut
	}

	want := []string{"my_info", "node_info", "channel"}
	for i, v := range want {
		if got := proto.Variant(h.next(t)); got != v {
			t.Fatalf("envelope %d: got %s want %s", i, got, v)
		}
	}

	h.activate(t, 42)
	if st := h.s.State(); st != StateActive {
		t.Fatalf("state %s after marker", st)
	}

	before := h.rec.count()
	msg := proto.SendPacket(&pb.MeshPacket{
		To: proto.BroadcastAddr,
		Id: 7,
		PayloadVariant: &pb.MeshPacket_Decoded{Decoded: &pb.Data{
			Portnum: pb.PortNum_TEXT_MESSAGE_APP,
			Payload: []byte("hi"),
		}},
	})
	if err := h.s.Send(msg); err != nil {
		t.Fatalf("send: %v", err)
	}
	got := h.radio.expect("packet")
	if p := got.GetPacket().GetDecoded().GetPayload(); string(p) != "hi" {
		t.Fatalf("payload %q", p)
	}
	if n := h.rec.count() - before; n != 1 {
		t.Fatalf("%d writes for one send", n)
	}
	payload, _ := proto.New().EncodeToRadio(msg)
	wantFrame, _ := frame.Encode(payload, 0)
	if !bytes.Equal(h.rec.last(), wantFrame) {
		t.Fatalf("frame % x\nwant  % x", h.rec.last(), wantFrame)
	}
}

func TestSendGatedByHandshake(t *testing.T) {
	h := newHarness(t, Config{})
	msg := proto.SendPacket(&pb.MeshPacket{PayloadVariant: &pb.MeshPacket_Decoded{
		Decoded: &pb.Data{Portnum: pb.PortNum_TEXT_MESSAGE_APP},
	}})

	if err := h.s.Send(msg); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("send while connected: %v", err)
	}

	errc := make(chan error, 1)
	go func() { errc <- h.s.Configure(context.Background(), 9) }()
	h.radio.expect("want_config_id")
	if err := h.s.Send(msg); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("send while configuring: %v", err)
	}

	h.radio.send(proto.NewConfigComplete(9))
	if err := <-errc; err != nil {
		t.Fatalf("configure: %v", err)
	}
	if err := h.s.Send(msg); err != nil {
		t.Fatalf("send while active: %v", err)
	}
	h.radio.expect("packet")
}

func TestStaleMarkerIgnored(t *testing.T) {
	h := newHarness(t, Config{})
	errc := make(chan error, 1)
	go func() { errc <- h.s.Configure(context.Background(), 7) }()
	h.radio.expect("want_config_id")

	h.radio.send(proto.NewConfigComplete(6))
	if id, _ := proto.CompleteID(h.next(t)); id != 6 {
		t.Fatalf("consumer should still see the stale marker")
	}
	if st := h.s.State(); st != StateConfiguring {
		t.Fatalf("stale marker moved state to %s", st)
	}
	select {
	case err := <-errc:
		t.Fatalf("configure returned early: %v", err)
	default:
	}

	h.radio.send(proto.NewConfigComplete(7))
	if err := <-errc; err != nil {
		t.Fatalf("configure: %v", err)
	}
	if st := h.s.State(); st != StateActive {
		t.Fatalf("state %s", st)
	}
	if v := testutil.ToFloat64(h.m.Handshakes.WithLabelValues("mismatch")); v != 1 {
		t.Fatalf("mismatch count %v", v)
	}
}

func TestConfigureTimeoutRestoresState(t *testing.T) {
	h := newHarness(t, Config{HandshakeTimeout: 40 * time.Millisecond})
	if err := h.s.Configure(context.Background(), 1); !errors.Is(err, ErrConfigurationTimeout) {
		t.Fatalf("expected timeout, got %v", err)
	}
	if st := h.s.State(); st != StateConnected {
		t.Fatalf("state %s after timeout", st)
	}
	h.radio.expect("want_config_id")

	// A retry with a new id still works, and the late marker is ignored.
	h.radio.send(proto.NewConfigComplete(1))
	h.next(t)
	h.activate(t, 2)
}

func TestConfigureContextCancel(t *testing.T) {
	h := newHarness(t, Config{})
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- h.s.Configure(ctx, 5) }()
	h.radio.expect("want_config_id")
	cancel()
	if err := <-errc; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	if v := testutil.ToFloat64(h.m.Handshakes.WithLabelValues("canceled")); v != 1 {
		t.Fatalf("canceled count %v", v)
	}
	if v := testutil.ToFloat64(h.m.Handshakes.WithLabelValues("timeout")); v != 0 {
		t.Fatalf("cancellation counted as timeout: %v", v)
	}

	ctx, cancel = context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := h.s.Configure(ctx, 6); !errors.Is(err, ErrConfigurationTimeout) {
		t.Fatalf("deadline should map to timeout, got %v", err)
	}
	if v := testutil.ToFloat64(h.m.Handshakes.WithLabelValues("timeout")); v != 1 {
		t.Fatalf("timeout count %v", v)
	}
}

func TestConfigureRejectsOverlap(t *testing.T) {
	h := newHarness(t, Config{})
	go h.s.Configure(context.Background(), 3)
	h.radio.expect("want_config_id")
	if err := h.s.Configure(context.Background(), 4); !errors.Is(err, ErrHandshakeInProgress) {
		t.Fatalf("expected ErrHandshakeInProgress, got %v", err)
	}
}

func TestReconfigureFromActive(t *testing.T) {
	h := newHarness(t, Config{})
	h.activate(t, 10)
	h.activate(t, 11)
	if st := h.s.State(); st != StateActive {
		t.Fatalf("state %s", st)
	}
}

func TestOrderingAndDecodeErrors(t *testing.T) {
	var decodeErrs atomic.Int32
	host, dev := transport.Pipe()
	m := NewMetrics(nil)
	s, events, err := Connect(host,
		WithLogger(zaptest.NewLogger(t)),
		WithMetrics(m),
		WithDecodeErrorHandler(func(error, []byte) { decodeErrs.Add(1) }),
	)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer s.Disconnect()
	radio := newFakeRadio(t, dev)

	const n = 60
	var stream []byte
	for i := 0; i < n; i++ {
		var env *pb.FromRadio
		switch i % 3 {
		case 0:
			env = proto.NewPacketEnvelope(&pb.MeshPacket{Id: uint32(i), PayloadVariant: &pb.MeshPacket_Decoded{
				Decoded: &pb.Data{Payload: bytes.Repeat([]byte{1}, i)},
			}})
		case 1:
			env = &pb.FromRadio{PayloadVariant: &pb.FromRadio_LogRecord{LogRecord: &pb.LogRecord{Message: "x", Time: uint32(i)}}}
		default:
			env = &pb.FromRadio{PayloadVariant: &pb.FromRadio_QueueStatus{QueueStatus: &pb.QueueStatus{MeshPacketId: uint32(i)}}}
		}
		env.Id = uint32(i + 1)
		stream = append(stream, radio.wire(env)...)
		if i == n/2 {
			bad, _ := frame.Encode([]byte{0x12, 0x7f}, 0)
			stream = append(stream, bad...)
		}
	}
	for len(stream) > 0 {
		k := min(37, len(stream))
		dev.Write(stream[:k])
		stream = stream[k:]
	}

	for i := 0; i < n; i++ {
		select {
		case env := <-events:
			if env.GetId() != uint32(i+1) {
				t.Fatalf("position %d: got envelope id %d", i, env.GetId())
			}
		case <-time.After(waitFor):
			t.Fatalf("timed out at %d", i)
		}
	}
	if decodeErrs.Load() != 1 {
		t.Fatalf("decode errors reported: %d", decodeErrs.Load())
	}
	if v := testutil.ToFloat64(m.DecodeErrors); v != 1 {
		t.Fatalf("decode error metric %v", v)
	}
}

func TestBoundedConsumerNeverDrops(t *testing.T) {
	h := newHarness(t, Config{ConsumerBuffer: 2})
	for i := 1; i <= 20; i++ {
		h.radio.send(&pb.FromRadio{Id: uint32(i), PayloadVariant: &pb.FromRadio_Rebooted{Rebooted: true}})
	}
	time.Sleep(20 * time.Millisecond)
	for i := 1; i <= 20; i++ {
		if env := h.next(t); env.GetId() != uint32(i) {
			t.Fatalf("got id %d want %d", env.GetId(), i)
		}
	}
}

func TestDisconnectIdempotentAndCloses(t *testing.T) {
	h := newHarness(t, Config{})
	h.activate(t, 1)

	if err := h.s.Disconnect(); err != nil {
		t.Fatalf("disconnect: %v", err)
	}
	if err := h.s.Disconnect(); err != nil {
		t.Fatalf("second disconnect: %v", err)
	}
	waitClosed(t, h.events)
	if st := h.s.State(); st != StateClosed {
		t.Fatalf("state %s", st)
	}
	if err := h.s.Err(); err != nil {
		t.Fatalf("clean disconnect recorded %v", err)
	}
	select {
	case <-h.s.Done():
	default:
		t.Fatal("Done not closed")
	}

	h.radio.expect("disconnect")
	if err := h.s.Send(proto.Heartbeat()); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("send after close: %v", err)
	}
	if err := h.s.Configure(context.Background(), 2); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("configure after close: %v", err)
	}
}

func TestDisconnectDropsUndelivered(t *testing.T) {
	h := newHarness(t, Config{})
	h.radio.send(proto.NewConfigComplete(99), proto.NewConfigComplete(98))
	time.Sleep(20 * time.Millisecond)
	h.s.Disconnect()
	waitClosed(t, h.events)
}

func TestDisconnectIdle(t *testing.T) {
	if err := New().Disconnect(); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("expected ErrNotConnected, got %v", err)
	}
}

func TestConnectTwice(t *testing.T) {
	h := newHarness(t, Config{})
	other, _ := transport.Pipe()
	if _, err := h.s.Connect(other); !errors.Is(err, ErrAlreadyConnected) {
		t.Fatalf("expected ErrAlreadyConnected, got %v", err)
	}
}

func TestTransportFailureDrainsThenCloses(t *testing.T) {
	h := newHarness(t, Config{})
	boom := errors.New("usb unplugged")
	h.radio.send(
		&pb.FromRadio{Id: 1, PayloadVariant: &pb.FromRadio_Rebooted{Rebooted: true}},
		&pb.FromRadio{Id: 2, PayloadVariant: &pb.FromRadio_Rebooted{Rebooted: true}},
	)
	h.radio.end.CloseWithError(boom)

	select {
	case <-h.s.Done():
	case <-time.After(waitFor):
		t.Fatal("session did not close after transport failure")
	}
	var terr *TransportError
	if err := h.s.Err(); !errors.As(err, &terr) || terr.Op != "read" || !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}

	if h.next(t).GetId() != 1 || h.next(t).GetId() != 2 {
		t.Fatal("decoded envelopes lost after failure")
	}
	waitClosed(t, h.events)
	if err := h.s.Disconnect(); err != nil {
		t.Fatalf("disconnect after failure: %v", err)
	}
}

func TestConfigureSurfacesTransportError(t *testing.T) {
	h := newHarness(t, Config{})
	errc := make(chan error, 1)
	go func() { errc <- h.s.Configure(context.Background(), 4) }()
	h.radio.expect("want_config_id")
	h.radio.end.Close()

	var terr *TransportError
	select {
	case err := <-errc:
		if !errors.As(err, &terr) {
			t.Fatalf("expected TransportError, got %v", err)
		}
	case <-time.After(waitFor):
		t.Fatal("configure did not return")
	}
}

func TestSendEncodingError(t *testing.T) {
	h := newHarness(t, Config{})
	h.activate(t, 1)
	big := proto.SendPacket(&pb.MeshPacket{PayloadVariant: &pb.MeshPacket_Decoded{
		Decoded: &pb.Data{Payload: make([]byte, 600)},
	}})
	err := h.s.Send(big)
	if !errors.Is(err, ErrEncoding) || !errors.Is(err, frame.ErrPayloadTooLarge) {
		t.Fatalf("expected encoding error, got %v", err)
	}
	if err := h.s.Send(&pb.ToRadio{}); !errors.Is(err, ErrEncoding) {
		t.Fatalf("expected encoding error for empty envelope, got %v", err)
	}
	if st := h.s.State(); st != StateActive {
		t.Fatalf("state %s", st)
	}
}

// gate blocks writes once armed until the transport is closed.
type gate struct {
	*transport.PipeEnd
	armed   atomic.Bool
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (g *gate) Write(b []byte) (int, error) {
	if g.armed.Load() {
		g.entered <- struct{}{}
		<-g.release
		return 0, transport.ErrClosed
	}
	return g.PipeEnd.Write(b)
}

func (g *gate) Close() error {
	g.once.Do(func() { close(g.release) })
	return g.PipeEnd.Close()
}

func TestBoundedWriteQueue(t *testing.T) {
	host, dev := transport.Pipe()
	g := &gate{PipeEnd: host, entered: make(chan struct{}, 4), release: make(chan struct{})}
	s, events, err := Connect(g,
		WithConfig(Config{WriteQueueSize: 1, DisconnectGrace: 20 * time.Millisecond}),
		WithLogger(zaptest.NewLogger(t)),
	)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	h := &harness{s: s, events: events, radio: newFakeRadio(t, dev)}
	h.activate(t, 1)

	g.armed.Store(true)
	msg := proto.Heartbeat()
	if err := s.Send(msg); err != nil {
		t.Fatalf("first send: %v", err)
	}
	select {
	case <-g.entered:
	case <-time.After(waitFor):
		t.Fatal("writer never picked up the frame")
	}
	if err := s.Send(msg); err != nil {
		t.Fatalf("second send should queue: %v", err)
	}
	if err := s.Send(msg); !errors.Is(err, ErrWriteQueueFull) {
		t.Fatalf("expected ErrWriteQueueFull, got %v", err)
	}
	if st := s.State(); st != StateActive {
		t.Fatalf("queue full changed state to %s", st)
	}

	if err := s.Disconnect(); err != nil {
		t.Fatalf("disconnect: %v", err)
	}
	waitClosed(t, events)
}

// failingWriter rejects writes once armed.
type failingWriter struct {
	*transport.PipeEnd
	armed atomic.Bool
}

var errWriteBroken = errors.New("write: broken pipe")

func (f *failingWriter) Write(b []byte) (int, error) {
	if f.armed.Load() {
		return 0, errWriteBroken
	}
	return f.PipeEnd.Write(b)
}

func TestWriteFailureTearsDown(t *testing.T) {
	host, dev := transport.Pipe()
	fw := &failingWriter{PipeEnd: host}
	s, events, err := Connect(fw, WithLogger(zaptest.NewLogger(t)))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer s.Disconnect()
	h := &harness{s: s, events: events, radio: newFakeRadio(t, dev)}
	h.activate(t, 1)

	fw.armed.Store(true)
	if err := s.Send(proto.Heartbeat()); err != nil {
		t.Fatalf("send: %v", err)
	}
	select {
	case <-s.Done():
	case <-time.After(waitFor):
		t.Fatal("write failure did not close the session")
	}
	var terr *TransportError
	if !errors.As(s.Err(), &terr) || terr.Op != "write" || !errors.Is(s.Err(), errWriteBroken) {
		t.Fatalf("err = %v", s.Err())
	}
	waitClosed(t, events)
}

func TestOpenFailure(t *testing.T) {
	boom := errors.New("connection refused")
	s := New(WithLogger(zaptest.NewLogger(t)))
	_, err := s.Open(context.Background(), transport.OpenerFunc(func(context.Context) (transport.Transport, error) {
		return nil, boom
	}))
	var terr *TransportError
	if !errors.As(err, &terr) || terr.Op != "open" || !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
	if st := s.State(); st != StateClosed {
		t.Fatalf("state %s", st)
	}
	if err := s.Disconnect(); err != nil {
		t.Fatalf("disconnect: %v", err)
	}
}

func TestOpenThroughOpener(t *testing.T) {
	host, dev := transport.Pipe()
	s := New(WithLogger(zaptest.NewLogger(t)))
	events, err := s.Open(context.Background(), host)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Disconnect()
	h := &harness{s: s, events: events, radio: newFakeRadio(t, dev)}
	h.activate(t, s.NextConfigID())
}

func TestHeartbeatWhileActive(t *testing.T) {
	h := newHarness(t, Config{HeartbeatInterval: 15 * time.Millisecond})
	h.activate(t, 1)
	h.radio.expect("heartbeat")
}

func TestNextConfigIDAdvances(t *testing.T) {
	s := New()
	a, b := s.NextConfigID(), s.NextConfigID()
	if b != a+1 {
		t.Fatalf("ids %d then %d", a, b)
	}
}

func TestStateString(t *testing.T) {
	for st, want := range map[State]string{
		StateIdle: "idle", StateConnecting: "connecting", StateConnected: "connected",
		StateConfiguring: "configuring", StateActive: "active",
		StateDisconnecting: "disconnecting", StateClosed: "closed",
	} {
		if st.String() != want {
			t.Fatalf("%d: %q", st, st.String())
		}
	}
}
