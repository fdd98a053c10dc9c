package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/gg-glitch-88/meshlink/internal/config"
	"github.com/gg-glitch-88/meshlink/internal/frame"
	"github.com/gg-glitch-88/meshlink/internal/proto"
	pb "github.com/gg-glitch-88/meshlink/internal/proto/meshtasticpb"
	"github.com/gg-glitch-88/meshlink/internal/session"
	"github.com/gg-glitch-88/meshlink/internal/state"
	"github.com/gg-glitch-88/meshlink/internal/transport"
)

const waitFor = 3 * time.Second

// radio answers the host side of a Pipe like a Meshtastic device.
type radio struct {
	t     *testing.T
	end   *transport.PipeEnd
	codec *proto.MeshtasticProtobuf
	got   chan *pb.ToRadio
}

func newRadio(t *testing.T, end *transport.PipeEnd) *radio {
	r := &radio{t: t, end: end, codec: proto.New(), got: make(chan *pb.ToRadio, 64)}
	go func() {
		defer close(r.got)
		dec := frame.NewDecoder(frame.DefaultOptions())
		buf := make([]byte, 256)
		for {
			n, err := end.Read(buf)
			for _, f := range dec.Feed(buf[:n]) {
				if msg, derr := r.codec.DecodeToRadio(f.Payload); derr == nil {
					r.got <- msg
				}
			}
			if err != nil {
				return
			}
		}
	}()
	return r
}

func (r *radio) send(envs ...*pb.FromRadio) {
	r.t.Helper()
	for _, env := range envs {
		payload, err := r.codec.EncodeFromRadio(env)
		if err != nil {
			r.t.Fatalf("radio: encode: %v", err)
		}
		b, err := frame.Encode(payload, 0)
		if err != nil {
			r.t.Fatalf("radio: frame: %v", err)
		}
		r.end.Write(b) //nolint:errcheck
	}
}

func (r *radio) expect(v string) *pb.ToRadio {
	r.t.Helper()
	deadline := time.After(waitFor)
	for {
		select {
		case msg, ok := <-r.got:
			if !ok {
				r.t.Fatalf("radio: host closed the link, wanted %s", v)
			}
			if proto.Variant(msg) == v {
				return msg
			}
		case <-deadline:
			r.t.Fatalf("radio: timed out waiting for %s", v)
			return nil
		}
	}
}

func waitUntil(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(waitFor)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestGatewayEndToEnd(t *testing.T) {
	log := zaptest.NewLogger(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	host, dev := transport.Pipe()
	cfg := config.Default()
	cfg.Session.HandshakeTimeout = waitFor

	st, err := state.New(ctx, nil, log)
	if err != nil {
		t.Fatal(err)
	}
	// The WebSocket handler can outlive the test by a moment, so the gateway
	// does not log through t.
	g := New(cfg, host, st, zap.NewNop())
	r := newRadio(t, dev)

	linkDone := make(chan struct{})
	go func() {
		defer close(linkDone)
		g.RunLink(ctx)
	}()

	want := r.expect("want_config_id")
	r.send(
		&pb.FromRadio{PayloadVariant: &pb.FromRadio_MyInfo{MyInfo: &pb.MyNodeInfo{MyNodeNum: 0xabc}}},
		&pb.FromRadio{PayloadVariant: &pb.FromRadio_NodeInfo{NodeInfo: &pb.NodeInfo{Num: 0xabc, User: &pb.User{LongName: "Base"}}}},
		&pb.FromRadio{PayloadVariant: &pb.FromRadio_Channel{Channel: &pb.Channel{Index: 0, Role: pb.Channel_PRIMARY}}},
		proto.NewConfigComplete(want.GetWantConfigId()),
	)
	waitUntil(t, "active link", func() bool { return g.LinkState() == session.StateActive })

	srv := httptest.NewServer(g.Handler())
	defer srv.Close()

	var status struct {
		Link string `json:"link"`
		Node string `json:"node"`
	}
	getJSON(t, srv.URL+"/api/v1/status", http.StatusOK, &status)
	if status.Link != "active" || status.Node != "!00000abc" {
		t.Fatalf("status = %+v", status)
	}

	// Live events reach WebSocket clients.
	ws, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/api/v1/events", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer ws.Close()
	waitUntil(t, "subscriber", func() bool { return g.Bus().Len() == 1 })

	r.send(proto.NewPacketEnvelope(&pb.MeshPacket{
		From: 0x55,
		To:   proto.BroadcastAddr,
		Id:   900,
		PayloadVariant: &pb.MeshPacket_Decoded{Decoded: &pb.Data{
			Portnum: pb.PortNum_TEXT_MESSAGE_APP,
			Payload: []byte("hello mesh"),
		}},
	}))
	ws.SetReadDeadline(time.Now().Add(waitFor)) //nolint:errcheck
	var evt struct {
		Type string `json:"type"`
		Data struct {
			From uint32 `json:"from"`
			Text string `json:"text"`
		} `json:"data"`
	}
	// The link status event may still be in flight; skip to the message.
	for evt.Type != string(EventMessage) {
		if err := ws.ReadJSON(&evt); err != nil {
			t.Fatalf("ws read: %v", err)
		}
	}
	if evt.Type != string(EventMessage) || evt.Data.Text != "hello mesh" || evt.Data.From != 0x55 {
		t.Fatalf("event = %+v", evt)
	}

	// Sending goes out through the session as a framed packet.
	resp := postJSON(t, srv.URL+"/api/v1/messages", `{"text":"hi rover","to":"!00000055"}`)
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("send status = %d", resp.StatusCode)
	}
	out := r.expect("packet").GetPacket()
	if out.From != 0xabc || out.To != 0x55 || string(out.GetDecoded().GetPayload()) != "hi rover" {
		t.Fatalf("sent packet = %v", out)
	}

	var msgs struct {
		Messages []struct {
			Text string `json:"text"`
		} `json:"messages"`
	}
	getJSON(t, srv.URL+"/api/v1/messages", http.StatusOK, &msgs)
	if len(msgs.Messages) != 2 {
		t.Fatalf("stored %d messages, want 2", len(msgs.Messages))
	}

	if n, ok := st.GetNode(0x55); !ok || n.LastHeard.IsZero() {
		t.Fatalf("sender not tracked: %+v", n)
	}

	cancel()
	r.expect("disconnect")
	select {
	case <-linkDone:
	case <-time.After(waitFor):
		t.Fatal("link did not stop")
	}
	if g.LinkState() != session.StateIdle {
		t.Fatalf("link state after stop = %v", g.LinkState())
	}
}

func TestSendTextWithoutLink(t *testing.T) {
	st, err := state.New(context.Background(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	g := New(config.Default(), nil, st, zaptest.NewLogger(t))
	srv := httptest.NewServer(g.Handler())
	defer srv.Close()

	resp := postJSON(t, srv.URL+"/api/v1/messages", `{"text":"anyone?"}`)
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", resp.StatusCode)
	}
	var status struct {
		Link string `json:"link"`
	}
	getJSON(t, srv.URL+"/api/v1/status", http.StatusOK, &status)
	if status.Link != session.StateIdle.String() {
		t.Fatalf("link = %q", status.Link)
	}
}
