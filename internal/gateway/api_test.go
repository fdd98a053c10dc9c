package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap/zaptest"

	pb "github.com/gg-glitch-88/meshlink/internal/proto/meshtasticpb"
	"github.com/gg-glitch-88/meshlink/internal/router"
	"github.com/gg-glitch-88/meshlink/internal/session"
	"github.com/gg-glitch-88/meshlink/internal/store"
)

type fakeState struct {
	nodes    []*store.Node
	channels []*pb.Channel
	messages []*store.Message
	self     uint32
}

func (f *fakeState) ListNodes() []*store.Node { return f.nodes }

func (f *fakeState) GetNode(num uint32) (*store.Node, bool) {
	for _, n := range f.nodes {
		if n.Num == num {
			return n, true
		}
	}
	return nil, false
}

func (f *fakeState) NodeCount() int          { return len(f.nodes) }
func (f *fakeState) Channels() []*pb.Channel { return f.channels }
func (f *fakeState) SourceNodeID() uint32    { return f.self }

func (f *fakeState) RecentMessages(_ context.Context, n int) ([]*store.Message, error) {
	if n < len(f.messages) {
		return f.messages[:n], nil
	}
	return f.messages, nil
}

type fakeLink struct {
	state session.State
	err   error
	sent  []string
	dests []router.Destination
}

func (f *fakeLink) LinkState() session.State { return f.state }

func (f *fakeLink) SendText(_ context.Context, text string, dest router.Destination, _ bool, _ uint32) (*pb.MeshPacket, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, text)
	f.dests = append(f.dests, dest)
	return &pb.MeshPacket{Id: 77}, nil
}

func newAPI(t *testing.T) (*httptest.Server, *fakeState, *fakeLink) {
	st := &fakeState{
		self: 0xabc,
		nodes: []*store.Node{
			{Num: 0xabc, ID: "!00000abc", LongName: "Base"},
			{Num: 0x55, ID: "!00000055", LongName: "Rover"},
		},
		channels: []*pb.Channel{
			{Index: 0, Role: pb.Channel_PRIMARY, Settings: &pb.ChannelSettings{Name: "LongFast"}},
			{Index: 1, Role: pb.Channel_SECONDARY},
		},
		messages: []*store.Message{
			{ID: 2, FromNode: 0x55, PortNum: int32(pb.PortNum_TEXT_MESSAGE_APP), Payload: []byte("newest"), ReceivedAt: time.Unix(1700000001, 0)},
			{ID: 1, FromNode: 0xabc, PortNum: int32(pb.PortNum_WAYPOINT_APP), Payload: []byte{0x08, 0x01}, ReceivedAt: time.Unix(1700000000, 0)},
		},
	}
	link := &fakeLink{state: session.StateActive}
	reg := prometheus.NewRegistry()
	session.NewMetrics(reg)
	srv := httptest.NewServer(NewRouter(st, link, NewEventBus(nil), reg, zaptest.NewLogger(t)))
	t.Cleanup(srv.Close)
	return srv, st, link
}

func getJSON(t *testing.T, url string, want int, v any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != want {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("GET %s: status %d, want %d: %s", url, resp.StatusCode, want, body)
	}
	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestStatus(t *testing.T) {
	srv, _, _ := newAPI(t)
	var body struct {
		Status    string `json:"status"`
		Link      string `json:"link"`
		Node      string `json:"node"`
		NodeCount int    `json:"node_count"`
	}
	getJSON(t, srv.URL+"/api/v1/status", http.StatusOK, &body)
	if body.Status != "ok" || body.Link != "active" || body.Node != "!00000abc" || body.NodeCount != 2 {
		t.Fatalf("status = %+v", body)
	}
}

func TestNodes(t *testing.T) {
	srv, _, _ := newAPI(t)

	var list struct {
		Nodes []store.Node `json:"nodes"`
		Count int          `json:"count"`
	}
	getJSON(t, srv.URL+"/api/v1/nodes", http.StatusOK, &list)
	if list.Count != 2 || len(list.Nodes) != 2 {
		t.Fatalf("list = %+v", list)
	}

	var n store.Node
	getJSON(t, srv.URL+"/api/v1/nodes/!00000055", http.StatusOK, &n)
	if n.LongName != "Rover" {
		t.Fatalf("node = %+v", n)
	}
	getJSON(t, srv.URL+"/api/v1/nodes/2748", http.StatusOK, &n)
	if n.LongName != "Base" {
		t.Fatalf("node by decimal = %+v", n)
	}
	getJSON(t, srv.URL+"/api/v1/nodes/!zz", http.StatusBadRequest, nil)
	getJSON(t, srv.URL+"/api/v1/nodes/99", http.StatusNotFound, nil)
}

func TestListMessages(t *testing.T) {
	srv, _, _ := newAPI(t)

	type listing struct {
		Messages []struct {
			ID   int64  `json:"id"`
			Text string `json:"text"`
		} `json:"messages"`
		Count int `json:"count"`
	}
	var one listing
	getJSON(t, srv.URL+"/api/v1/messages?limit=1", http.StatusOK, &one)
	if one.Count != 1 || one.Messages[0].Text != "newest" {
		t.Fatalf("messages = %+v", one)
	}
	var all listing
	getJSON(t, srv.URL+"/api/v1/messages", http.StatusOK, &all)
	if all.Count != 2 || all.Messages[1].Text != "" {
		t.Fatalf("waypoint rendered as text: %+v", all)
	}
	getJSON(t, srv.URL+"/api/v1/messages?limit=0", http.StatusBadRequest, nil)
	getJSON(t, srv.URL+"/api/v1/messages?limit=x", http.StatusBadRequest, nil)
}

func TestSendMessage(t *testing.T) {
	srv, _, link := newAPI(t)
	url := srv.URL + "/api/v1/messages"

	resp := postJSON(t, url, `{"text":"hello","to":"!00000055"}`)
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var body struct {
		ID     uint32 `json:"id"`
		To     string `json:"to"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.ID != 77 || body.To != "!00000055" || body.Status != "queued" {
		t.Fatalf("body = %+v", body)
	}

	postJSON(t, url, `{"text":"all"}`)
	if len(link.dests) != 2 || link.dests[1].String() != "broadcast" {
		t.Fatalf("dests = %v", link.dests)
	}

	tests := []struct {
		name string
		body string
		err  error
		want int
	}{
		{"bad json", `{`, nil, http.StatusBadRequest},
		{"empty text", `{"text":"  "}`, nil, http.StatusBadRequest},
		{"bad dest", `{"text":"x","to":"nowhere"}`, nil, http.StatusBadRequest},
		{"not connected", `{"text":"x"}`, session.ErrNotConnected, http.StatusServiceUnavailable},
		{"queue full", `{"text":"x"}`, session.ErrWriteQueueFull, http.StatusServiceUnavailable},
		{"too large", `{"text":"x"}`, router.ErrPayloadTooLarge, http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link.err = tt.err
			if resp := postJSON(t, url, tt.body); resp.StatusCode != tt.want {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestChannels(t *testing.T) {
	srv, _, _ := newAPI(t)
	var body struct {
		Channels []channelView `json:"channels"`
	}
	getJSON(t, srv.URL+"/api/v1/channels", http.StatusOK, &body)
	if len(body.Channels) != 2 {
		t.Fatalf("channels = %+v", body.Channels)
	}
	if body.Channels[0].Name != "LongFast" || body.Channels[0].Role != pb.Channel_PRIMARY.String() {
		t.Fatalf("primary = %+v", body.Channels[0])
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _, _ := newAPI(t)
	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(b), "meshlink_session_state") {
		t.Fatalf("metrics: %d\n%s", resp.StatusCode, b)
	}
}

func TestParseNodeID(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
		ok   bool
	}{
		{"!deadbeef", 0xdeadbeef, true},
		{"42", 42, true},
		{"!", 0, false},
		{"-1", 0, false},
		{"4294967296", 0, false},
	}
	for _, tt := range tests {
		got, err := parseNodeID(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("parseNodeID(%q) = %d, %v", tt.in, got, err)
		}
	}
}
