package router

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
	goproto "google.golang.org/protobuf/proto"

	"github.com/gg-glitch-88/meshlink/internal/proto"
	pb "github.com/gg-glitch-88/meshlink/internal/proto/meshtasticpb"
)

type captureSender struct {
	mu   sync.Mutex
	sent []*pb.ToRadio
	err  error
}

func (s *captureSender) Send(msg *pb.ToRadio) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

func (s *captureSender) last(t *testing.T) *pb.MeshPacket {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.sent) == 0 {
		t.Fatal("nothing sent")
	}
	msg := s.sent[len(s.sent)-1]
	if msg.GetPacket() == nil {
		t.Fatalf("sent %s, want packet", proto.Variant(msg))
	}
	return msg.GetPacket()
}

// admins decodes every queued ADMIN_APP payload in send order.
func (s *captureSender) admins(t *testing.T) []*pb.AdminMessage {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*pb.AdminMessage
	for _, msg := range s.sent {
		d := msg.GetPacket().GetDecoded()
		if d.GetPortnum() != pb.PortNum_ADMIN_APP {
			continue
		}
		m := &pb.AdminMessage{}
		if err := goproto.Unmarshal(d.GetPayload(), m); err != nil {
			t.Fatalf("unmarshal admin: %v", err)
		}
		out = append(out, m)
	}
	return out
}

type captureRouter struct {
	self    uint32
	mu      sync.Mutex
	envs    []*pb.FromRadio
	packets []*pb.MeshPacket
	fromErr error
	meshErr error
}

func (r *captureRouter) HandleFromRadio(_ context.Context, env *pb.FromRadio) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.envs = append(r.envs, env)
	return r.fromErr
}

func (r *captureRouter) HandleMeshPacket(_ context.Context, p *pb.MeshPacket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.packets = append(r.packets, p)
	return r.meshErr
}

func (r *captureRouter) SourceNodeID() uint32 { return r.self }

func newTestClient(t *testing.T) (*Client, *captureSender, *captureRouter) {
	s := &captureSender{}
	r := &captureRouter{self: 0x1234}
	c := NewClient(s, r, zaptest.NewLogger(t))
	c.now = func() time.Time { return time.Unix(1700000000, 0) }
	next := uint32(100)
	c.newID = func() uint32 { next++; return next }
	return c, s, r
}

func TestDestinationResolve(t *testing.T) {
	tests := []struct {
		d    Destination
		want uint32
		name string
	}{
		{Local(), 0x1234, "local"},
		{Broadcast(), proto.BroadcastAddr, "broadcast"},
		{Node(0xdeadbeef), 0xdeadbeef, "!deadbeef"},
	}
	for _, tt := range tests {
		if got := tt.d.Resolve(0x1234); got != tt.want {
			t.Errorf("%s: Resolve = %#x, want %#x", tt.name, got, tt.want)
		}
		if got := tt.d.String(); got != tt.name {
			t.Errorf("String = %q, want %q", got, tt.name)
		}
	}
}

func TestSendTextEchoesAndQueues(t *testing.T) {
	c, s, r := newTestClient(t)

	p, err := c.SendText(context.Background(), "hello", Broadcast(), true, 2)
	if err != nil {
		t.Fatalf("SendText: %v", err)
	}
	sent := s.last(t)
	if sent != p {
		t.Fatal("returned packet differs from queued one")
	}
	if sent.From != 0x1234 || sent.To != proto.BroadcastAddr || sent.Channel != 2 || !sent.WantAck {
		t.Fatalf("header = %+v", sent)
	}
	if sent.Id != 101 {
		t.Fatalf("id = %d, want 101", sent.Id)
	}
	d := sent.GetDecoded()
	if d.GetPortnum() != pb.PortNum_TEXT_MESSAGE_APP || string(d.GetPayload()) != "hello" || d.GetWantResponse() {
		t.Fatalf("data = %v", d)
	}

	if len(r.packets) != 1 {
		t.Fatalf("echoed %d packets, want 1", len(r.packets))
	}
	echo := r.packets[0]
	if echo.RxTime != 1700000000 || echo.Id != sent.Id {
		t.Fatalf("echo = %v", echo)
	}
	if echo == sent {
		t.Fatal("echo shares the queued packet")
	}
	if sent.RxTime != 0 {
		t.Fatal("rx_time leaked into the queued packet")
	}
}

func TestEchoFailureSkipsSend(t *testing.T) {
	c, s, r := newTestClient(t)
	r.meshErr = errors.New("store down")

	if _, err := c.SendText(context.Background(), "x", Local(), false, 0); err == nil {
		t.Fatal("expected echo error")
	}
	if len(s.sent) != 0 {
		t.Fatal("packet queued after failed echo")
	}
}

func TestSendErrorPropagates(t *testing.T) {
	c, s, _ := newTestClient(t)
	want := errors.New("not active")
	s.err = want

	_, err := c.SendMeshPacket(context.Background(), []byte{1}, pb.PortNum_TEXT_MESSAGE_APP, Node(7), PacketOptions{})
	if !errors.Is(err, want) {
		t.Fatalf("err = %v, want %v", err, want)
	}
}

func TestPayloadLimit(t *testing.T) {
	c, s, _ := newTestClient(t)
	_, err := c.SendMeshPacket(context.Background(), make([]byte, MaxDataPayload+1), pb.PortNum_TEXT_MESSAGE_APP, Broadcast(), PacketOptions{})
	if !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("err = %v, want ErrPayloadTooLarge", err)
	}
	if len(s.sent) != 0 {
		t.Fatal("oversized packet queued")
	}
	if _, err := c.SendMeshPacket(context.Background(), make([]byte, MaxDataPayload), pb.PortNum_TEXT_MESSAGE_APP, Broadcast(), PacketOptions{}); err != nil {
		t.Fatalf("payload at limit: %v", err)
	}
}

func TestSendWaypointAssignsID(t *testing.T) {
	c, s, _ := newTestClient(t)

	in := &pb.Waypoint{Name: "camp", LatitudeI: 10}
	id, err := c.SendWaypoint(context.Background(), in, Broadcast(), false, 0)
	if err != nil {
		t.Fatalf("SendWaypoint: %v", err)
	}
	if id == 0 {
		t.Fatal("waypoint id left at zero")
	}
	if in.Id != 0 {
		t.Fatal("caller's waypoint modified")
	}
	d := s.last(t).GetDecoded()
	if d.GetPortnum() != pb.PortNum_WAYPOINT_APP {
		t.Fatalf("port = %v", d.GetPortnum())
	}
	wp := &pb.Waypoint{}
	if err := goproto.Unmarshal(d.GetPayload(), wp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if wp.Id != id || wp.Name != "camp" {
		t.Fatalf("waypoint = %v, id %d", wp, id)
	}

	id, err = c.SendWaypoint(context.Background(), &pb.Waypoint{Id: 55}, Broadcast(), false, 0)
	if err != nil || id != 55 {
		t.Fatalf("explicit id: got %d, %v", id, err)
	}
}

func TestAdminMessages(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		call func(c *Client) error
		want string
	}{
		{"config", func(c *Client) error {
			return c.UpdateConfig(ctx, &pb.Config{PayloadVariant: &pb.Config_Device{Device: &pb.Config_DeviceConfig{SerialEnabled: true}}})
		}, "set_config"},
		{"module", func(c *Client) error {
			return c.UpdateModuleConfig(ctx, &pb.ModuleConfig{PayloadVariant: &pb.ModuleConfig_Mqtt{Mqtt: &pb.ModuleConfig_MQTTConfig{Enabled: true}}})
		}, "set_module_config"},
		{"channel", func(c *Client) error {
			return c.UpdateChannel(ctx, &pb.Channel{Index: 1, Role: pb.Channel_SECONDARY})
		}, "set_channel"},
		{"user", func(c *Client) error { return c.UpdateUser(ctx, &pb.User{LongName: "Base"}) }, "set_owner"},
		{"begin", func(c *Client) error { return c.StartConfigTransaction(ctx) }, "begin_edit_settings"},
		{"commit", func(c *Client) error { return c.CommitConfigTransaction(ctx) }, "commit_edit_settings"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, s, r := newTestClient(t)
			if err := tt.call(c); err != nil {
				t.Fatalf("call: %v", err)
			}
			p := s.last(t)
			if p.To != r.self || p.From != r.self {
				t.Fatalf("admin packet addressed %#x -> %#x", p.From, p.To)
			}
			if !p.WantAck || !p.GetDecoded().GetWantResponse() {
				t.Fatal("admin packet must request ack and response")
			}
			if got := p.GetDecoded().GetPortnum(); got != pb.PortNum_ADMIN_APP {
				t.Fatalf("port = %v", got)
			}
			m := s.admins(t)
			if len(m) != 1 {
				t.Fatalf("%d admin messages", len(m))
			}
			if got := proto.Variant(m[0]); got != tt.want {
				t.Fatalf("variant = %s, want %s", got, tt.want)
			}
			if len(r.packets) != 0 {
				t.Fatal("admin packets are not echoed")
			}
		})
	}
}

func TestSetLocalConfigOnePacketPerSection(t *testing.T) {
	c, s, _ := newTestClient(t)
	cfg := &pb.LocalConfig{
		Device:    &pb.Config_DeviceConfig{SerialEnabled: true},
		Lora:      &pb.Config_LoRaConfig{UsePreset: true},
		Bluetooth: &pb.Config_BluetoothConfig{},
		Version:   3,
	}
	if err := c.SetLocalConfig(context.Background(), cfg); err != nil {
		t.Fatalf("SetLocalConfig: %v", err)
	}
	msgs := s.admins(t)
	want := []string{"bluetooth", "device", "lora"}
	if len(msgs) != len(want) {
		t.Fatalf("sent %d admin packets, want %d", len(msgs), len(want))
	}
	for i, m := range msgs {
		sc := m.GetSetConfig()
		if sc == nil {
			t.Fatalf("packet %d: %s, want set_config", i, proto.Variant(m))
		}
		if got := proto.Variant(sc); got != want[i] {
			t.Fatalf("packet %d: section %s, want %s", i, got, want[i])
		}
	}
	if !goproto.Equal(msgs[1].GetSetConfig().GetDevice(), cfg.Device) {
		t.Fatalf("device section = %v", msgs[1].GetSetConfig().GetDevice())
	}

	if err := c.SetLocalConfig(context.Background(), &pb.LocalConfig{Version: 1}); err != nil {
		t.Fatalf("empty config: %v", err)
	}
	if n := len(s.admins(t)); n != len(want) {
		t.Fatalf("empty config sent %d extra packets", n-len(want))
	}
	if err := c.SetLocalConfig(context.Background(), nil); err == nil {
		t.Fatal("nil config accepted")
	}
}

func TestSetLocalModuleConfigOnePacketPerSection(t *testing.T) {
	c, s, _ := newTestClient(t)
	cfg := &pb.LocalModuleConfig{
		Mqtt:       &pb.ModuleConfig_MQTTConfig{Enabled: true, Address: "mqtt.local"},
		Telemetry:  &pb.ModuleConfig_TelemetryConfig{DeviceUpdateInterval: 900},
		Audio:      &pb.ModuleConfig_AudioConfig{},
		Paxcounter: &pb.ModuleConfig_PaxcounterConfig{Enabled: true},
	}
	if err := c.SetLocalModuleConfig(context.Background(), cfg); err != nil {
		t.Fatalf("SetLocalModuleConfig: %v", err)
	}
	msgs := s.admins(t)
	want := []string{"audio", "mqtt", "telemetry", "paxcounter"}
	if len(msgs) != len(want) {
		t.Fatalf("sent %d admin packets, want %d", len(msgs), len(want))
	}
	for i, m := range msgs {
		mc := m.GetSetModuleConfig()
		if mc == nil {
			t.Fatalf("packet %d: %s, want set_module_config", i, proto.Variant(m))
		}
		if got := proto.Variant(mc); got != want[i] {
			t.Fatalf("packet %d: section %s, want %s", i, got, want[i])
		}
	}
	if got := msgs[1].GetSetModuleConfig().GetMqtt().GetAddress(); got != "mqtt.local" {
		t.Fatalf("mqtt address = %q", got)
	}
}

func TestSetMessageChannelConfig(t *testing.T) {
	c, s, _ := newTestClient(t)
	channels := []*pb.Channel{
		{Index: 0, Role: pb.Channel_PRIMARY, Settings: &pb.ChannelSettings{Name: "LongFast"}},
		{Index: 1, Role: pb.Channel_SECONDARY, Settings: &pb.ChannelSettings{Name: "ops"}},
		{Index: 2, Role: pb.Channel_DISABLED},
	}
	if err := c.SetMessageChannelConfig(context.Background(), channels); err != nil {
		t.Fatalf("SetMessageChannelConfig: %v", err)
	}
	msgs := s.admins(t)
	if len(msgs) != len(channels) {
		t.Fatalf("sent %d admin packets, want %d", len(msgs), len(channels))
	}
	for i, m := range msgs {
		if !goproto.Equal(m.GetSetChannel(), channels[i]) {
			t.Fatalf("packet %d: %v, want %v", i, m.GetSetChannel(), channels[i])
		}
	}

	if err := c.SetMessageChannelConfig(context.Background(), []*pb.Channel{channels[0], nil}); err == nil {
		t.Fatal("nil channel accepted")
	}
}

func TestUpdateConfigRejectsEmptySection(t *testing.T) {
	c, s, _ := newTestClient(t)
	if err := c.UpdateConfig(context.Background(), &pb.Config{}); err == nil {
		t.Fatal("empty config section accepted")
	}
	if err := c.UpdateModuleConfig(context.Background(), nil); err == nil {
		t.Fatal("nil module section accepted")
	}
	if len(s.sent) != 0 {
		t.Fatal("empty section queued")
	}
}

func TestAdminRejectsNil(t *testing.T) {
	c, _, _ := newTestClient(t)
	if err := c.UpdateChannel(context.Background(), nil); err == nil {
		t.Fatal("nil channel accepted")
	}
	if err := c.UpdateUser(context.Background(), nil); err == nil {
		t.Fatal("nil user accepted")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		env  *pb.FromRadio
		want Category
	}{
		{&pb.FromRadio{PayloadVariant: &pb.FromRadio_MyInfo{MyInfo: &pb.MyNodeInfo{}}}, CategorySnapshot},
		{&pb.FromRadio{PayloadVariant: &pb.FromRadio_NodeInfo{NodeInfo: &pb.NodeInfo{}}}, CategorySnapshot},
		{&pb.FromRadio{PayloadVariant: &pb.FromRadio_Channel{Channel: &pb.Channel{}}}, CategorySnapshot},
		{proto.NewConfigComplete(1), CategorySnapshot},
		{proto.NewPacketEnvelope(&pb.MeshPacket{}), CategoryMesh},
		{&pb.FromRadio{PayloadVariant: &pb.FromRadio_LogRecord{LogRecord: &pb.LogRecord{}}}, CategoryLog},
		{&pb.FromRadio{PayloadVariant: &pb.FromRadio_QueueStatus{QueueStatus: &pb.QueueStatus{}}}, CategoryStatus},
		{&pb.FromRadio{PayloadVariant: &pb.FromRadio_Rebooted{Rebooted: true}}, CategoryStatus},
		{&pb.FromRadio{Id: 3}, CategoryOther},
	}
	for _, tt := range tests {
		if got := Classify(tt.env); got != tt.want {
			t.Errorf("Classify(%s) = %v, want %v", proto.Variant(tt.env), got, tt.want)
		}
	}
	if Classify(nil) != CategoryOther {
		t.Error("nil envelope not classified as other")
	}
}

func TestRouteFeedsRouterInOrder(t *testing.T) {
	r := &captureRouter{self: 1}
	events := make(chan *pb.FromRadio, 4)
	pkt := &pb.MeshPacket{Id: 9}
	events <- &pb.FromRadio{Id: 1, PayloadVariant: &pb.FromRadio_MyInfo{MyInfo: &pb.MyNodeInfo{MyNodeNum: 1}}}
	events <- proto.NewPacketEnvelope(pkt)
	events <- proto.NewConfigComplete(5)
	close(events)

	var tapped []string
	err := Route(context.Background(), events, r, zaptest.NewLogger(t), func(env *pb.FromRadio) {
		tapped = append(tapped, proto.Variant(env))
	})
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if len(r.envs) != 3 || len(tapped) != 3 {
		t.Fatalf("routed %d, tapped %d, want 3", len(r.envs), len(tapped))
	}
	if tapped[1] != "packet" || tapped[2] != "config_complete_id" {
		t.Fatalf("order = %v", tapped)
	}
	if len(r.packets) != 1 || r.packets[0] != pkt {
		t.Fatal("mesh packet not passed to HandleMeshPacket")
	}
}

func TestRouteContinuesAfterHandlerError(t *testing.T) {
	r := &captureRouter{fromErr: errors.New("boom")}
	events := make(chan *pb.FromRadio, 2)
	events <- proto.NewConfigComplete(1)
	events <- proto.NewConfigComplete(2)
	close(events)

	if err := Route(context.Background(), events, r, zaptest.NewLogger(t), nil); err != nil {
		t.Fatalf("Route: %v", err)
	}
	if len(r.envs) != 2 {
		t.Fatalf("routed %d, want 2", len(r.envs))
	}
}

func TestRouteStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Route(ctx, make(chan *pb.FromRadio), &captureRouter{}, nil, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
