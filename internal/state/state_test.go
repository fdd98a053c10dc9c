package state

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
	goproto "google.golang.org/protobuf/proto"

	"github.com/gg-glitch-88/meshlink/internal/proto"
	pb "github.com/gg-glitch-88/meshlink/internal/proto/meshtasticpb"
	"github.com/gg-glitch-88/meshlink/internal/store"
)

func newManager(t *testing.T, st Store) *Manager {
	t.Helper()
	m, err := New(context.Background(), st, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.now = func() time.Time { return time.Unix(1700000500, 0) }
	return m
}

func decoded(t *testing.T, port pb.PortNum, m goproto.Message) *pb.MeshPacket_Decoded {
	t.Helper()
	b, err := goproto.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return &pb.MeshPacket_Decoded{Decoded: &pb.Data{Portnum: port, Payload: b}}
}

func TestHandshakeSnapshot(t *testing.T) {
	ctx := context.Background()
	m := newManager(t, nil)

	envs := []*pb.FromRadio{
		{PayloadVariant: &pb.FromRadio_MyInfo{MyInfo: &pb.MyNodeInfo{MyNodeNum: 0xabc}}},
		{PayloadVariant: &pb.FromRadio_NodeInfo{NodeInfo: &pb.NodeInfo{
			Num:       0xabc,
			User:      &pb.User{LongName: "Base", ShortName: "BS", HwModel: 9},
			Position:  &pb.Position{LatitudeI: 601700000, LongitudeI: 249400000, Altitude: 12},
			LastHeard: 1700000000,
			HopsAway:  0,
		}}},
		{PayloadVariant: &pb.FromRadio_NodeInfo{NodeInfo: &pb.NodeInfo{Num: 0xdef, Snr: 6.25, HopsAway: 3}}},
		{PayloadVariant: &pb.FromRadio_Channel{Channel: &pb.Channel{Index: 1, Role: pb.Channel_SECONDARY, Settings: &pb.ChannelSettings{Name: "Admin"}}}},
		{PayloadVariant: &pb.FromRadio_Channel{Channel: &pb.Channel{Index: 0, Role: pb.Channel_PRIMARY}}},
		{PayloadVariant: &pb.FromRadio_Channel{Channel: &pb.Channel{Index: 2, Role: pb.Channel_DISABLED}}},
		{PayloadVariant: &pb.FromRadio_Metadata{Metadata: &pb.DeviceMetadata{FirmwareVersion: "2.3.2"}}},
		{PayloadVariant: &pb.FromRadio_Config{Config: &pb.Config{PayloadVariant: &pb.Config_Device{Device: &pb.Config_DeviceConfig{}}}}},
		{PayloadVariant: &pb.FromRadio_Config{Config: &pb.Config{PayloadVariant: &pb.Config_Position{Position: &pb.Config_PositionConfig{}}}}},
		{PayloadVariant: &pb.FromRadio_ModuleConfig{ModuleConfig: &pb.ModuleConfig{PayloadVariant: &pb.ModuleConfig_Mqtt{Mqtt: &pb.ModuleConfig_MQTTConfig{}}}}},
		proto.NewConfigComplete(7),
	}
	for _, env := range envs {
		if err := m.HandleFromRadio(ctx, env); err != nil {
			t.Fatalf("HandleFromRadio(%s): %v", proto.Variant(env), err)
		}
	}

	if got := m.SourceNodeID(); got != 0xabc {
		t.Fatalf("SourceNodeID = %#x", got)
	}
	if m.NodeCount() != 2 {
		t.Fatalf("NodeCount = %d", m.NodeCount())
	}
	base, ok := m.GetNode(0xabc)
	if !ok {
		t.Fatal("own node missing")
	}
	if base.LongName != "Base" || base.ID != "!00000abc" || base.HwModel != 9 {
		t.Fatalf("node = %+v", base)
	}
	if base.Lat < 60.16 || base.Lat > 60.18 || base.Alt != 12 {
		t.Fatalf("position = %v,%v,%d", base.Lat, base.Lon, base.Alt)
	}
	if !base.LastHeard.Equal(time.Unix(1700000000, 0)) {
		t.Fatalf("last heard = %v", base.LastHeard)
	}
	if far, _ := m.GetNode(0xdef); far.HopsAway != 3 || far.SNR != 6.25 {
		t.Fatalf("far node = %+v", far)
	}

	chans := m.Channels()
	if len(chans) != 2 || chans[0].Index != 0 || chans[1].GetSettings().GetName() != "Admin" {
		t.Fatalf("channels = %v", chans)
	}
	chans[1].Settings.Name = "mutated"
	if got := m.Channels()[1].GetSettings().GetName(); got != "Admin" {
		t.Fatalf("Channels leaked internal record: %q", got)
	}
	if md, ok := m.Metadata(); !ok || md.GetFirmwareVersion() != "2.3.2" {
		t.Fatalf("metadata = %v, %v", md, ok)
	}
	if c, mod := m.ConfigSections(); c != 2 || mod != 1 {
		t.Fatalf("sections = %d, %d", c, mod)
	}
}

func TestMeshPacketUpdatesNode(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	m := newManager(t, st)

	err := m.HandleMeshPacket(ctx, &pb.MeshPacket{
		From:     0x55,
		To:       proto.BroadcastAddr,
		RxSnr:    -3.5,
		HopStart: 3,
		HopLimit: 1,
		PayloadVariant: decoded(t, pb.PortNum_POSITION_APP,
			&pb.Position{LatitudeI: 100000000, LongitudeI: 200000000, Altitude: 5}),
	})
	if err != nil {
		t.Fatalf("HandleMeshPacket: %v", err)
	}
	if err := m.HandleMeshPacket(ctx, &pb.MeshPacket{
		From:           0x55,
		PayloadVariant: decoded(t, pb.PortNum_NODEINFO_APP, &pb.User{LongName: "Rover", ShortName: "RV"}),
	}); err != nil {
		t.Fatalf("HandleMeshPacket: %v", err)
	}

	n, ok := m.GetNode(0x55)
	if !ok {
		t.Fatal("sender not recorded")
	}
	if n.Lat != 10 || n.Lon != 20 || n.Alt != 5 {
		t.Fatalf("position = %v,%v,%d", n.Lat, n.Lon, n.Alt)
	}
	if n.LongName != "Rover" || n.HopsAway != 2 || n.SNR != -3.5 {
		t.Fatalf("node = %+v", n)
	}
	if !n.LastHeard.Equal(time.Unix(1700000500, 0)) {
		t.Fatalf("last heard = %v", n.LastHeard)
	}

	persisted, err := st.GetNode(ctx, 0x55)
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if persisted.LongName != "Rover" || persisted.Lat != 10 {
		t.Fatalf("persisted = %+v", persisted)
	}
}

func TestTextMessagesStored(t *testing.T) {
	ctx := context.Background()
	m := newManager(t, nil)

	for i, text := range []string{"hi", "there"} {
		err := m.HandleMeshPacket(ctx, &pb.MeshPacket{
			From:   0x10,
			To:     0x20,
			Id:     uint32(i + 1),
			RxTime: uint32(1700000000 + i),
			PayloadVariant: &pb.MeshPacket_Decoded{Decoded: &pb.Data{
				Portnum: pb.PortNum_TEXT_MESSAGE_APP,
				Payload: []byte(text),
			}},
		})
		if err != nil {
			t.Fatalf("HandleMeshPacket: %v", err)
		}
	}
	// Telemetry is not stored as a message.
	if err := m.HandleMeshPacket(ctx, &pb.MeshPacket{
		From: 0x10,
		PayloadVariant: &pb.MeshPacket_Decoded{Decoded: &pb.Data{
			Portnum: pb.PortNum_TELEMETRY_APP,
			Payload: []byte{0x08, 0x01},
		}},
	}); err != nil {
		t.Fatalf("HandleMeshPacket: %v", err)
	}

	msgs, err := m.RecentMessages(ctx, 10)
	if err != nil {
		t.Fatalf("RecentMessages: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if string(msgs[0].Payload) != "there" || msgs[0].PacketID != 2 || msgs[0].ToNode != 0x20 {
		t.Fatalf("newest = %+v", msgs[0])
	}
}

func TestMalformedPositionReported(t *testing.T) {
	m := newManager(t, nil)
	err := m.HandleMeshPacket(context.Background(), &pb.MeshPacket{
		From: 0x10,
		PayloadVariant: &pb.MeshPacket_Decoded{Decoded: &pb.Data{
			Portnum: pb.PortNum_POSITION_APP,
			Payload: []byte{0x0d, 0x01},
		}},
	})
	if !errors.Is(err, proto.ErrDecode) {
		t.Fatalf("err = %v, want ErrDecode", err)
	}
	if _, ok := m.GetNode(0x10); !ok {
		t.Fatal("sender should still be marked heard")
	}
}

func TestIgnoresAnonymousPackets(t *testing.T) {
	m := newManager(t, nil)
	if err := m.HandleMeshPacket(context.Background(), &pb.MeshPacket{}); err != nil {
		t.Fatal(err)
	}
	if m.NodeCount() != 0 {
		t.Fatal("node 0 recorded")
	}
}

func TestHydratesFromStore(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	if err := st.UpsertNode(ctx, &store.Node{Num: 0x77, LongName: "Old"}); err != nil {
		t.Fatal(err)
	}
	m := newManager(t, st)
	n, ok := m.GetNode(0x77)
	if !ok || n.LongName != "Old" || n.ID != "!00000077" {
		t.Fatalf("hydrated = %+v, %v", n, ok)
	}
}

func TestListNodesReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := newManager(t, nil)
	for _, num := range []uint32{3, 1, 2} {
		if err := m.HandleFromRadio(ctx, &pb.FromRadio{PayloadVariant: &pb.FromRadio_NodeInfo{NodeInfo: &pb.NodeInfo{Num: num}}}); err != nil {
			t.Fatal(err)
		}
	}
	nodes := m.ListNodes()
	if len(nodes) != 3 || nodes[0].Num != 1 || nodes[2].Num != 3 {
		t.Fatalf("nodes = %+v", nodes)
	}
	nodes[0].LongName = "mutated"
	if n, _ := m.GetNode(1); n.LongName != "" {
		t.Fatal("ListNodes leaked internal record")
	}
}

func TestZeroPositionKeepsCoordinates(t *testing.T) {
	ctx := context.Background()
	m := newManager(t, nil)

	if err := m.HandleMeshPacket(ctx, &pb.MeshPacket{
		From:           0x42,
		PayloadVariant: decoded(t, pb.PortNum_POSITION_APP, &pb.Position{LatitudeI: 515000000, LongitudeI: -1200000, Altitude: 30}),
	}); err != nil {
		t.Fatalf("HandleMeshPacket: %v", err)
	}
	// A position packet without a fix carries 0,0.
	if err := m.HandleMeshPacket(ctx, &pb.MeshPacket{
		From:           0x42,
		PayloadVariant: decoded(t, pb.PortNum_POSITION_APP, &pb.Position{Time: 1700000100}),
	}); err != nil {
		t.Fatalf("HandleMeshPacket: %v", err)
	}
	if err := m.HandleFromRadio(ctx, &pb.FromRadio{PayloadVariant: &pb.FromRadio_NodeInfo{NodeInfo: &pb.NodeInfo{
		Num:      0x42,
		Position: &pb.Position{},
	}}}); err != nil {
		t.Fatalf("HandleFromRadio: %v", err)
	}

	n, _ := m.GetNode(0x42)
	if n.Lat != 51.5 || n.Lon != -0.12 || n.Alt != 30 {
		t.Fatalf("position overwritten: %v,%v,%d", n.Lat, n.Lon, n.Alt)
	}
}
