package proto

import (
	"bytes"
	"errors"
	"testing"

	goproto "google.golang.org/protobuf/proto"

	pb "github.com/gg-glitch-88/meshlink/internal/proto/meshtasticpb"
)

func TestToRadioWireBytes(t *testing.T) {
	codec := New()
	cases := []struct {
		name string
		msg  *pb.ToRadio
		want []byte
	}{
		{"want_config", WantConfig(42), []byte{0x18, 0x2a}},
		{"want_config_zero", WantConfig(0), []byte{0x18, 0x00}},
		{"disconnect", Goodbye(), []byte{0x20, 0x01}},
		{"heartbeat", Heartbeat(), []byte{0x3a, 0x00}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := codec.EncodeToRadio(tc.msg)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if !bytes.Equal(got, tc.want) {
				t.Fatalf("got % x want % x", got, tc.want)
			}
			back, err := codec.DecodeToRadio(got)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !goproto.Equal(back, tc.msg) {
				t.Fatalf("decoded %v want %v", back, tc.msg)
			}
		})
	}
}

func TestEncodeRejectsUnsetVariant(t *testing.T) {
	codec := New()
	if _, err := codec.EncodeToRadio(&pb.ToRadio{}); !errors.Is(err, ErrNoVariant) {
		t.Fatalf("expected ErrNoVariant, got %v", err)
	}
	if _, err := codec.EncodeToRadio(nil); err == nil {
		t.Fatalf("expected error for nil")
	}
	if _, err := codec.EncodeFromRadio(&pb.FromRadio{Id: 3}); !errors.Is(err, ErrNoVariant) {
		t.Fatalf("expected ErrNoVariant, got %v", err)
	}
}

func TestDecodeConfigCompleteMarker(t *testing.T) {
	fr, err := New().DecodeFromRadio([]byte{0x08, 0x05, 0x38, 0x2a})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	id, ok := CompleteID(fr)
	if !ok || id != 42 || fr.GetId() != 5 {
		t.Fatalf("got variant=%s id=%d ok=%v envelope=%d", Variant(fr), id, ok, fr.GetId())
	}
}

func TestDecodeErrors(t *testing.T) {
	codec := New()
	for name, b := range map[string][]byte{
		"empty":          nil,
		"id_only":        {0x08, 0x01},
		"truncated_tag":  {0x80},
		"truncated_body": {0x12, 0x05, 0x01},
		"bad_nested":     {0x12, 0x02, 0x22, 0x09},
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := codec.DecodeFromRadio(b); !errors.Is(err, ErrDecode) {
				t.Fatalf("expected ErrDecode, got %v", err)
			}
		})
	}
}

func TestUnknownFieldsSkipped(t *testing.T) {
	// field 99 varint, then config_complete_id = 7
	b := []byte{0x98, 0x06, 0x01, 0x38, 0x07}
	fr, err := New().DecodeFromRadio(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if id, ok := CompleteID(fr); !ok || id != 7 {
		t.Fatalf("got %v", fr)
	}
}

func TestUnknownEnvelopeMemberKeptAsOther(t *testing.T) {
	// xmodemPacket (12) is not part of the generated subset.
	raw := []byte{0x62, 0x02, 0xaa, 0xbb}
	codec := New()
	fr, err := codec.DecodeFromRadio(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if Variant(fr) != "other" || fr.GetPayloadVariant() != nil {
		t.Fatalf("got %s %v", Variant(fr), fr)
	}
	if got := fr.ProtoReflect().GetUnknown(); !bytes.Equal(got, raw) {
		t.Fatalf("unknown fields % x", got)
	}
}

func TestLastVariantWins(t *testing.T) {
	b := []byte{0x40, 0x01, 0x38, 0x09}
	fr, err := New().DecodeFromRadio(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if Variant(fr) != "config_complete_id" || fr.GetRebooted() {
		t.Fatalf("expected config_complete only, got %v", fr)
	}
}

func TestFromRadioRoundTrip(t *testing.T) {
	codec := New()
	cases := []*pb.FromRadio{
		NewPacketEnvelope(&pb.MeshPacket{
			From: 0x1234abcd, To: BroadcastAddr, Id: 77, HopLimit: 3, WantAck: true, RxSnr: 6.25, RxRssi: -90,
			PayloadVariant: &pb.MeshPacket_Decoded{Decoded: &pb.Data{
				Portnum: pb.PortNum_TEXT_MESSAGE_APP, Payload: []byte("hello mesh"),
			}},
		}),
		{PayloadVariant: &pb.FromRadio_MyInfo{MyInfo: &pb.MyNodeInfo{MyNodeNum: 0xdeadbeef, RebootCount: 4}}},
		{PayloadVariant: &pb.FromRadio_NodeInfo{NodeInfo: &pb.NodeInfo{
			Num:      0x1234abcd,
			User:     &pb.User{Id: "!1234abcd", LongName: "Base", ShortName: "BS", HwModel: pb.HardwareModel_RAK4631},
			Position: &pb.Position{LatitudeI: -337000000, LongitudeI: 1512000000, Altitude: 12},
			Snr:      -3.5, LastHeard: 1700000000, HopsAway: 2,
		}}},
		{PayloadVariant: &pb.FromRadio_Config{Config: &pb.Config{
			PayloadVariant: &pb.Config_Lora{Lora: &pb.Config_LoRaConfig{Region: pb.Config_LoRaConfig_EU_868, HopLimit: 3}},
		}}},
		{PayloadVariant: &pb.FromRadio_ModuleConfig{ModuleConfig: &pb.ModuleConfig{}}},
		{PayloadVariant: &pb.FromRadio_Channel{Channel: &pb.Channel{
			Index: 1, Role: pb.Channel_SECONDARY, Settings: &pb.ChannelSettings{Name: "ops", Psk: []byte{1}},
		}}},
		{PayloadVariant: &pb.FromRadio_LogRecord{LogRecord: &pb.LogRecord{Message: "boot", Level: pb.LogRecord_INFO}}},
		{PayloadVariant: &pb.FromRadio_QueueStatus{QueueStatus: &pb.QueueStatus{Free: 14, Maxlen: 16}}},
		{PayloadVariant: &pb.FromRadio_Metadata{Metadata: &pb.DeviceMetadata{FirmwareVersion: "2.3.2", HasBluetooth: true}}},
		{PayloadVariant: &pb.FromRadio_Rebooted{Rebooted: true}},
		{Id: 9, PayloadVariant: &pb.FromRadio_ConfigCompleteId{ConfigCompleteId: 0}},
	}
	for _, in := range cases {
		t.Run(Variant(in), func(t *testing.T) {
			b, err := codec.EncodeFromRadio(in)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			out, err := codec.DecodeFromRadio(b)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !goproto.Equal(out, in) {
				t.Fatalf("got %v want %v", out, in)
			}
			again, err := codec.EncodeFromRadio(out)
			if err != nil || !bytes.Equal(again, b) {
				t.Fatalf("re-encode differs (%v):\n% x\n% x", err, again, b)
			}
		})
	}
}

func TestMeshPacketWireLayout(t *testing.T) {
	codec := New()
	// from=1 (fixed32), to=2 (fixed32), decoded{portnum=8}, id=3 (fixed32)
	in := &pb.MeshPacket{From: 1, To: 2, Id: 3, PayloadVariant: &pb.MeshPacket_Decoded{
		Decoded: &pb.Data{Portnum: pb.PortNum_WAYPOINT_APP},
	}}
	b, err := codec.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := []byte{
		0x0d, 0x01, 0x00, 0x00, 0x00,
		0x15, 0x02, 0x00, 0x00, 0x00,
		0x22, 0x02, 0x08, 0x08,
		0x35, 0x03, 0x00, 0x00, 0x00,
	}
	if !bytes.Equal(b, want) {
		t.Fatalf("got % x want % x", b, want)
	}

	enc := &pb.MeshPacket{PayloadVariant: &pb.MeshPacket_Encrypted{Encrypted: []byte{9, 9}}}
	b, err = codec.Marshal(enc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back pb.MeshPacket
	if err := codec.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.GetDecoded() != nil || !bytes.Equal(back.GetEncrypted(), []byte{9, 9}) {
		t.Fatalf("encrypted: %v", &back)
	}
}

func TestAdminMessageVariants(t *testing.T) {
	codec := New()
	for _, in := range []*pb.AdminMessage{
		{PayloadVariant: &pb.AdminMessage_SetOwner{SetOwner: &pb.User{LongName: "Rover", ShortName: "RV"}}},
		{PayloadVariant: &pb.AdminMessage_SetChannel{SetChannel: &pb.Channel{Index: 0, Role: pb.Channel_PRIMARY}}},
		{PayloadVariant: &pb.AdminMessage_SetConfig{SetConfig: &pb.Config{
			PayloadVariant: &pb.Config_Position{Position: &pb.Config_PositionConfig{GpsMode: pb.Config_PositionConfig_ENABLED}},
		}}},
		{PayloadVariant: &pb.AdminMessage_BeginEditSettings{BeginEditSettings: true}},
		{PayloadVariant: &pb.AdminMessage_CommitEditSettings{CommitEditSettings: true}},
	} {
		b, err := codec.Marshal(in)
		if err != nil {
			t.Fatalf("%s: %v", Variant(in), err)
		}
		var out pb.AdminMessage
		if err := codec.Unmarshal(b, &out); err != nil {
			t.Fatalf("%s: %v", Variant(in), err)
		}
		if Variant(&out) != Variant(in) || !goproto.Equal(&out, in) {
			t.Fatalf("got %v want %v", &out, in)
		}
	}
}

func TestUnmarshalWrapsDecodeError(t *testing.T) {
	var wp pb.Waypoint
	if err := New().Unmarshal([]byte{0x32, 0x09}, &wp); !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestDegrees(t *testing.T) {
	if d := Degrees(515000000); d < 51.49 || d > 51.51 {
		t.Fatalf("lat %f", d)
	}
	if d := Degrees(-1); d >= 0 {
		t.Fatalf("negative coordinate lost sign: %f", d)
	}
}

func TestMessageTypeLabel(t *testing.T) {
	if MessageTypeLabel(pb.PortNum_TEXT_MESSAGE_APP) != "TEXT_MESSAGE_APP" {
		t.Fatal("text label")
	}
	if MessageTypeLabel(pb.PortNum(250)) != "UNKNOWN(250)" {
		t.Fatal("unknown label")
	}
	if MessageTypeLabel(pb.PortNum_UNKNOWN_APP) != "UNKNOWN(0)" {
		t.Fatal("zero label")
	}
}

func TestVariantNames(t *testing.T) {
	if got := Variant(WantConfig(1)); got != "want_config_id" {
		t.Fatalf("got %q", got)
	}
	if got := Variant(&pb.FromRadio{}); got != "unset" {
		t.Fatalf("got %q", got)
	}
	if got := Variant((*pb.FromRadio)(nil)); got != "unset" {
		t.Fatalf("nil: got %q", got)
	}
	if got := Variant(&pb.Waypoint{}); got != "unset" {
		t.Fatalf("no oneof: got %q", got)
	}
}
