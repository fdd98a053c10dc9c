// Package proto implements the Meshtastic protobuf encode/decode layer for
// the FromRadio and ToRadio envelopes. The message types themselves are
// generated into meshtasticpb from the .proto files under /proto.
package proto

import (
	"errors"
	"fmt"

	goproto "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"

	pb "github.com/gg-glitch-88/meshlink/internal/proto/meshtasticpb"
)

// BroadcastAddr is the MeshPacket.To value addressing every node.
const BroadcastAddr uint32 = 0xFFFFFFFF

var (
	// ErrDecode wraps every failure to parse an envelope or message.
	ErrDecode = errors.New("proto: decode error")
	// ErrNoVariant is reported for an envelope with no oneof member set.
	ErrNoVariant = errors.New("proto: envelope has no variant")
)

// MessageTypeLabel returns a human-readable label for a PortNum.
func MessageTypeLabel(p pb.PortNum) string {
	if name, ok := pb.PortNum_name[int32(p)]; ok && p != pb.PortNum_UNKNOWN_APP {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", p)
}

// Variant names the populated payload_variant member of an envelope or admin
// message. A member this build does not know decodes into the unknown fields
// and is reported as "other".
func Variant(m goproto.Message) string {
	if m == nil {
		return "unset"
	}
	r := m.ProtoReflect()
	if !r.IsValid() {
		return "unset"
	}
	od := r.Descriptor().Oneofs().ByName("payload_variant")
	if od == nil {
		return "unset"
	}
	if fd := r.WhichOneof(od); fd != nil {
		return string(fd.Name())
	}
	if len(r.GetUnknown()) > 0 {
		return "other"
	}
	return "unset"
}

func hasVariant(r protoreflect.Message) bool {
	od := r.Descriptor().Oneofs().ByName("payload_variant")
	return od != nil && r.WhichOneof(od) != nil
}

// Degrees converts a Meshtastic 1e-7 fixed-point coordinate.
func Degrees(i int32) float64 { return float64(i) / 1e7 }

// ── Envelopes ─────────────────────────────────────────────────────────────

// NewConfigComplete returns the marker envelope that ends a handshake.
func NewConfigComplete(id uint32) *pb.FromRadio {
	return &pb.FromRadio{PayloadVariant: &pb.FromRadio_ConfigCompleteId{ConfigCompleteId: id}}
}

// NewPacketEnvelope wraps a mesh packet.
func NewPacketEnvelope(p *pb.MeshPacket) *pb.FromRadio {
	return &pb.FromRadio{PayloadVariant: &pb.FromRadio_Packet{Packet: p}}
}

// CompleteID reports the correlation id if env is a config-complete marker.
func CompleteID(env *pb.FromRadio) (uint32, bool) {
	v, ok := env.GetPayloadVariant().(*pb.FromRadio_ConfigCompleteId)
	if !ok {
		return 0, false
	}
	return v.ConfigCompleteId, true
}

// WantConfig starts a configuration handshake correlated by id.
func WantConfig(id uint32) *pb.ToRadio {
	return &pb.ToRadio{PayloadVariant: &pb.ToRadio_WantConfigId{WantConfigId: id}}
}

// Goodbye asks the radio to drop the API client.
func Goodbye() *pb.ToRadio {
	return &pb.ToRadio{PayloadVariant: &pb.ToRadio_Disconnect{Disconnect: true}}
}

// Heartbeat keeps the serial API from idling out.
func Heartbeat() *pb.ToRadio {
	return &pb.ToRadio{PayloadVariant: &pb.ToRadio_Heartbeat{Heartbeat: &pb.Heartbeat{}}}
}

// SendPacket wraps a mesh packet for transmission.
func SendPacket(p *pb.MeshPacket) *pb.ToRadio {
	return &pb.ToRadio{PayloadVariant: &pb.ToRadio_Packet{Packet: p}}
}

// ── Handler ───────────────────────────────────────────────────────────────

// MeshtasticProtobuf handles encode/decode of Meshtastic envelopes. It works
// on frame payloads; framing lives in package frame.
type MeshtasticProtobuf struct {
	opts goproto.MarshalOptions
}

// New returns a ready MeshtasticProtobuf handler.
func New() *MeshtasticProtobuf {
	return &MeshtasticProtobuf{
		opts: goproto.MarshalOptions{Deterministic: true},
	}
}

// Marshal encodes any Meshtastic message, such as an admin or waypoint
// payload carried inside Data.
func (m *MeshtasticProtobuf) Marshal(msg goproto.Message) ([]byte, error) {
	b, err := m.opts.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("proto: marshal %s: %w", msg.ProtoReflect().Descriptor().Name(), err)
	}
	return b, nil
}

// Unmarshal decodes a Meshtastic message, wrapping failures in ErrDecode.
func (m *MeshtasticProtobuf) Unmarshal(b []byte, msg goproto.Message) error {
	if err := goproto.Unmarshal(b, msg); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDecode, msg.ProtoReflect().Descriptor().Name(), err)
	}
	return nil
}

// DecodeFromRadio parses one frame payload received from the device. An
// envelope whose member is newer than this build is kept with its unknown
// fields; one with nothing set at all is rejected.
func (m *MeshtasticProtobuf) DecodeFromRadio(payload []byte) (*pb.FromRadio, error) {
	fr := new(pb.FromRadio)
	if err := m.Unmarshal(payload, fr); err != nil {
		return nil, err
	}
	if Variant(fr) == "unset" {
		return nil, fmt.Errorf("%w: %w", ErrDecode, ErrNoVariant)
	}
	return fr, nil
}

// EncodeFromRadio serialises an envelope as the device would. The host only
// needs this to simulate a radio.
func (m *MeshtasticProtobuf) EncodeFromRadio(msg *pb.FromRadio) ([]byte, error) {
	if msg == nil {
		return nil, fmt.Errorf("proto: cannot encode nil FromRadio")
	}
	if !hasVariant(msg.ProtoReflect()) {
		return nil, fmt.Errorf("proto: FromRadio: %w", ErrNoVariant)
	}
	return m.Marshal(msg)
}

// DecodeToRadio parses a host-to-device payload.
func (m *MeshtasticProtobuf) DecodeToRadio(payload []byte) (*pb.ToRadio, error) {
	tr := new(pb.ToRadio)
	if err := m.Unmarshal(payload, tr); err != nil {
		return nil, err
	}
	if Variant(tr) == "unset" {
		return nil, fmt.Errorf("%w: %w", ErrDecode, ErrNoVariant)
	}
	return tr, nil
}

// EncodeToRadio serialises a ToRadio message into a frame payload.
func (m *MeshtasticProtobuf) EncodeToRadio(msg *pb.ToRadio) ([]byte, error) {
	if msg == nil {
		return nil, fmt.Errorf("proto: cannot encode nil ToRadio")
	}
	if !hasVariant(msg.ProtoReflect()) {
		return nil, fmt.Errorf("proto: ToRadio: %w", ErrNoVariant)
	}
	return m.Marshal(msg)
}
