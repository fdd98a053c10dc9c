package router

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
	goproto "google.golang.org/protobuf/proto"

	"github.com/gg-glitch-88/meshlink/internal/proto"
	pb "github.com/gg-glitch-88/meshlink/internal/proto/meshtasticpb"
)

// MaxDataPayload is the largest Data.payload the firmware will transmit.
const MaxDataPayload = 233

// ErrPayloadTooLarge is returned for application payloads over MaxDataPayload.
var ErrPayloadTooLarge = errors.New("router: payload too large")

// Sender is the part of a session the client needs.
type Sender interface {
	Send(msg *pb.ToRadio) error
}

// Destination addresses a mesh packet.
type Destination struct {
	kind destKind
	node uint32
}

type destKind int

const (
	destLocal destKind = iota
	destBroadcast
	destNode
)

// Local addresses the attached radio itself.
func Local() Destination { return Destination{kind: destLocal} }

// Broadcast addresses every node on the channel.
func Broadcast() Destination { return Destination{kind: destBroadcast} }

// Node addresses a single node.
func Node(num uint32) Destination { return Destination{kind: destNode, node: num} }

// Resolve returns the MeshPacket.To value for d sent from self.
func (d Destination) Resolve(self uint32) uint32 {
	switch d.kind {
	case destBroadcast:
		return proto.BroadcastAddr
	case destNode:
		return d.node
	default:
		return self
	}
}

func (d Destination) String() string {
	switch d.kind {
	case destBroadcast:
		return "broadcast"
	case destNode:
		return fmt.Sprintf("!%08x", d.node)
	default:
		return "local"
	}
}

// PacketOptions are the per-packet flags of SendMeshPacket.
type PacketOptions struct {
	Channel      uint32
	WantAck      bool
	WantResponse bool
	// Echo passes the packet to the router's HandleMeshPacket before it is
	// queued, so locally sent messages show up like received ones.
	Echo    bool
	ReplyID uint32
	Emoji   uint32
}

// Client builds application packets and queues them on a Sender.
type Client struct {
	sender Sender
	router PacketRouter
	codec  *proto.MeshtasticProtobuf
	log    *zap.Logger
	now    func() time.Time
	newID  func() uint32
}

func NewClient(s Sender, r PacketRouter, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{sender: s, router: r, codec: proto.New(), log: log, now: time.Now, newID: RandomID}
}

// RandomID returns a non-zero random packet id.
func RandomID() uint32 {
	for {
		if id := rand.Uint32(); id != 0 {
			return id
		}
	}
}

// SendMeshPacket wraps payload in a MeshPacket on port and queues it. The
// packet is returned with its assigned id.
func (c *Client) SendMeshPacket(ctx context.Context, payload []byte, port pb.PortNum, dest Destination, opts PacketOptions) (*pb.MeshPacket, error) {
	if len(payload) > MaxDataPayload {
		return nil, fmt.Errorf("%w: %d > %d bytes", ErrPayloadTooLarge, len(payload), MaxDataPayload)
	}
	self := c.router.SourceNodeID()
	p := &pb.MeshPacket{
		From:    self,
		To:      dest.Resolve(self),
		Channel: opts.Channel,
		Id:      c.newID(),
		WantAck: opts.WantAck,
		PayloadVariant: &pb.MeshPacket_Decoded{Decoded: &pb.Data{
			Portnum:      port,
			Payload:      payload,
			WantResponse: opts.WantResponse,
			ReplyId:      opts.ReplyID,
			Emoji:        opts.Emoji,
		}},
	}

	if opts.Echo {
		echo := goproto.Clone(p).(*pb.MeshPacket)
		echo.RxTime = uint32(c.now().Unix())
		if err := c.router.HandleMeshPacket(ctx, echo); err != nil {
			return nil, fmt.Errorf("router: echo: %w", err)
		}
	}
	if err := c.sender.Send(proto.SendPacket(p)); err != nil {
		return nil, err
	}
	c.log.Debug("router: packet queued",
		zap.Uint32("id", p.Id),
		zap.String("port", proto.MessageTypeLabel(port)),
		zap.Stringer("to", dest),
	)
	return p, nil
}

// SendText sends a TEXT_MESSAGE_APP packet and echoes it locally.
func (c *Client) SendText(ctx context.Context, text string, dest Destination, wantAck bool, channel uint32) (*pb.MeshPacket, error) {
	return c.SendMeshPacket(ctx, []byte(text), pb.PortNum_TEXT_MESSAGE_APP, dest, PacketOptions{
		Channel: channel,
		WantAck: wantAck,
		Echo:    true,
	})
}

// SendWaypoint sends wp on WAYPOINT_APP. A zero id is replaced with a random
// one, since 0 marks no waypoint. The id used is returned; wp is not modified.
func (c *Client) SendWaypoint(ctx context.Context, wp *pb.Waypoint, dest Destination, wantAck bool, channel uint32) (uint32, error) {
	if wp == nil {
		return 0, fmt.Errorf("router: nil waypoint")
	}
	wp = goproto.Clone(wp).(*pb.Waypoint)
	if wp.Id == 0 {
		wp.Id = c.newID()
	}
	b, err := c.codec.Marshal(wp)
	if err != nil {
		return 0, err
	}
	_, err = c.SendMeshPacket(ctx, b, pb.PortNum_WAYPOINT_APP, dest, PacketOptions{
		Channel: channel,
		WantAck: wantAck,
		Echo:    true,
	})
	return wp.Id, err
}

// UpdateConfig sends one Config section to the local radio.
func (c *Client) UpdateConfig(ctx context.Context, cfg *pb.Config) error {
	if cfg.GetPayloadVariant() == nil {
		return fmt.Errorf("router: empty config section")
	}
	return c.admin(ctx, &pb.AdminMessage{PayloadVariant: &pb.AdminMessage_SetConfig{SetConfig: cfg}})
}

// UpdateModuleConfig sends one ModuleConfig section.
func (c *Client) UpdateModuleConfig(ctx context.Context, cfg *pb.ModuleConfig) error {
	if cfg.GetPayloadVariant() == nil {
		return fmt.Errorf("router: empty module config section")
	}
	return c.admin(ctx, &pb.AdminMessage{PayloadVariant: &pb.AdminMessage_SetModuleConfig{SetModuleConfig: cfg}})
}

// UpdateChannel replaces one channel table entry.
func (c *Client) UpdateChannel(ctx context.Context, ch *pb.Channel) error {
	if ch == nil {
		return fmt.Errorf("router: nil channel")
	}
	return c.admin(ctx, &pb.AdminMessage{PayloadVariant: &pb.AdminMessage_SetChannel{SetChannel: ch}})
}

// UpdateUser sets the owner record of the local radio.
func (c *Client) UpdateUser(ctx context.Context, u *pb.User) error {
	if u == nil {
		return fmt.Errorf("router: nil user")
	}
	return c.admin(ctx, &pb.AdminMessage{PayloadVariant: &pb.AdminMessage_SetOwner{SetOwner: u}})
}

// SetLocalConfig writes every populated section of cfg, one admin packet per
// section. Sections left nil are not touched on the radio.
func (c *Client) SetLocalConfig(ctx context.Context, cfg *pb.LocalConfig) error {
	if cfg == nil {
		return fmt.Errorf("router: nil local config")
	}
	var sections []*pb.Config
	if cfg.Bluetooth != nil {
		sections = append(sections, &pb.Config{PayloadVariant: &pb.Config_Bluetooth{Bluetooth: cfg.Bluetooth}})
	}
	if cfg.Device != nil {
		sections = append(sections, &pb.Config{PayloadVariant: &pb.Config_Device{Device: cfg.Device}})
	}
	if cfg.Display != nil {
		sections = append(sections, &pb.Config{PayloadVariant: &pb.Config_Display{Display: cfg.Display}})
	}
	if cfg.Lora != nil {
		sections = append(sections, &pb.Config{PayloadVariant: &pb.Config_Lora{Lora: cfg.Lora}})
	}
	if cfg.Network != nil {
		sections = append(sections, &pb.Config{PayloadVariant: &pb.Config_Network{Network: cfg.Network}})
	}
	if cfg.Position != nil {
		sections = append(sections, &pb.Config{PayloadVariant: &pb.Config_Position{Position: cfg.Position}})
	}
	if cfg.Power != nil {
		sections = append(sections, &pb.Config{PayloadVariant: &pb.Config_Power{Power: cfg.Power}})
	}
	for _, s := range sections {
		if err := c.UpdateConfig(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

// SetLocalModuleConfig writes every populated module section of cfg.
func (c *Client) SetLocalModuleConfig(ctx context.Context, cfg *pb.LocalModuleConfig) error {
	if cfg == nil {
		return fmt.Errorf("router: nil local module config")
	}
	var sections []*pb.ModuleConfig
	if cfg.Audio != nil {
		sections = append(sections, &pb.ModuleConfig{PayloadVariant: &pb.ModuleConfig_Audio{Audio: cfg.Audio}})
	}
	if cfg.CannedMessage != nil {
		sections = append(sections, &pb.ModuleConfig{PayloadVariant: &pb.ModuleConfig_CannedMessage{CannedMessage: cfg.CannedMessage}})
	}
	if cfg.ExternalNotification != nil {
		sections = append(sections, &pb.ModuleConfig{PayloadVariant: &pb.ModuleConfig_ExternalNotification{ExternalNotification: cfg.ExternalNotification}})
	}
	if cfg.Mqtt != nil {
		sections = append(sections, &pb.ModuleConfig{PayloadVariant: &pb.ModuleConfig_Mqtt{Mqtt: cfg.Mqtt}})
	}
	if cfg.RangeTest != nil {
		sections = append(sections, &pb.ModuleConfig{PayloadVariant: &pb.ModuleConfig_RangeTest{RangeTest: cfg.RangeTest}})
	}
	if cfg.RemoteHardware != nil {
		sections = append(sections, &pb.ModuleConfig{PayloadVariant: &pb.ModuleConfig_RemoteHardware{RemoteHardware: cfg.RemoteHardware}})
	}
	if cfg.Serial != nil {
		sections = append(sections, &pb.ModuleConfig{PayloadVariant: &pb.ModuleConfig_Serial{Serial: cfg.Serial}})
	}
	if cfg.StoreForward != nil {
		sections = append(sections, &pb.ModuleConfig{PayloadVariant: &pb.ModuleConfig_StoreForward{StoreForward: cfg.StoreForward}})
	}
	if cfg.Telemetry != nil {
		sections = append(sections, &pb.ModuleConfig{PayloadVariant: &pb.ModuleConfig_Telemetry{Telemetry: cfg.Telemetry}})
	}
	if cfg.NeighborInfo != nil {
		sections = append(sections, &pb.ModuleConfig{PayloadVariant: &pb.ModuleConfig_NeighborInfo{NeighborInfo: cfg.NeighborInfo}})
	}
	if cfg.Paxcounter != nil {
		sections = append(sections, &pb.ModuleConfig{PayloadVariant: &pb.ModuleConfig_Paxcounter{Paxcounter: cfg.Paxcounter}})
	}
	for _, s := range sections {
		if err := c.UpdateModuleConfig(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

// SetMessageChannelConfig writes each channel table entry in order.
func (c *Client) SetMessageChannelConfig(ctx context.Context, channels []*pb.Channel) error {
	for _, ch := range channels {
		if err := c.UpdateChannel(ctx, ch); err != nil {
			return err
		}
	}
	return nil
}

// StartConfigTransaction makes the radio hold config writes until
// CommitConfigTransaction, so it reboots once for a batch.
func (c *Client) StartConfigTransaction(ctx context.Context) error {
	return c.admin(ctx, &pb.AdminMessage{PayloadVariant: &pb.AdminMessage_BeginEditSettings{BeginEditSettings: true}})
}

// CommitConfigTransaction applies the held writes. The radio reboots.
func (c *Client) CommitConfigTransaction(ctx context.Context) error {
	return c.admin(ctx, &pb.AdminMessage{PayloadVariant: &pb.AdminMessage_CommitEditSettings{CommitEditSettings: true}})
}

func (c *Client) admin(ctx context.Context, m *pb.AdminMessage) error {
	b, err := c.codec.Marshal(m)
	if err != nil {
		return err
	}
	_, err = c.SendMeshPacket(ctx, b, pb.PortNum_ADMIN_APP, Local(), PacketOptions{
		WantAck:      true,
		WantResponse: true,
	})
	if err != nil {
		return fmt.Errorf("router: %s: %w", proto.Variant(m), err)
	}
	return nil
}
