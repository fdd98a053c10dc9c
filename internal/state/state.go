// Package state keeps the host's view of the mesh: the attached radio's own
// node number, every node it has heard of, its channel table and metadata.
// It is fed from FromRadio envelopes and persists through a Store.
package state

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	goproto "google.golang.org/protobuf/proto"

	"github.com/gg-glitch-88/meshlink/internal/proto"
	pb "github.com/gg-glitch-88/meshlink/internal/proto/meshtasticpb"
	"github.com/gg-glitch-88/meshlink/internal/store"
)

// Store is the persistence the Manager needs. Both store.DB and
// store.Memory satisfy it.
type Store interface {
	InsertMessage(ctx context.Context, msg *store.Message) (int64, error)
	ListMessages(ctx context.Context, limit int) ([]*store.Message, error)
	UpsertNode(ctx context.Context, n *store.Node) error
	ListNodes(ctx context.Context) ([]*store.Node, error)
}

// Manager holds all runtime state. All exported methods are safe for
// concurrent use.
type Manager struct {
	st    Store
	codec *proto.MeshtasticProtobuf
	log   *zap.Logger
	now   func() time.Time

	mu             sync.RWMutex
	myNode         uint32
	nodes          map[uint32]*store.Node // keyed by node number
	channels       map[int32]*pb.Channel
	metadata       *pb.DeviceMetadata
	configSections int
	moduleSections int
}

// New creates a Manager and hydrates the node cache from st. A nil st keeps
// everything in memory.
func New(ctx context.Context, st Store, log *zap.Logger) (*Manager, error) {
	if st == nil {
		st = store.NewMemory()
	}
	if log == nil {
		log = zap.NewNop()
	}
	m := &Manager{
		st:       st,
		codec:    proto.New(),
		log:      log,
		now:      time.Now,
		nodes:    make(map[uint32]*store.Node),
		channels: make(map[int32]*pb.Channel),
	}
	if err := m.loadNodes(ctx); err != nil {
		return nil, fmt.Errorf("state: load nodes: %w", err)
	}
	return m, nil
}

// ── Envelopes ─────────────────────────────────────────────────────────────

// HandleFromRadio applies one envelope. Packets are left to HandleMeshPacket.
func (m *Manager) HandleFromRadio(ctx context.Context, env *pb.FromRadio) error {
	switch v := env.GetPayloadVariant().(type) {
	case *pb.FromRadio_MyInfo:
		if v.MyInfo == nil {
			return nil
		}
		m.mu.Lock()
		m.myNode = v.MyInfo.MyNodeNum
		m.mu.Unlock()
		m.log.Info("state: own node", zap.String("node", store.NodeID(v.MyInfo.MyNodeNum)))
	case *pb.FromRadio_NodeInfo:
		if v.NodeInfo.GetNum() == 0 {
			return nil
		}
		return m.applyNodeInfo(ctx, v.NodeInfo)
	case *pb.FromRadio_Channel:
		if v.Channel == nil {
			return nil
		}
		ch := goproto.Clone(v.Channel).(*pb.Channel)
		m.mu.Lock()
		m.channels[ch.Index] = ch
		m.mu.Unlock()
	case *pb.FromRadio_Metadata:
		m.mu.Lock()
		m.metadata = v.Metadata
		m.mu.Unlock()
	case *pb.FromRadio_Config:
		m.mu.Lock()
		m.configSections++
		m.mu.Unlock()
	case *pb.FromRadio_ModuleConfig:
		m.mu.Lock()
		m.moduleSections++
		m.mu.Unlock()
	case *pb.FromRadio_Rebooted:
		m.log.Info("state: radio rebooted")
	}
	return nil
}

func (m *Manager) applyNodeInfo(ctx context.Context, info *pb.NodeInfo) error {
	m.mu.Lock()
	n := m.nodeLocked(info.Num)
	if u := info.User; u != nil {
		applyUser(n, u)
	}
	if p := info.Position; p != nil {
		applyPosition(n, p)
	}
	n.SNR = info.Snr
	n.HopsAway = info.HopsAway
	n.ViaMQTT = info.ViaMqtt
	if info.LastHeard != 0 {
		n.LastHeard = time.Unix(int64(info.LastHeard), 0).UTC()
	}
	cp := *n
	m.mu.Unlock()

	return m.st.UpsertNode(ctx, &cp)
}

// applyPosition stores p on n. A fix of exactly 0,0 means the sender has no
// position and keeps the coordinates already known.
func applyPosition(n *store.Node, p *pb.Position) {
	if p.LatitudeI == 0 && p.LongitudeI == 0 {
		return
	}
	n.Lat, n.Lon, n.Alt = proto.Degrees(p.LatitudeI), proto.Degrees(p.LongitudeI), p.Altitude
}

func applyUser(n *store.Node, u *pb.User) {
	n.LongName, n.ShortName = u.LongName, u.ShortName
	n.HwModel, n.Role = int32(u.HwModel), int32(u.Role)
}

// ── Mesh packets ──────────────────────────────────────────────────────────

// HandleMeshPacket records a packet heard on the mesh or echoed by the local
// client. The sender is marked as heard; positions and user records update
// the node; text messages and waypoints are stored.
func (m *Manager) HandleMeshPacket(ctx context.Context, p *pb.MeshPacket) error {
	if p.From == 0 {
		return nil
	}
	heard := m.now().UTC()
	if p.RxTime != 0 {
		heard = time.Unix(int64(p.RxTime), 0).UTC()
	}

	m.mu.Lock()
	n := m.nodeLocked(p.From)
	n.LastHeard = heard
	if p.RxSnr != 0 {
		n.SNR = p.RxSnr
	}
	if p.HopStart >= p.HopLimit && p.HopStart > 0 {
		n.HopsAway = p.HopStart - p.HopLimit
	}
	n.ViaMQTT = p.ViaMqtt

	var decodeErr error
	var msg *store.Message
	if d := p.GetDecoded(); d != nil {
		switch d.Portnum {
		case pb.PortNum_POSITION_APP:
			pos := &pb.Position{}
			if err := m.codec.Unmarshal(d.Payload, pos); err != nil {
				decodeErr = fmt.Errorf("state: position from %s: %w", n.ID, err)
				break
			}
			applyPosition(n, pos)
		case pb.PortNum_NODEINFO_APP:
			u := &pb.User{}
			if err := m.codec.Unmarshal(d.Payload, u); err != nil {
				decodeErr = fmt.Errorf("state: user from %s: %w", n.ID, err)
				break
			}
			applyUser(n, u)
		case pb.PortNum_TEXT_MESSAGE_APP, pb.PortNum_WAYPOINT_APP:
			msg = &store.Message{
				PacketID:   p.Id,
				FromNode:   p.From,
				ToNode:     p.To,
				Channel:    p.Channel,
				PortNum:    int32(d.Portnum),
				Payload:    d.Payload,
				RxSNR:      p.RxSnr,
				RxRSSI:     p.RxRssi,
				ReceivedAt: heard,
			}
		}
	}
	cp := *n
	m.mu.Unlock()

	if err := m.st.UpsertNode(ctx, &cp); err != nil {
		return err
	}
	if msg != nil {
		if _, err := m.st.InsertMessage(ctx, msg); err != nil {
			return err
		}
	}
	return decodeErr
}

// SourceNodeID is the attached radio's node number, or 0 before the
// handshake delivered it.
func (m *Manager) SourceNodeID() uint32 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.myNode
}

// ── Queries ───────────────────────────────────────────────────────────────

// GetNode retrieves a copy of the node record for num.
func (m *Manager) GetNode(num uint32) (*store.Node, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n, ok := m.nodes[num]
	if !ok {
		return nil, false
	}
	cp := *n
	return &cp, true
}

// ListNodes returns a snapshot of all known nodes ordered by node number.
func (m *Manager) ListNodes() []*store.Node {
	m.mu.RLock()
	out := make([]*store.Node, 0, len(m.nodes))
	for _, n := range m.nodes {
		cp := *n
		out = append(out, &cp)
	}
	m.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Num < out[j].Num })
	return out
}

func (m *Manager) NodeCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.nodes)
}

// Channels returns copies of the channel table ordered by index. Disabled
// slots are omitted.
func (m *Manager) Channels() []*pb.Channel {
	m.mu.RLock()
	out := make([]*pb.Channel, 0, len(m.channels))
	for _, ch := range m.channels {
		if ch.Role != pb.Channel_DISABLED {
			out = append(out, goproto.Clone(ch).(*pb.Channel))
		}
	}
	m.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// Metadata returns a copy of the radio's device metadata, if it has been
// received.
func (m *Manager) Metadata() (*pb.DeviceMetadata, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.metadata == nil {
		return nil, false
	}
	return goproto.Clone(m.metadata).(*pb.DeviceMetadata), true
}

// ConfigSections reports how many config and module config sections the
// radio has sent.
func (m *Manager) ConfigSections() (config, module int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.configSections, m.moduleSections
}

// RecentMessages returns the n most recent stored messages.
func (m *Manager) RecentMessages(ctx context.Context, n int) ([]*store.Message, error) {
	return m.st.ListMessages(ctx, n)
}

// ── internal ──────────────────────────────────────────────────────────────

// nodeLocked returns the live record for num, creating it. m.mu must be held.
func (m *Manager) nodeLocked(num uint32) *store.Node {
	n, ok := m.nodes[num]
	if !ok {
		n = &store.Node{Num: num, ID: store.NodeID(num)}
		m.nodes[num] = n
	}
	return n
}

func (m *Manager) loadNodes(ctx context.Context) error {
	nodes, err := m.st.ListNodes(ctx)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		if n.ID == "" {
			n.ID = store.NodeID(n.Num)
		}
		m.nodes[n.Num] = n
	}
	return nil
}
