package store

import (
	"context"
	"sort"
	"sync"
)

// Memory is an in-process store with the same methods as DB. It is used
// when no database path is configured and in tests.
type Memory struct {
	mu       sync.Mutex
	messages []*Message
	nodes    map[uint32]*Node
	nextID   int64
}

func NewMemory() *Memory {
	return &Memory{nodes: make(map[uint32]*Node)}
}

func (m *Memory) InsertMessage(_ context.Context, msg *Message) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	cp := *msg
	cp.ID = m.nextID
	m.messages = append(m.messages, &cp)
	return cp.ID, nil
}

// ListMessages returns up to limit messages, newest first.
func (m *Memory) ListMessages(_ context.Context, limit int) ([]*Message, error) {
	m.mu.Lock()
	sorted := make([]*Message, len(m.messages))
	copy(sorted, m.messages)
	m.mu.Unlock()

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.ReceivedAt.Equal(b.ReceivedAt) {
			return a.ReceivedAt.After(b.ReceivedAt)
		}
		return a.ID > b.ID
	})
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	out := make([]*Message, len(sorted))
	for i, msg := range sorted {
		cp := *msg
		out[i] = &cp
	}
	return out, nil
}

func (m *Memory) UpsertNode(_ context.Context, n *Node) error {
	if n.Num == 0 {
		return errZeroNode
	}
	cp := *n
	cp.ID = NodeID(n.Num)
	m.mu.Lock()
	m.nodes[n.Num] = &cp
	m.mu.Unlock()
	return nil
}

func (m *Memory) GetNode(_ context.Context, num uint32) (*Node, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.nodes[num]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *n
	return &cp, nil
}

// ListNodes returns every node record ordered by node number.
func (m *Memory) ListNodes(_ context.Context) ([]*Node, error) {
	m.mu.Lock()
	out := make([]*Node, 0, len(m.nodes))
	for _, n := range m.nodes {
		cp := *n
		out = append(out, &cp)
	}
	m.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Num < out[j].Num })
	return out, nil
}

func (m *Memory) Close() error { return nil }
