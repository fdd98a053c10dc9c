package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

type backend interface {
	InsertMessage(ctx context.Context, msg *Message) (int64, error)
	ListMessages(ctx context.Context, limit int) ([]*Message, error)
	UpsertNode(ctx context.Context, n *Node) error
	GetNode(ctx context.Context, num uint32) (*Node, error)
	ListNodes(ctx context.Context) ([]*Node, error)
	Close() error
}

func openDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "meshlink.db"))
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func backends() map[string]func(t *testing.T) backend {
	return map[string]func(t *testing.T) backend{
		"memory": func(*testing.T) backend { return NewMemory() },
		"sqlite": func(t *testing.T) backend { return openDB(t) },
	}
}

func TestMessagesNewestFirst(t *testing.T) {
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			ctx := context.Background()
			base := time.Unix(1700000000, 0).UTC()

			for i, text := range []string{"one", "two", "three"} {
				id, err := s.InsertMessage(ctx, &Message{
					PacketID:   uint32(10 + i),
					FromNode:   0xa,
					ToNode:     0xffffffff,
					PortNum:    1,
					Payload:    []byte(text),
					RxSNR:      5.5,
					ReceivedAt: base.Add(time.Duration(i) * time.Second),
				})
				if err != nil {
					t.Fatalf("InsertMessage: %v", err)
				}
				if id <= 0 {
					t.Fatalf("id = %d", id)
				}
			}

			got, err := s.ListMessages(ctx, 2)
			if err != nil {
				t.Fatalf("ListMessages: %v", err)
			}
			if len(got) != 2 {
				t.Fatalf("got %d messages, want 2", len(got))
			}
			if string(got[0].Payload) != "three" || string(got[1].Payload) != "two" {
				t.Fatalf("order = %q, %q", got[0].Payload, got[1].Payload)
			}
			if got[0].PacketID != 12 || got[0].ToNode != 0xffffffff || got[0].RxSNR != 5.5 {
				t.Fatalf("message = %+v", got[0])
			}
			if !got[0].ReceivedAt.Equal(base.Add(2 * time.Second)) {
				t.Fatalf("received_at = %v", got[0].ReceivedAt)
			}
		})
	}
}

func TestEmptyPayload(t *testing.T) {
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			if _, err := s.InsertMessage(context.Background(), &Message{PacketID: 1, ReceivedAt: time.Now()}); err != nil {
				t.Fatalf("InsertMessage: %v", err)
			}
		})
	}
}

func TestNodeUpsert(t *testing.T) {
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			ctx := context.Background()
			seen := time.Unix(1700000100, 0).UTC()

			if err := s.UpsertNode(ctx, &Node{Num: 0x20, LongName: "Hill", LastHeard: seen}); err != nil {
				t.Fatalf("UpsertNode: %v", err)
			}
			if err := s.UpsertNode(ctx, &Node{Num: 0x10, LongName: "Base", ShortName: "BS", Lat: 60.17, Lon: 24.94, LastHeard: seen}); err != nil {
				t.Fatalf("UpsertNode: %v", err)
			}
			if err := s.UpsertNode(ctx, &Node{Num: 0x20, LongName: "Hilltop", HopsAway: 2, LastHeard: seen}); err != nil {
				t.Fatalf("UpsertNode: %v", err)
			}

			nodes, err := s.ListNodes(ctx)
			if err != nil {
				t.Fatalf("ListNodes: %v", err)
			}
			if len(nodes) != 2 {
				t.Fatalf("got %d nodes, want 2", len(nodes))
			}
			if nodes[0].Num != 0x10 || nodes[0].ID != "!00000010" || nodes[0].Lat != 60.17 {
				t.Fatalf("first = %+v", nodes[0])
			}
			if nodes[1].LongName != "Hilltop" || nodes[1].HopsAway != 2 {
				t.Fatalf("second = %+v", nodes[1])
			}

			n, err := s.GetNode(ctx, 0x10)
			if err != nil {
				t.Fatalf("GetNode: %v", err)
			}
			if n.ShortName != "BS" || !n.LastHeard.Equal(seen) {
				t.Fatalf("node = %+v", n)
			}
			if _, err := s.GetNode(ctx, 0x99); !errors.Is(err, ErrNotFound) {
				t.Fatalf("missing node err = %v", err)
			}
		})
	}
}

func TestZeroNodeRejected(t *testing.T) {
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			if err := open(t).UpsertNode(context.Background(), &Node{}); err == nil {
				t.Fatal("node 0 accepted")
			}
		})
	}
}

func TestMemoryReturnsCopies(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	n := &Node{Num: 1, LongName: "a"}
	if err := m.UpsertNode(ctx, n); err != nil {
		t.Fatal(err)
	}
	n.LongName = "mutated"
	got, _ := m.GetNode(ctx, 1)
	if got.LongName != "a" {
		t.Fatal("store aliased caller's node")
	}
	got.LongName = "again"
	again, _ := m.GetNode(ctx, 1)
	if again.LongName != "a" {
		t.Fatal("store returned internal pointer")
	}
}

func TestNodeID(t *testing.T) {
	if got := NodeID(0xdeadbeef); got != "!deadbeef" {
		t.Fatalf("NodeID = %q", got)
	}
	if got := NodeID(1); got != "!00000001" {
		t.Fatalf("NodeID = %q", got)
	}
}
