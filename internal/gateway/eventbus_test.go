package gateway

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestEventBusFanOut(t *testing.T) {
	bus := NewEventBus(nil)
	a, unsubA := bus.Subscribe()
	b, unsubB := bus.Subscribe()
	defer unsubB()

	if bus.Len() != 2 {
		t.Fatalf("Len = %d, want 2", bus.Len())
	}
	bus.Publish(Event{Type: EventStatus, Data: "up"})

	for name, ch := range map[string]<-chan Event{"a": a, "b": b} {
		select {
		case e := <-ch:
			if e.Type != EventStatus || e.Timestamp.IsZero() {
				t.Fatalf("%s got %+v", name, e)
			}
		case <-time.After(time.Second):
			t.Fatalf("%s got nothing", name)
		}
	}

	unsubA()
	unsubA()
	if _, ok := <-a; ok {
		t.Fatal("channel open after unsubscribe")
	}
	if bus.Len() != 1 {
		t.Fatalf("Len = %d, want 1", bus.Len())
	}
}

func TestEventBusDropsForSlowSubscriber(t *testing.T) {
	var dropped atomic.Int64
	bus := NewEventBus(func() { dropped.Add(1) })
	ch, unsub := bus.Subscribe()
	defer unsub()

	for i := 0; i < subscriberBuffer+5; i++ {
		bus.Publish(Event{Type: EventLog})
	}
	if got := dropped.Load(); got != 5 {
		t.Fatalf("dropped = %d, want 5", got)
	}
	if len(ch) != subscriberBuffer {
		t.Fatalf("buffered = %d, want %d", len(ch), subscriberBuffer)
	}
}
