package gateway

import (
	"sync"
	"time"
)

// EventType classifies a mesh event for WebSocket clients.
type EventType string

const (
	EventMessage        EventType = "message"
	EventNodeUpdate     EventType = "node_update"
	EventPositionUpdate EventType = "position_update"
	EventLog            EventType = "log"
	EventStatus         EventType = "status"
)

// Event is the JSON envelope broadcast to WebSocket clients.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

const subscriberBuffer = 64

type subscriber struct {
	ch chan Event
}

// EventBus fans events out to every subscribed WebSocket client.
type EventBus struct {
	mu      sync.RWMutex
	subs    map[*subscriber]struct{}
	dropped func()
}

// NewEventBus constructs a ready EventBus. onDrop, when set, is called for
// every event a slow subscriber missed.
func NewEventBus(onDrop func()) *EventBus {
	return &EventBus{subs: make(map[*subscriber]struct{}), dropped: onDrop}
}

// Subscribe registers a client. The returned function unregisters it and
// closes the channel; it must be called when the client goes away.
func (b *EventBus) Subscribe() (<-chan Event, func()) {
	s := &subscriber{ch: make(chan Event, subscriberBuffer)}
	b.mu.Lock()
	b.subs[s] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	unsub := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, s)
			b.mu.Unlock()
			close(s.ch)
		})
	}
	return s.ch, unsub
}

// Publish sends e to all current subscribers. A subscriber whose buffer is
// full misses the event; history is available over REST.
func (b *EventBus) Publish(e Event) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	for s := range b.subs {
		select {
		case s.ch <- e:
		default:
			if b.dropped != nil {
				b.dropped()
			}
		}
	}
}

// Len returns the current subscriber count.
func (b *EventBus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
