package publisher

import (
	"URL_Ping_Monitor/internal/ping-monitor/model"
	"URL_Ping_Monitor/internal/ping-monitor/store"
	"context"
	"sync"
)

const (
	EventMessage = "message"
	EventStorage = "storage"
)

// Event is one server-sent event: Name is the SSE event field, Data is JSON encoded by the writer.
type Event struct {
	Name string
	Data any
}

// Hub broadcasts events to in-process subscribers such as open SSE streams.
// A subscriber that does not keep up loses events instead of blocking the sender.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan Event]struct{}
	buffer      int
}

func (h *Hub) Name() string {
	return "hub"
}

func (h *Hub) Send(_ context.Context, msg model.Message) error {
	h.Broadcast(Event{Name: EventMessage, Data: msg})
	return nil
}

// OnStorageChange is registered as a store.Listener so open panels see every document change.
func (h *Hub) OnStorageChange(event store.ChangeEvent) {
	h.Broadcast(Event{Name: EventStorage, Data: event.Changes})
}

func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

// Subscribe returns the event channel and a function that releases it.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, h.buffer)
	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subscribers, ch)
			h.mu.Unlock()
			close(ch)
		})
	}
}

func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = 16
	}
	return &Hub{
		subscribers: make(map[chan Event]struct{}),
		buffer:      buffer,
	}
}
