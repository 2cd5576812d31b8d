package notify

import (
	"context"
	"sync"
	"time"

	"github.com/carlosebw/crudify/internal/model"
)

// Hub broadcasts notifications to subscribers. Delivery never blocks the
// caller: a subscriber whose buffer is full misses the message.
type Hub struct {
	mu     sync.RWMutex
	subs   map[uint64]chan model.Notification
	nextID uint64
	buffer int
	now    func() time.Time
}

func NewHub(buffer int) *Hub {
	if buffer < 1 {
		buffer = 1
	}
	return &Hub{
		subs:   make(map[uint64]chan model.Notification),
		buffer: buffer,
		now:    time.Now,
	}
}

// Subscribe registers a subscriber. The returned func unregisters it and
// closes the channel; calling it more than once is safe.
func (h *Hub) Subscribe() (<-chan model.Notification, func()) {
	ch := make(chan model.Notification, h.buffer)

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = ch
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(ch)
		})
	}
}

func (h *Hub) Notify(_ context.Context, severity model.Severity, message string) {
	n := model.Notification{
		Severity: severity,
		Message:  message,
		At:       h.now().UTC(),
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.subs {
		select {
		case ch <- n:
		default:
		}
	}
}

// Subscribers returns the number of active subscribers.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subs)
}
