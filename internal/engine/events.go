package engine

import (
	"log/slog"
	"sync"

	"tierlist/internal/models"
)

// Event is the closed set of engine notifications. Exactly three variants
// exist: Created, Updated, and Deleted.
type Event interface {
	event()
}

// Created is emitted after a new document is persisted.
type Created struct {
	Document *models.TierList
}

// Updated is emitted after an existing document is persisted.
type Updated struct {
	Document *models.TierList
}

// Deleted is emitted after a document is removed.
type Deleted struct {
	ID string
}

func (Created) event() {}
func (Updated) event() {}
func (Deleted) event() {}

// Handler receives engine events.
type Handler func(Event)

type subscription struct {
	id      int
	handler Handler
}

// hub fans events out to subscribers synchronously, in registration
// order. A panicking handler is recovered and logged so it cannot block
// later handlers or the caller.
type hub struct {
	mu     sync.Mutex
	nextID int
	subs   []subscription
}

func (h *hub) subscribe(handler Handler) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	id := h.nextID
	h.subs = append(h.subs, subscription{id: id, handler: handler})
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		for i, sub := range h.subs {
			if sub.id == id {
				h.subs = append(h.subs[:i], h.subs[i+1:]...)
				return
			}
		}
	}
}

func (h *hub) emit(event Event) {
	h.mu.Lock()
	subs := make([]subscription, len(h.subs))
	copy(subs, h.subs)
	h.mu.Unlock()

	for _, sub := range subs {
		deliver(sub.handler, event)
	}
}

func deliver(handler Handler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("event handler panicked", "event", eventName(event), "panic", r)
		}
	}()
	handler(event)
}

func eventName(event Event) string {
	switch event.(type) {
	case Created:
		return "created"
	case Updated:
		return "updated"
	case Deleted:
		return "deleted"
	default:
		return "unknown"
	}
}
