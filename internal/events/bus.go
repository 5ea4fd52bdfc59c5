package events

import (
	"sync"
	"time"
)

// Handler processes a single event. Handlers must not block for long;
// the bus dispatches on a single goroutine to preserve ordering.
type Handler func(Event)

// Bus provides event distribution across components.
// Emit is safe for concurrent use from independent reviewer tasks.
type Bus struct {
	events chan Event

	mu       sync.RWMutex
	handlers []Handler

	done chan struct{}
}

// NewBus creates a new event bus with the specified buffer capacity
func NewBus(capacity int) *Bus {
	b := &Bus{
		events: make(chan Event, capacity),
		done:   make(chan struct{}),
	}

	go b.dispatch()

	return b
}

// Subscribe registers a handler for all events
func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

// Emit stamps the event with the current time and queues it for dispatch.
// Blocks if the buffer is full rather than dropping events.
func (b *Bus) Emit(e Event) {
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	b.events <- e
}

// Close shuts down the event bus after draining queued events
func (b *Bus) Close() error {
	close(b.events)
	<-b.done
	return nil
}

// dispatch delivers events to handlers in emit order
func (b *Bus) dispatch() {
	defer close(b.done)

	for e := range b.events {
		b.mu.RLock()
		handlers := make([]Handler, len(b.handlers))
		copy(handlers, b.handlers)
		b.mu.RUnlock()

		for _, h := range handlers {
			h(e)
		}
	}
}
