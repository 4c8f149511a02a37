package realtime

import (
	"context"
	"sync"

	"courtside/internal/domain/entity"
	"courtside/internal/domain/service"
)

// MemoryBus is an in-process change stream for development and tests.
// Publish delivers synchronously to every live subscriber of the table.
type MemoryBus struct {
	mu       sync.Mutex
	nextID   int
	handlers map[string]map[int]service.ChangeHandler
	failing  map[string]error
}

// NewMemoryBus creates an empty in-process change bus.
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[string]map[int]service.ChangeHandler),
		failing:  make(map[string]error),
	}
}

// FailSubscribe makes subscription establishment for one table fail,
// simulating a degraded transport.
func (b *MemoryBus) FailSubscribe(table string, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failing[table] = err
}

// Subscribe registers a handler for one table's events.
func (b *MemoryBus) Subscribe(ctx context.Context, table string, handler service.ChangeHandler) (service.Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.failing[table]; err != nil {
		return nil, err
	}

	if b.handlers[table] == nil {
		b.handlers[table] = make(map[int]service.ChangeHandler)
	}

	id := b.nextID
	b.nextID++
	b.handlers[table][id] = handler

	return newStreamSubscription(func() {
		b.mu.Lock()
		delete(b.handlers[table], id)
		b.mu.Unlock()
	}), nil
}

// Publish fans an event out to the table's live subscribers.
func (b *MemoryBus) Publish(event entity.ChangeEvent) {
	b.mu.Lock()
	handlers := make([]service.ChangeHandler, 0, len(b.handlers[event.Table]))
	for _, h := range b.handlers[event.Table] {
		handlers = append(handlers, h)
	}
	b.mu.Unlock()

	for _, h := range handlers {
		h(event)
	}
}
