// Package identity contains the identity provider adapters. They are the
// only code that talks to the external provider.
package identity

import (
	"sync"

	"courtside/internal/domain/entity"
	"courtside/internal/domain/service"
)

// changeSubscription is the handle returned by OnChange. Unsubscribing
// removes the handler from the provider's registry.
type changeSubscription struct {
	once   sync.Once
	closed bool
	mu     sync.Mutex
	remove func()
}

func newChangeSubscription(remove func()) *changeSubscription {
	return &changeSubscription{remove: remove}
}

func (s *changeSubscription) Unsubscribe() error {
	s.once.Do(func() {
		s.remove()

		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
	})

	return nil
}

func (s *changeSubscription) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}

// handlerRegistry is the shared OnChange fan-out used by every provider
// implementation. Registration and notification are safe for concurrent use.
type handlerRegistry struct {
	mu       sync.Mutex
	nextID   int
	handlers map[int]service.SessionHandler
}

func newHandlerRegistry() *handlerRegistry {
	return &handlerRegistry{handlers: make(map[int]service.SessionHandler)}
}

func (r *handlerRegistry) add(handler service.SessionHandler) service.Subscription {
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.handlers[id] = handler
	r.mu.Unlock()

	return newChangeSubscription(func() {
		r.mu.Lock()
		delete(r.handlers, id)
		r.mu.Unlock()
	})
}

// notify fans a new session (or nil on sign-out) out to every registered
// handler. Sessions are replaced wholesale and never mutated, so handing the
// same pointer to every handler is safe.
func (r *handlerRegistry) notify(session *entity.Session) {
	r.mu.Lock()
	handlers := make([]service.SessionHandler, 0, len(r.handlers))
	for _, h := range r.handlers {
		handlers = append(handlers, h)
	}
	r.mu.Unlock()

	for _, h := range handlers {
		h(session)
	}
}
