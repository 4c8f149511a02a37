// Package realtime contains change-stream transport adapters for the
// external store's change-notification feed.
package realtime

import "sync"

// streamSubscription is the handle for one table's change stream.
type streamSubscription struct {
	once   sync.Once
	mu     sync.Mutex
	closed bool
	stop   func()
}

func newStreamSubscription(stop func()) *streamSubscription {
	return &streamSubscription{stop: stop}
}

func (s *streamSubscription) Unsubscribe() error {
	s.once.Do(func() {
		s.stop()

		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
	})

	return nil
}

func (s *streamSubscription) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}
