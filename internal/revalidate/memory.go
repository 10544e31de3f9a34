package revalidate

import (
	"context"
	"sync"
)

// MemorySignal is an in-process Signal for single-process consumers and
// tests. Registered listeners are notified synchronously on Invalidate.
type MemorySignal struct {
	mu        sync.Mutex
	listeners []func()
	count     int
}

var _ Signal = &MemorySignal{}

func NewMemorySignal() *MemorySignal {
	return &MemorySignal{}
}

// Listen registers a callback invoked on every Invalidate.
func (s *MemorySignal) Listen(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *MemorySignal) Invalidate(ctx context.Context) error {
	s.mu.Lock()
	s.count++
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}

	return nil
}

// Count returns how many invalidations have been emitted.
func (s *MemorySignal) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}
