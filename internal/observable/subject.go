// Package observable provides state holders that replay their latest value
// to new subscribers and push every change to existing ones.
package observable

import "sync"

// Subject holds a value of type T and notifies subscribers when it changes.
// Deliveries are serialized, so a subscriber sees values in the order they
// were published. Callbacks must not call Next or Subscribe on the same
// Subject.
type Subject[T any] struct {
	deliver sync.Mutex

	mu     sync.RWMutex
	value  T
	nextID int
	subs   []subscription[T]
}

type subscription[T any] struct {
	id int
	fn func(T)
}

// New returns a Subject holding initial.
func New[T any](initial T) *Subject[T] {
	return &Subject[T]{value: initial}
}

// Value returns the latest published value.
func (s *Subject[T]) Value() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Next publishes v to every current subscriber.
func (s *Subject[T]) Next(v T) {
	s.deliver.Lock()
	defer s.deliver.Unlock()

	s.mu.Lock()
	s.value = v
	subs := make([]subscription[T], len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(v)
	}
}

// Subscribe registers fn and calls it right away with the latest value.
// The returned function removes the subscription; calling it twice is safe.
func (s *Subject[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	s.deliver.Lock()
	defer s.deliver.Unlock()

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscription[T]{id: id, fn: fn})
	current := s.value
	s.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(id) })
	}
}

// Len returns the number of active subscriptions.
func (s *Subject[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}

func (s *Subject[T]) remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}
