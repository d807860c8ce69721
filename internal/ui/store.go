package ui

import "sync"

// Store owns the current State and notifies subscribers of every change.
type Store struct {
	mu     sync.Mutex
	state  State
	nextID int
	subs   map[int]func(prev, next State)
	order  []int
}

// NewStore returns a Store in the Idle state.
func NewStore() *Store {
	return &Store{subs: make(map[int]func(prev, next State))}
}

// Current returns the current state.
func (s *Store) Current() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Set replaces the state and notifies subscribers in subscription order.
// Notifications for one Set complete before the next Set is applied.
func (s *Store) Set(next State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.state
	s.state = next
	for _, id := range s.order {
		s.subs[id](prev, next)
	}
}

// Subscribe registers fn and returns a function that removes it.
// fn must not call back into the Store.
func (s *Store) Subscribe(fn func(prev, next State)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.order = append(s.order, id)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[id]; !ok {
			return
		}
		delete(s.subs, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}
