package state

// Reducer computes the next state from the current state and an event.
// Reducers must be pure and total over their event type.
type Reducer[S, E any] func(S, E) S

// Store holds the current state of one component.
type Store[S, E any] struct {
	state  S
	reduce Reducer[S, E]
	subs   []*subscription[S]
}

type subscription[S any] struct {
	fn      func(S)
	removed bool
}

// NewStore returns a store with the given initial state and reducer.
func NewStore[S, E any](initial S, reduce Reducer[S, E]) *Store[S, E] {
	return &Store[S, E]{state: initial, reduce: reduce}
}

// State returns the current state.
func (s *Store[S, E]) State() S { return s.state }

// Send applies event to the current state and notifies subscribers with the
// result. Subscribers run in registration order.
func (s *Store[S, E]) Send(event E) {
	s.state = s.reduce(s.state, event)
	for _, sub := range s.snapshot() {
		if !sub.removed {
			sub.fn(s.state)
		}
	}
}

// SendAll sends each event in order.
func (s *Store[S, E]) SendAll(events ...E) {
	for _, e := range events {
		s.Send(e)
	}
}

// Subscribe registers fn to be called after every Send. The returned
// function removes the subscription; calling it more than once is a no-op.
// A subscription removed while a Send is notifying is not called for the
// rest of that Send, and one added during it first runs on the next Send.
func (s *Store[S, E]) Subscribe(fn func(S)) (unsubscribe func()) {
	sub := &subscription[S]{fn: fn}
	s.subs = append(s.subs, sub)
	return func() {
		sub.removed = true
		for i, x := range s.subs {
			if x == sub {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// snapshot copies the subscriber list so subscribers may unsubscribe while
// being notified.
func (s *Store[S, E]) snapshot() []*subscription[S] {
	if len(s.subs) == 0 {
		return nil
	}
	out := make([]*subscription[S], len(s.subs))
	copy(out, s.subs)
	return out
}

// Fold applies events to initial with reduce and returns the final state.
func Fold[S, E any](initial S, reduce Reducer[S, E], events ...E) S {
	st := initial
	for _, e := range events {
		st = reduce(st, e)
	}
	return st
}
