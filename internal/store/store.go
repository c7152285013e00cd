// Package store provides a single-owner state container driven by a pure
// reducer.
//
// State changes only through Dispatch. Each Dispatch runs the reducer
// synchronously, replaces the current state with its result and then calls
// every subscribed listener with the new state before returning:
//
//	st := store.New(counter.Reduce, counter.State{})
//	unsubscribe := st.Subscribe(func(s counter.State) {
//	    fmt.Println("counter is now", s.Counter)
//	})
//	defer unsubscribe()
//	st.Dispatch(action.Increment())
//
// Reductions are serialized, so a single store may be shared by several
// sessions. Listeners run after the store lock is released and may call
// State or Dispatch; listeners of dispatches made concurrently from
// different goroutines may interleave. Reducers must not dispatch.
package store

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Reducer maps the current state and an action to the next state. It must
// not perform I/O or mutate its input in place.
type Reducer[S, A any] func(S, A) S

// Listener is called after every dispatch with the state it produced. When
// listeners dispatch themselves, a later listener may see the nested
// dispatches first; call State for the latest value.
type Listener[S any] func(S)

// Unsubscribe removes a listener. Calling it more than once is harmless.
type Unsubscribe func()

type subscription[S any] struct {
	id     uint64
	fn     Listener[S]
	active atomic.Bool
}

// Store owns a state value of type S and transitions it with actions of type A.
type Store[S, A any] struct {
	mu          sync.RWMutex
	reducer     Reducer[S, A]
	state       S
	subscribers []*subscription[S]
	nextID      uint64

	dispatches atomic.Uint64
	logger     *zap.Logger
}

// Option configures a Store.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger logs every dispatch at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New creates a store seeded with initial. It panics if reducer is nil.
func New[S, A any](reducer Reducer[S, A], initial S, opts ...Option) *Store[S, A] {
	if reducer == nil {
		panic("store: nil reducer")
	}
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[S, A]{
		reducer: reducer,
		state:   initial,
		logger:  o.logger.Named("store"),
	}
}

// State returns the state produced by the most recent completed reduction.
func (s *Store[S, A]) State() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch reduces a into a new state and notifies the listeners that were
// subscribed when the reduction finished, in registration order.
func (s *Store[S, A]) Dispatch(a A) {
	next, active := s.reduce(a)

	n := s.dispatches.Add(1)
	s.logger.Debug("dispatch",
		zap.Any("action", a),
		zap.Uint64("seq", n),
		zap.Int("listeners", len(active)),
	)

	for _, sub := range active {
		// A listener earlier in this round may have removed a later one.
		if sub.active.Load() {
			sub.fn(next)
		}
	}
}

// reduce applies a under the lock and returns the new state with the
// listeners to notify. A panicking reducer leaves the state untouched.
func (s *Store[S, A]) reduce(a A) (S, []*subscription[S]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.reducer(s.state, a)
	s.state = next

	// Drop handles that were unsubscribed since the last round.
	active := make([]*subscription[S], 0, len(s.subscribers))
	for _, sub := range s.subscribers {
		if sub.active.Load() {
			active = append(active, sub)
		}
	}
	s.subscribers = active
	return next, active
}

// Subscribe registers l to be called after every dispatch.
func (s *Store[S, A]) Subscribe(l Listener[S]) Unsubscribe {
	if l == nil {
		return func() {}
	}

	s.mu.Lock()
	s.nextID++
	sub := &subscription[S]{id: s.nextID, fn: l}
	sub.active.Store(true)
	s.subscribers = append(s.subscribers, sub)
	s.mu.Unlock()

	return func() {
		if sub.active.CompareAndSwap(true, false) {
			s.logger.Debug("unsubscribe", zap.Uint64("subscription", sub.id))
		}
	}
}

// ReplaceReducer swaps the reducer used by later dispatches. It panics if
// reducer is nil.
func (s *Store[S, A]) ReplaceReducer(reducer Reducer[S, A]) {
	if reducer == nil {
		panic("store: nil reducer")
	}
	s.mu.Lock()
	s.reducer = reducer
	s.mu.Unlock()
}

// Dispatches returns the number of completed dispatches.
func (s *Store[S, A]) Dispatches() uint64 {
	return s.dispatches.Load()
}

// Listeners returns the number of active subscriptions.
func (s *Store[S, A]) Listeners() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, sub := range s.subscribers {
		if sub.active.Load() {
			n++
		}
	}
	return n
}
