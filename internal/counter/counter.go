// Package counter holds the sample application's state and its reducer.
package counter

import (
	"github.com/rprtr258/imflux/internal/action"
	"github.com/rprtr258/imflux/internal/store"
)

// State is the whole application state: a single counter.
type State struct {
	Counter int `json:"counter"`
}

// Store is a store holding counter state.
type Store = store.Store[State, action.Action]

// Reduce is the counter reducer. Only Increment changes state; every other
// action, including ones decoded from unknown kinds, returns s unchanged.
func Reduce(s State, a action.Action) State {
	switch a.(type) {
	case action.IncrementAction:
		return State{Counter: s.Counter + 1}
	default:
		return s
	}
}

// NewStore creates a counter store starting at initial.
func NewStore(initial int, opts ...store.Option) *Store {
	return store.New(Reduce, State{Counter: initial}, opts...)
}
