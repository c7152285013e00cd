// Package view binds presentation props to a store and describes the static
// header navigation.
package view

import (
	"github.com/rprtr258/imflux/internal/store"
)

// Source is the part of a store a binding needs.
type Source[S, A any] interface {
	State() S
	Dispatch(A)
	Subscribe(store.Listener[S]) store.Unsubscribe
}

// Binding projects store state and a dispatch function into props of type P.
type Binding[S, A, P any] struct {
	src     Source[S, A]
	project func(S, func(A)) P
}

// Connect binds project to src. project must be pure in S; callbacks it
// builds should only call the dispatch function they were given.
func Connect[S, A, P any](src Source[S, A], project func(S, func(A)) P) *Binding[S, A, P] {
	return &Binding[S, A, P]{src: src, project: project}
}

// Props projects the current state.
func (b *Binding[S, A, P]) Props() P {
	return b.project(b.src.State(), b.src.Dispatch)
}

// Watch calls fn with freshly projected props after every dispatch. Props
// are projected from the store's current state, so after nested dispatches
// the last delivery is never older than the store.
func (b *Binding[S, A, P]) Watch(fn func(P)) store.Unsubscribe {
	return b.src.Subscribe(func(S) {
		fn(b.Props())
	})
}
