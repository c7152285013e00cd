package view

import (
	"github.com/rprtr258/imflux/internal/action"
	"github.com/rprtr258/imflux/internal/counter"
)

// CounterProps is what the counter view renders from.
type CounterProps struct {
	Counter     int
	OnIncrement func()
}

// CounterBinding is the counter view connected to a counter store.
type CounterBinding = Binding[counter.State, action.Action, CounterProps]

func counterProps(s counter.State, dispatch func(action.Action)) CounterProps {
	return CounterProps{
		Counter: s.Counter,
		OnIncrement: func() {
			dispatch(action.Increment())
		},
	}
}

// ConnectCounter binds the counter view to st.
func ConnectCounter(st Source[counter.State, action.Action]) *CounterBinding {
	return Connect(st, counterProps)
}
