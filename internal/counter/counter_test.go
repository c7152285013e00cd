package counter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rprtr258/imflux/internal/action"
)

func TestReduceIncrement(t *testing.T) {
	for _, n := range []int{-3, 0, 1, 41} {
		got := Reduce(State{Counter: n}, action.Increment())
		assert.Equal(t, State{Counter: n + 1}, got)
	}
}

func TestReduceIgnoresUnrecognizedActions(t *testing.T) {
	s := State{Counter: 5}
	unrecognized := []action.Action{
		action.Unknown{Type: "RESET"},
		action.Unknown{},
		action.UpdateExpandedKeys([]string{"a"}),
		action.UpdateCheckedKeys(nil),
		action.ChangeSearchContent("btn"),
		action.FilterTree("Button"),
		nil,
	}
	for _, a := range unrecognized {
		assert.Equal(t, s, Reduce(s, a), "action %#v", a)
	}
}

func TestIncrementIsNotIdempotent(t *testing.T) {
	st := NewStore(0)
	st.Dispatch(action.Increment())
	st.Dispatch(action.Increment())

	assert.Equal(t, State{Counter: 2}, st.State())
}

func TestThreeIncrements(t *testing.T) {
	st := NewStore(0)
	for i := 0; i < 3; i++ {
		st.Dispatch(action.Increment())
	}

	assert.Equal(t, State{Counter: 3}, st.State())
}

func TestUnknownActionLeavesStore(t *testing.T) {
	st := NewStore(5)
	a, err := action.Decode([]byte(`{"type":"RESET"}`))
	require.NoError(t, err)

	st.Dispatch(a)

	assert.Equal(t, State{Counter: 5}, st.State())
}

func TestListenerCalledOnceAfterUpdate(t *testing.T) {
	st := NewStore(0)
	var seen []State
	st.Subscribe(func(s State) {
		seen = append(seen, st.State())
	})

	st.Dispatch(action.Increment())

	assert.Equal(t, []State{{Counter: 1}}, seen)
}
