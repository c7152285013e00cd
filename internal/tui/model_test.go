package tui

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rprtr258/imflux/internal/action"
	"github.com/rprtr258/imflux/internal/counter"
	"github.com/rprtr258/imflux/internal/view"
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestIncrementKey(t *testing.T) {
	st := counter.NewStore(0)
	m := NewModel(view.ConnectCounter(st), view.AppHeader())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 2, m.Counter())
	assert.Equal(t, counter.State{Counter: 2}, st.State())
	assert.Contains(t, m.View(), "2")
}

func TestQuitKey(t *testing.T) {
	m := NewModel(view.ConnectCounter(counter.NewStore(0)), view.AppHeader())

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := update(t, m, msg)
		require.NotNil(t, cmd, msg.String())
		assert.IsType(t, tea.QuitMsg{}, cmd(), msg.String())
	}
}

func TestStateMsgRefreshesFromStore(t *testing.T) {
	st := counter.NewStore(0)
	m := NewModel(view.ConnectCounter(st), view.ClassicHeader())

	st.Dispatch(action.Increment())
	assert.Equal(t, 0, m.Counter())

	m, cmd := update(t, m, StateMsg{Counter: 1})
	assert.Equal(t, 1, m.Counter())
	assert.Nil(t, cmd)
}

func TestOtherKeysIgnored(t *testing.T) {
	st := counter.NewStore(4)
	m := NewModel(view.ConnectCounter(st), view.AppHeader())

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'x'}},
		{Type: tea.KeyEsc},
	} {
		var cmd tea.Cmd
		m, cmd = update(t, m, msg)
		assert.Nil(t, cmd, msg.String())
	}
	assert.Equal(t, 4, m.Counter())
	assert.Equal(t, uint64(0), st.Dispatches())
}

func TestViewRendersHeader(t *testing.T) {
	m := NewModel(view.ConnectCounter(counter.NewStore(0)), view.AppHeader())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 160, Height: 20})

	out := m.View()
	assert.Contains(t, out, "REACT MAKER")
	assert.Contains(t, out, "English")
	assert.Contains(t, out, "Add")
	assert.Contains(t, out, "quit")

	classic := NewModel(view.ConnectCounter(counter.NewStore(0)), view.ClassicHeader()).View()
	assert.NotContains(t, classic, "REACT MAKER")
	assert.Less(t, strings.Index(classic, "关于我"), strings.Index(classic, "意见和建议"))
}

func TestWaitForChange(t *testing.T) {
	st := counter.NewStore(0)
	changes := make(chan struct{}, 1)
	done := make(chan struct{})

	m := NewModel(view.ConnectCounter(st), view.AppHeader())
	m.changes, m.done = changes, done

	st.Dispatch(action.Increment())
	changes <- struct{}{}
	assert.Equal(t, StateMsg{Counter: 1}, m.Init()())

	close(done)
	assert.Nil(t, m.waitForChange()())
}

func TestRunFollowsStoreUntilCancelled(t *testing.T) {
	st := counter.NewStore(0)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- Run(ctx, view.ConnectCounter(st), view.AppHeader(), nil,
			tea.WithInput(nil),
			tea.WithOutput(io.Discard),
			tea.WithoutSignalHandler(),
		)
	}()

	require.Eventually(t, func() bool { return st.Listeners() == 1 }, 5*time.Second, 10*time.Millisecond)
	st.Dispatch(action.Increment())
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Equal(t, 0, st.Listeners())
}
