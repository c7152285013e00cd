// Package tui renders the counter view in a terminal with bubbletea.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/rprtr258/imflux/internal/view"
)

// StateMsg reports that the store changed outside of this model's own key
// handling, e.g. from a browser session sharing the store.
type StateMsg struct {
	Counter int
}

type keyMap struct {
	Increment key.Binding
	Quit      key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increment, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Increment: key.NewBinding(
			key.WithKeys("+", "enter", " "),
			key.WithHelp("+/enter", "add"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is the counter view bound to a store.
type Model struct {
	binding *view.CounterBinding
	header  view.Header
	props   view.CounterProps

	keys   keyMap
	help   help.Model
	styles Styles
	width  int

	changes <-chan struct{}
	done    <-chan struct{}
}

// NewModel creates a model over binding. It does not subscribe to the
// store; Run does.
func NewModel(binding *view.CounterBinding, header view.Header) Model {
	return Model{
		binding: binding,
		header:  header,
		props:   binding.Props(),
		keys:    defaultKeyMap(),
		help:    help.New(),
		styles:  DefaultStyles(),
	}
}

// Counter returns the value currently displayed.
func (m Model) Counter() int {
	return m.props.Counter
}

func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	changes, done, binding := m.changes, m.done, m.binding
	return func() tea.Msg {
		select {
		case <-changes:
			return StateMsg{Counter: binding.Props().Counter}
		case <-done:
			return nil
		}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Increment):
			m.props.OnIncrement()
			m.props = m.binding.Props()
		}
	case StateMsg:
		m.props = m.binding.Props()
		return m, m.waitForChange()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(m.styles.Counter.Render(strconv.Itoa(m.props.Counter)))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Button.Render("Add"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render(m.help.View(m.keys)))
	return sb.String()
}

func (m Model) renderHeader() string {
	items := make([]string, 0, len(m.header.Items))
	for _, item := range m.header.Items {
		label := item.Label
		if icon, ok := icons[item.Icon]; ok {
			label = icon + " " + label
		}
		items = append(items, m.styles.Item.Render(label))
	}
	menu := lipgloss.JoinHorizontal(lipgloss.Top, items...)

	left := ""
	if m.header.Logo != "" {
		left = m.styles.Logo.Render(m.header.Logo)
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, left, menu)
	if m.header.Align == "end" && m.width > 0 {
		gap := m.width - lipgloss.Width(left) - lipgloss.Width(menu) - m.styles.Header.GetHorizontalFrameSize()
		if gap > 0 {
			row = lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), menu)
		}
	}
	return m.styles.Header.Render(row)
}

// Run shows the model until the user quits or ctx is done. Dispatches made
// elsewhere on the same store are reflected while it runs.
func Run(ctx context.Context, binding *view.CounterBinding, header view.Header, logger *zap.Logger, opts ...tea.ProgramOption) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	changes := make(chan struct{}, 1)
	done := make(chan struct{})
	defer close(done)

	unwatch := binding.Watch(func(view.CounterProps) {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	defer unwatch()

	m := NewModel(binding, header)
	m.changes, m.done = changes, done

	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run terminal view: %w", err)
	}
	if fm, ok := final.(Model); ok {
		logger.Debug("terminal view closed", zap.Int("counter", fm.Counter()))
	}
	return nil
}
