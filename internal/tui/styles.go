package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles of the terminal view.
type Styles struct {
	Header  lipgloss.Style
	Logo    lipgloss.Style
	Item    lipgloss.Style
	Counter lipgloss.Style
	Button  lipgloss.Style
	Help    lipgloss.Style
}

// DefaultStyles mirrors the dark horizontal menu of the browser header.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Background(lipgloss.Color("#001529")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1),
		Logo: lipgloss.NewStyle().
			Bold(true).
			MarginRight(4),
		Item: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6ADB4")).
			PaddingLeft(2),
		Counter: lipgloss.NewStyle().
			Bold(true).
			Padding(1, 2),
		Button: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			MarginTop(1),
	}
}

// icons maps header icon names to terminal glyphs.
var icons = map[string]string{
	"github":        "◆",
	"info-circle-o": "ⓘ",
	"user":          "☺",
	"coffee":        "☕",
	"global":        "◎",
}
