package components

import (
	"strings"

	"github.com/theirongolddev/nestegg/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar with key hints on the left and
// a status message on the right.
func RenderStatusBar(width int, message string, isErr bool) string {
	t := theme.Active

	left := " [tab]next field  [enter]save  [ctrl+r]reset  [esc]quit"
	msgColor := t.Good
	if isErr {
		msgColor = t.Bad
	}
	right := ""
	if message != "" {
		right = lipgloss.NewStyle().Foreground(msgColor).Render(message + " ")
	}

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right), 0)

	return lipgloss.NewStyle().Foreground(t.TextMuted).Render(left) +
		strings.Repeat(" ", padding) + right
}
