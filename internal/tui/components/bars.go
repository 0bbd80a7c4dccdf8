package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/nestegg/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Segment is one part of a ShareBar.
type Segment struct {
	Label string
	Value float64
	Color lipgloss.Color
}

// ShareBar renders a two-part split bar with a percentage legend underneath,
// the terminal stand-in for a donut chart.
func ShareBar(a, b Segment, width int) string {
	t := theme.Active
	if width < 4 {
		width = 4
	}

	total := a.Value + b.Value
	shareA := 0.0
	if total > 0 {
		shareA = a.Value / total
	}
	filled := int(shareA*float64(width) + 0.5)
	filled = max(0, min(filled, width))

	emptyColor := b.Color
	if total <= 0 {
		emptyColor = t.TextDim
	}

	bar := lipgloss.NewStyle().Foreground(a.Color).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(emptyColor).Render(strings.Repeat("█", width-filled))

	legend := func(s Segment, share float64) string {
		return lipgloss.NewStyle().Foreground(s.Color).Render("■ ") +
			lipgloss.NewStyle().Foreground(t.TextMuted).Render(fmt.Sprintf("%s %.1f%%", s.Label, share*100))
	}
	shareB := 0.0
	if total > 0 {
		shareB = 1 - shareA
	}

	return bar + "\n" + legend(a, shareA) + "   " + legend(b, shareB)
}

// GoalBar renders progress toward a savings goal with a bubbles progress bar.
func GoalBar(pct float64, reached bool, width int) string {
	t := theme.Active
	pct = max(0, min(pct, 1))

	fill := t.Accent
	if reached {
		fill = t.Good
	}

	bar := progress.New(
		progress.WithSolidFill(string(fill)),
		progress.WithWidth(max(width-7, 4)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(fill).Bold(true)
	return bar.ViewAs(pct) + " " + pctStyle.Render(fmt.Sprintf("%4.0f%%", pct*100))
}
