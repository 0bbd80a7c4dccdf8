package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/nestegg/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/floats"
)

// BalanceBars renders one horizontal bar per row, split into a contributed part
// and an interest part. labels, contributed and interest must have equal length.
// When there are more rows than maxRows, rows are sampled evenly and the last
// row is always kept.
func BalanceBars(labels []string, contributed, interest []float64, width, maxRows int) string {
	n := len(labels)
	if n == 0 || len(contributed) != n || len(interest) != n {
		return ""
	}
	t := theme.Active

	totals := make([]float64, n)
	floats.Add(totals, contributed)
	floats.Add(totals, interest)
	peak := floats.Max(totals)
	if peak <= 0 {
		peak = 1
	}

	labelW := 0
	for _, l := range labels {
		labelW = max(labelW, lipgloss.Width(l))
	}
	barW := max(width-labelW-1, 4)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	contribStyle := lipgloss.NewStyle().Foreground(t.Principal)
	interestStyle := lipgloss.NewStyle().Foreground(t.Interest)

	var b strings.Builder
	for _, i := range sampleRows(n, maxRows) {
		c := int(contributed[i] / peak * float64(barW))
		in := int(totals[i]/peak*float64(barW)) - c
		c = max(0, min(c, barW))
		in = max(0, min(in, barW-c))

		b.WriteString(labelStyle.Render(fmt.Sprintf("%*s ", labelW, labels[i])))
		b.WriteString(contribStyle.Render(strings.Repeat("█", c)))
		b.WriteString(interestStyle.Render(strings.Repeat("█", in)))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// sampleRows picks at most maxRows evenly spaced indexes from [0, n), always
// including the last one.
func sampleRows(n, maxRows int) []int {
	if maxRows <= 0 || n <= maxRows {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	idx := make([]int, 0, maxRows)
	for k := 1; k <= maxRows; k++ {
		idx = append(idx, k*n/maxRows-1)
	}
	return idx
}
