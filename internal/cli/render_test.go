package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_AlignsMultibyteCells(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Concept", "Amount"},
		Rows: [][]string{
			{"Final capital", "1,000.00 €"},
			Separator,
			{"Interest", "5.00 €"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 7)

	width := lipgloss.Width(lines[0])
	for i, l := range lines {
		assert.Equal(t, width, lipgloss.Width(l), "line %d: %q", i, l)
	}
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(Table{}))
}

func TestRenderSparkline(t *testing.T) {
	assert.Equal(t, "", RenderSparkline(nil))
	assert.Equal(t, "▁▄█", RenderSparkline([]float64{0, 50, 100}))
	assert.Equal(t, "▁▁", RenderSparkline([]float64{0, 0}))
}

func TestRenderShareBar_Width(t *testing.T) {
	out := RenderShareBar("Principal", 30, ColorPrincipal, "Interest", 10, ColorInterest, 20)
	parts := strings.Split(out, "\n")
	require.Len(t, parts, 2)
	assert.Equal(t, 20, lipgloss.Width(parts[0]))
	assert.Contains(t, parts[1], "75.0%")
	assert.Contains(t, parts[1], "25.0%")
}
