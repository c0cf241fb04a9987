package cli

import (
	"strings"
	"testing"

	"github.com/theirongolddev/savealloc/internal/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_Layout(t *testing.T) {
	out := RenderTable(Table{
		Title:   "Goals",
		Headers: []string{"Goal", "Target"},
		Rows: [][]string{
			{"Vacation", "$1,000.00"},
			{"---"},
			{"Car", "$5.00"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// title, top, header, header sep, row, sep, row, bottom
	require.Len(t, lines, 8, out)
	assert.Contains(t, out, "Vacation")
	assert.Contains(t, out, "$1,000.00")
	assert.Contains(t, lines[5], "┼", "separator row renders as a rule")

	// Every bordered line has the same visible width.
	w := lipgloss.Width(lines[1])
	for i, l := range lines[1:] {
		assert.Equal(t, w, lipgloss.Width(l), "line %d: %q", i+1, l)
	}
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(Table{}))
}

func TestRenderTitle(t *testing.T) {
	out := RenderTitle("SAVINGS GOALS")

	assert.Contains(t, out, "SAVINGS GOALS")
	assert.Len(t, strings.Split(out, "\n"), 3, "rounded box is three lines tall")
}

func TestColorForProgress(t *testing.T) {
	th := theme.Active
	tests := []struct {
		pct  float64
		want lipgloss.Color
	}{
		{0, th.Red},
		{0.3, th.Orange},
		{0.75, th.Yellow},
		{1, th.Green},
		{2.5, th.Green},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ColorForProgress(tt.pct), "pct %.2f", tt.pct)
	}
}

func TestRenderProgressBar_Width(t *testing.T) {
	for _, pct := range []float64{-1, 0, 0.5, 1, 3} {
		assert.Equal(t, 20, lipgloss.Width(RenderProgressBar(pct, 20)), "pct %.1f", pct)
	}
}
