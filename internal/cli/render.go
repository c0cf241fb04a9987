package cli

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/savealloc/internal/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	t := theme.Active
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary).Render(title))
}

// RenderTable renders a bordered table with headers and rows.
// A row holding the single cell "---" renders as a separator.
func RenderTable(tbl Table) string {
	if len(tbl.Rows) == 0 && len(tbl.Headers) == 0 {
		return ""
	}

	t := theme.Active
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	widths := columnWidths(tbl)

	rule := func(left, mid, right string) string {
		var b strings.Builder
		b.WriteString(left)
		for i, w := range widths {
			b.WriteString(strings.Repeat("─", w+2))
			if i < len(widths)-1 {
				b.WriteString(mid)
			}
		}
		b.WriteString(right)
		return dimStyle.Render(b.String()) + "\n"
	}

	row := func(cells []string, style lipgloss.Style, alignNumbers bool) string {
		var b strings.Builder
		b.WriteString(dimStyle.Render("│"))
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			// Right-align value columns, keep the label column left-aligned.
			padded := fmt.Sprintf(" %-*s ", w, cell)
			if alignNumbers && i > 0 {
				padded = fmt.Sprintf(" %*s ", w, cell)
			}
			b.WriteString(style.Render(padded))
			b.WriteString(dimStyle.Render("│"))
		}
		return b.String() + "\n"
	}

	var b strings.Builder
	if tbl.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(tbl.Title))
		b.WriteString("\n")
	}

	b.WriteString(rule("╭", "┬", "╮"))
	if len(tbl.Headers) > 0 {
		b.WriteString(row(tbl.Headers, headerStyle, false))
		b.WriteString(rule("├", "┼", "┤"))
	}
	for _, r := range tbl.Rows {
		if len(r) == 1 && r[0] == "---" {
			b.WriteString(rule("├", "┼", "┤"))
			continue
		}
		b.WriteString(row(r, valueStyle, true))
	}
	b.WriteString(rule("╰", "┴", "╯"))

	return b.String()
}

func columnWidths(tbl Table) []int {
	numCols := len(tbl.Headers)
	if numCols == 0 && len(tbl.Rows) > 0 {
		numCols = len(tbl.Rows[0])
	}

	widths := make([]int, numCols)
	for i, h := range tbl.Headers {
		widths[i] = max(widths[i], lipgloss.Width(h))
	}
	for _, r := range tbl.Rows {
		for i, cell := range r {
			if i < numCols {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}
	return widths
}

// ColorForProgress returns red/orange/yellow/green as a goal fills up.
func ColorForProgress(pct float64) lipgloss.Color {
	t := theme.Active
	switch {
	case pct >= 1:
		return t.Green
	case pct >= 0.5:
		return t.Yellow
	case pct >= 0.25:
		return t.Orange
	default:
		return t.Red
	}
}

// RenderProgressBar renders a goal progress bar. pct is a 0-1 ratio and is
// clamped for drawing only; the caller prints the real percentage.
func RenderProgressBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	color := ColorForProgress(pct)
	if pct > 1 {
		pct = 1
	}

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(theme.Active.TextDim)
	return bar.ViewAs(pct)
}
