package components

import (
	"fmt"
	"strings"

	"unitlog/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// BarChart renders a compact vertical bar chart: one column per value,
// height rows tall, with a labeled peak on the y-axis. Falls back to a
// sparkline row when there is no room for full bars.
func BarChart(values []float64, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	peak := 0.0
	for _, v := range values {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	// Trim to the most recent columns that fit (2 cells per bar).
	maxBars := width / 2
	if maxBars < 1 {
		maxBars = 1
	}
	if len(values) > maxBars {
		values = values[len(values)-maxBars:]
	}

	if height < 3 {
		return sparkRow(values, peak, t)
	}

	yLabel := fmt.Sprintf("%g", peak)
	yLabelW := len(yLabel) + 1

	barStyle := lipgloss.NewStyle().Foreground(t.Accent)
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for row := height; row >= 1; row-- {
		if row == height {
			b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, yLabel)))
		} else {
			b.WriteString(strings.Repeat(" ", yLabelW))
		}
		b.WriteString(axisStyle.Render("│"))
		threshold := peak * (float64(row) - 0.5) / float64(height)
		for _, v := range values {
			if v >= threshold {
				b.WriteString(barStyle.Render("█ "))
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", len(values)*2)))
	return b.String()
}

func sparkRow(values []float64, peak float64, t theme.Theme) string {
	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	style := lipgloss.NewStyle().Foreground(t.Accent)

	var b strings.Builder
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(blocks[idx])
	}
	return style.Render(b.String())
}
