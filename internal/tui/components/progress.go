// Package components provides reusable TUI widgets for the unitlog dashboard.
package components

import (
	"fmt"

	"unitlog/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForRatio returns red/orange/accent/green based on how far along a
// category is. Hitting the target is the good state here, so full bars go
// green rather than red.
func ColorForRatio(ratio float64) string {
	t := theme.Active
	switch {
	case ratio >= 1:
		return string(t.Green)
	case ratio >= 0.5:
		return string(t.Accent)
	case ratio > 0:
		return string(t.Orange)
	default:
		return string(t.TextDim)
	}
}

// TargetBar renders a labeled progress bar with a consumed/target caption.
func TargetBar(label, caption string, ratio float64, labelW, barWidth int) string {
	t := theme.Active

	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForRatio(ratio)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	captionStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		" " + bar.ViewAs(ratio) +
		" " + captionStyle.Render(caption)
}
