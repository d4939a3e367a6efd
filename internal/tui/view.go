package tui

import (
	"fmt"
	"strings"

	"unitlog/internal/cli"
	"unitlog/internal/tui/components"
	"unitlog/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const defaultContentWidth = 64

func (a App) View() string {
	t := theme.Active

	if !a.loaded {
		return fmt.Sprintf("\n  %s Reading log...\n", a.spinner.View())
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(a.renderTabBar())
	b.WriteString("\n\n")

	if a.loadErr != nil {
		warn := lipgloss.NewStyle().Foreground(t.Orange)
		b.WriteString(warn.Render("  Log store unavailable, showing nothing logged."))
		b.WriteString("\n\n")
	}

	switch a.activeTab {
	case tabToday:
		b.WriteString(a.renderToday())
	case tabHistory:
		b.WriteString(a.renderHistory())
	case tabLog:
		b.WriteString(a.renderLog())
	}

	b.WriteString("\n")
	b.WriteString(a.renderStatusBar())
	return b.String()
}

func (a App) renderTabBar() string {
	t := theme.Active
	active := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	inactive := lipgloss.NewStyle().Foreground(t.TextMuted)

	parts := make([]string, len(tabNames))
	for i, name := range tabNames {
		label := fmt.Sprintf(" %d %s ", i+1, name)
		if i == a.activeTab {
			parts[i] = active.Render(label)
		} else {
			parts[i] = inactive.Render(label)
		}
	}
	return "  " + strings.Join(parts, lipgloss.NewStyle().Foreground(t.TextDim).Render("│"))
}

func (a App) contentWidth() int {
	w := a.width - 4
	if w <= 0 || w > defaultContentWidth {
		w = defaultContentWidth
	}
	return w
}

func (a App) renderToday() string {
	t := theme.Active
	cw := a.contentWidth()

	var body strings.Builder
	if a.rep.Empty {
		body.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("No food logged for this date yet. Press 3 to log."))
	} else {
		labelW := 0
		for _, cp := range a.rep.Categories {
			if len(cp.Category) > labelW {
				labelW = len(cp.Category)
			}
		}
		barW := components.CardInnerWidth(cw) - labelW - 12
		if barW < 10 {
			barW = 10
		}
		for i, cp := range a.rep.Categories {
			if i > 0 {
				body.WriteString("\n")
			}
			body.WriteString(components.TargetBar(
				cp.Category,
				cli.FormatFraction(cp.Consumed, cp.Target),
				cp.Ratio, labelW, barW,
			))
		}
	}

	title := fmt.Sprintf("Daily Progress  %s (%s)", a.rep.Date, cli.FormatDayOfWeek(a.rep.Date))
	out := "  " + strings.ReplaceAll(components.ContentCard(title, body.String(), cw), "\n", "\n  ")

	// Allowance verdict
	var verdict string
	verdictStyle := lipgloss.NewStyle().Foreground(t.Green)
	switch {
	case a.rep.Empty:
		verdict = "Nothing logged yet."
		verdictStyle = lipgloss.NewStyle().Foreground(t.TextMuted)
	case a.rep.Overage == 0:
		verdict = fmt.Sprintf("Total %s of %s base units. Within base targets.",
			cli.FormatUnits(a.rep.TotalConsumed), cli.FormatUnits(a.rep.BaseTotal))
	case a.rep.WithinAllowance:
		verdict = fmt.Sprintf("Total %s units: %s over base, within your allowance (%s).",
			cli.FormatUnits(a.rep.TotalConsumed), cli.FormatUnits(a.rep.Overage),
			cli.FormatUnits(a.rep.ExtraAllowance))
	default:
		verdict = fmt.Sprintf("Total %s units: %s over base. Allowance is %s.",
			cli.FormatUnits(a.rep.TotalConsumed), cli.FormatUnits(a.rep.Overage),
			cli.FormatUnits(a.rep.ExtraAllowance))
		verdictStyle = lipgloss.NewStyle().Foreground(t.Orange)
	}

	guidance := lipgloss.NewStyle().Foreground(t.TextMuted).Render(a.allowance.Guidance)
	out += "\n  " + strings.ReplaceAll(
		components.ContentCard(a.allowance.Label, verdictStyle.Render(verdict)+"\n"+guidance, cw),
		"\n", "\n  ")

	return out
}

func (a App) renderHistory() string {
	t := theme.Active
	cw := a.contentWidth()

	if len(a.totals) == 0 {
		return "  " + lipgloss.NewStyle().Foreground(t.TextMuted).Render("No history yet.")
	}

	values := make([]float64, len(a.totals))
	for i, d := range a.totals {
		values[i] = d.Units
	}
	chart := components.BarChart(values, components.CardInnerWidth(cw), 8)
	out := "  " + strings.ReplaceAll(components.ContentCard("Units per Day", chart, cw), "\n", "\n  ")

	// Most recent days, newest first
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	var rows strings.Builder
	shown := 0
	for i := len(a.totals) - 1; i >= 0 && shown < 7; i-- {
		d := a.totals[i]
		if shown > 0 {
			rows.WriteString("\n")
		}
		rows.WriteString(mutedStyle.Render(fmt.Sprintf("%s %s  ", d.Date, cli.FormatDayOfWeek(d.Date))))
		rows.WriteString(valueStyle.Render(cli.FormatUnits(d.Units) + " units"))
		shown++
	}
	out += "\n  " + strings.ReplaceAll(components.ContentCard("Recent Days", rows.String(), cw), "\n", "\n  ")

	return out
}

func (a App) renderLog() string {
	if a.form == nil {
		return ""
	}
	cw := a.contentWidth()
	title := fmt.Sprintf("Log Food  %s", a.date)
	return "  " + strings.ReplaceAll(components.ContentCard(title, a.form.View(), cw), "\n", "\n  ")
}

func (a App) renderStatusBar() string {
	t := theme.Active
	help := "1/2/3 tabs · r refresh · q quit"
	if a.activeTab == tabLog {
		help = "enter submit · esc back · ctrl+c quit"
	}

	line := "  " + lipgloss.NewStyle().Foreground(t.TextDim).Render(help)
	if a.status != "" {
		line += "   " + lipgloss.NewStyle().Foreground(t.Accent).Render(a.status)
	}
	return line + "\n"
}
