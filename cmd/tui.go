package cmd

import (
	"fmt"

	"unitlog/internal/config"
	"unitlog/internal/tui"
	"unitlog/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor so all styling produces ANSI codes.
	lipgloss.SetColorProfile(termenv.TrueColor)

	date, err := targetDate()
	if err != nil {
		return err
	}
	allowance, err := resolveAllowance()
	if err != nil {
		return err
	}
	tax, err := loadTaxonomy()
	if err != nil {
		return err
	}

	s := openStore()
	defer func() { _ = s.Close() }()

	app := tui.NewApp(s, tax, allowance, date)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
