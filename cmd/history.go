package cmd

import (
	"fmt"

	"unitlog/internal/cli"
	"unitlog/internal/report"

	"github.com/spf13/cobra"
)

var flagHistoryAll bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Full log with per-day unit totals",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagHistoryAll, "entries", false, "Also list every individual entry")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	entries := loadEntries()
	if len(entries) == 0 {
		fmt.Println("\n  No food logged yet.")
		return nil
	}

	totals := report.DayTotals(entries)

	fmt.Println()
	fmt.Println(cli.RenderTitle("LOG HISTORY"))
	fmt.Println()

	// Units-over-time chart, oldest to newest
	values := make([]float64, len(totals))
	for i, d := range totals {
		values[i] = d.Units
	}
	fmt.Printf("  Units per day: %s\n\n", cli.RenderSparkline(values))

	rows := make([][]string, 0, len(totals))
	for i := len(totals) - 1; i >= 0; i-- {
		d := totals[i]
		rows = append(rows, []string{
			d.Date,
			cli.FormatDayOfWeek(d.Date),
			cli.FormatUnits(d.Units),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Units"},
		Rows:    rows,
	}))

	if flagHistoryAll {
		fmt.Println()
		entryRows := make([][]string, 0, len(entries))
		for _, e := range entries {
			entryRows = append(entryRows, []string{
				e.Date, string(e.Meal), e.Category, e.Food,
				cli.FormatUnits(e.Units), e.Notes,
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Entries",
			Headers: []string{"Date", "Meal", "Category", "Food", "Units", "Notes"},
			Rows:    entryRows,
		}))
	}

	return nil
}
