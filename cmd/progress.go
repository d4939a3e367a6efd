package cmd

import (
	"fmt"

	"unitlog/internal/cli"
	"unitlog/internal/report"

	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Daily progress against category targets",
	RunE:  runProgress,
}

func init() {
	rootCmd.AddCommand(progressCmd)
}

func runProgress(_ *cobra.Command, _ []string) error {
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

	entries := loadEntries()
	rep := report.Evaluate(entries, date, tax.BaseTargets(), allowance.ExtraUnits)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DAILY PROGRESS  %s (%s)", rep.Date, cli.FormatDayOfWeek(rep.Date))))
	fmt.Println()
	fmt.Printf("  %s\n\n", cli.Muted(allowance.Guidance))

	if rep.Empty {
		fmt.Println("  No food logged for this date yet.")
		fmt.Println("  Use `unitlog log` to add your first entry.")
		fmt.Println()
		return nil
	}

	labelW := 0
	for _, cp := range rep.Categories {
		if len(cp.Category) > labelW {
			labelW = len(cp.Category)
		}
	}
	for _, cp := range rep.Categories {
		fmt.Printf("  %-*s  %s  %s  %s\n",
			labelW, cp.Category,
			cli.RenderProgressBar(cp.Ratio, 24),
			cli.FormatFraction(cp.Consumed, cp.Target),
			cli.Muted(cli.FormatPercent(cp.Ratio)),
		)
	}
	fmt.Println()

	fmt.Printf("  Total units today: %s (base %s)\n",
		cli.FormatUnits(rep.TotalConsumed), cli.FormatUnits(rep.BaseTotal))

	switch {
	case rep.Overage == 0:
		fmt.Printf("  %s\n", cli.Success("Within base targets."))
	case rep.WithinAllowance:
		fmt.Printf("  %s\n", cli.Success(fmt.Sprintf(
			"You are %s units over base, which fits within your level allowance (%s).",
			cli.FormatUnits(rep.Overage), cli.FormatUnits(rep.ExtraAllowance))))
	default:
		fmt.Printf("  %s\n", cli.Warn(fmt.Sprintf(
			"You are %s units over base. (Level allowance is %s.)",
			cli.FormatUnits(rep.Overage), cli.FormatUnits(rep.ExtraAllowance))))
	}
	fmt.Println()

	return nil
}
