package cmd

import (
	"fmt"

	"unitlog/internal/cli"
	"unitlog/internal/plan"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the program levels and their allowances",
	RunE:  runLevels,
}

func init() {
	rootCmd.AddCommand(levelsCmd)
}

func runLevels(_ *cobra.Command, _ []string) error {
	fmt.Println()
	fmt.Println(cli.RenderTitle("PROGRAM LEVELS"))
	fmt.Println()

	rows := make([][]string, 0, len(plan.Levels))
	for _, level := range plan.Levels {
		a, err := plan.AllowanceFor(level)
		if err != nil {
			return err
		}
		rows = append(rows, []string{
			string(level),
			a.Label,
			"+" + cli.FormatUnits(a.ExtraUnits),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Level", "Name", "Extra Units"},
		Rows:    rows,
	}))

	fmt.Println()
	for _, level := range plan.Levels {
		a, _ := plan.AllowanceFor(level)
		fmt.Printf("  %s\n", cli.Muted(a.Guidance))
	}
	fmt.Println()
	return nil
}
