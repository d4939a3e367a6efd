package cmd

import (
	"fmt"

	"unitlog/internal/cli"

	"github.com/spf13/cobra"
)

var foodsCmd = &cobra.Command{
	Use:   "foods [category]",
	Short: "Show the plan's food categories and items",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFoods,
}

func init() {
	rootCmd.AddCommand(foodsCmd)
}

func runFoods(_ *cobra.Command, args []string) error {
	tax, err := loadTaxonomy()
	if err != nil {
		return err
	}

	categories := tax.Categories()
	if len(args) == 1 {
		if tax.ItemsOf(args[0]) == nil {
			return fmt.Errorf("unknown category %q", args[0])
		}
		categories = []string{args[0]}
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("FOOD REFERENCE"))
	fmt.Println()

	for _, name := range categories {
		var title string
		if target, ok := tax.BaseTargetOf(name); ok {
			title = fmt.Sprintf("%s  (target %s units)", name, cli.FormatUnits(target))
		} else {
			title = fmt.Sprintf("%s  (free)", name)
		}

		rows := [][]string{}
		for _, item := range tax.ItemsOf(name) {
			rows = append(rows, []string{item})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   title,
			Headers: []string{"Item"},
			Rows:    rows,
		}))
		fmt.Println()
	}

	fmt.Printf("  Base total: %s units/day\n\n", cli.FormatUnits(tax.BaseTotal()))
	return nil
}
