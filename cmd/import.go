package cmd

import (
	"fmt"
	"os"

	"unitlog/internal/source"
	"unitlog/internal/store"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import entries from a CSV export",
	Long:  "Import a Date,Meal,Category,Food,Units,Notes CSV export (e.g. from the spreadsheet the log used to live in). Invalid rows are skipped.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	result, err := source.ParseCSV(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	s, err := store.Open(dbPath())
	if err != nil {
		return fmt.Errorf("log store unavailable: %w", err)
	}
	defer func() { _ = s.Close() }()

	for i, e := range result.Entries {
		if err := s.Append(e); err != nil {
			return fmt.Errorf("after %d rows: %w", i, err)
		}
	}

	if !flagQuiet {
		fmt.Printf("  Imported %d entries", len(result.Entries))
		if result.Skipped > 0 {
			fmt.Printf(" (%d invalid rows skipped)", result.Skipped)
		}
		fmt.Println()
	}
	return nil
}
