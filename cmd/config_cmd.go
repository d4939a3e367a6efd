package cmd

import (
	"fmt"

	"unitlog/internal/config"
	"unitlog/internal/plan"
	"unitlog/internal/store"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default level: %s", cfg.General.DefaultLevel)
	if a, err := plan.AllowanceFor(plan.Level(cfg.General.DefaultLevel)); err == nil {
		fmt.Printf("  (%s)", a.Label)
	}
	fmt.Println()
	fmt.Printf("    Data dir:      %s\n", config.DataDir(cfg))
	fmt.Printf("    Database:      %s\n", dbPath())
	if s, err := store.Open(dbPath()); err == nil {
		if n, err := s.Count(); err == nil {
			fmt.Printf("    Entries:       %d\n", n)
		}
		_ = s.Close()
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `unitlog setup` to reconfigure.")
	return nil
}
