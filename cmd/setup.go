package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"unitlog/internal/config"
	"unitlog/internal/plan"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to unitlog!")
	fmt.Println()

	// 1. Program level
	fmt.Println("  1. Program level")
	for i, level := range plan.Levels {
		a, _ := plan.AllowanceFor(level)
		marker := " "
		if string(level) == cfg.General.DefaultLevel {
			marker = "*"
		}
		fmt.Printf("     (%d) %s %s\n", i+1, marker, a.Label)
	}
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	choice = strings.TrimSpace(choice)
	switch choice {
	case "1":
		cfg.General.DefaultLevel = string(plan.Basic)
	case "2":
		cfg.General.DefaultLevel = string(plan.Level1)
	case "3":
		cfg.General.DefaultLevel = string(plan.Level2)
	case "4":
		cfg.General.DefaultLevel = string(plan.Level3)
	}
	fmt.Println()

	// 2. Data directory
	fmt.Println("  2. Data directory")
	fmt.Printf("     Where the log database lives. [%s]\n", config.DataDir(cfg))
	fmt.Print("     > ")
	dir, _ := reader.ReadString('\n')
	dir = strings.TrimSpace(dir)
	if dir != "" {
		cfg.General.DataDir = dir
	}
	fmt.Println()

	// 3. Theme
	fmt.Println("  3. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `unitlog setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
