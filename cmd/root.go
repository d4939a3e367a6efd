// Package cmd implements the unitlog CLI commands.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"unitlog/internal/config"
	"unitlog/internal/model"
	"unitlog/internal/plan"
	"unitlog/internal/store"
	"unitlog/internal/taxonomy"

	"github.com/spf13/cobra"
)

var (
	flagDate    string
	flagLevel   string
	flagDataDir string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "unitlog",
	Short: "Daily food-unit tracker",
	Long:  "Log food units against your plan's category targets and check your daily allowance.",
	RunE:  runProgress,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDate, "date", "t", "", "Target date (YYYY-MM-DD, default today)")
	rootCmd.PersistentFlags().StringVarP(&flagLevel, "level", "l", "", "Program level (basic, level1, level2, level3)")
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory for the log database")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// dataDir resolves the effective data directory: flag, then config, then
// the XDG default.
func dataDir() string {
	if flagDataDir != "" {
		return flagDataDir
	}
	cfg, _ := config.Load()
	return config.DataDir(cfg)
}

func dbPath() string {
	return filepath.Join(dataDir(), "unitlog.db")
}

// openStore opens the log database. When the store is unreachable it falls
// back to the degraded store: reads render as "nothing logged", appends
// keep failing so no entry is silently lost.
func openStore() store.EntryStore {
	s, err := store.Open(dbPath())
	if err != nil {
		return store.NewUnavailable(err)
	}
	return s
}

// loadEntries reads a full snapshot of the log.
func loadEntries() []model.LogEntry {
	s := openStore()
	defer func() { _ = s.Close() }()

	entries, err := s.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Warning: could not read log (%v), showing empty log\n", err)
		return nil
	}
	return entries
}

// loadTaxonomy loads the food table, honoring a foods.yaml override in the
// data directory.
func loadTaxonomy() (*taxonomy.Table, error) {
	return taxonomy.LoadFile(filepath.Join(dataDir(), "foods.yaml"))
}

// resolveAllowance picks the program level from --level or the configured
// default. Unknown levels are a hard error, never a silent fallback.
func resolveAllowance() (plan.Allowance, error) {
	name := flagLevel
	if name == "" {
		cfg, _ := config.Load()
		name = cfg.General.DefaultLevel
	}
	level, err := plan.Parse(name)
	if err != nil {
		return plan.Allowance{}, err
	}
	return plan.AllowanceFor(level)
}

// targetDate returns --date or today's local date.
func targetDate() (string, error) {
	if flagDate == "" {
		return time.Now().Format(model.DateLayout), nil
	}
	if _, err := time.Parse(model.DateLayout, flagDate); err != nil {
		return "", fmt.Errorf("invalid --date %q: want YYYY-MM-DD", flagDate)
	}
	return flagDate, nil
}
