package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"unitlog/internal/cli"
	"unitlog/internal/model"
	"unitlog/internal/store"
	"unitlog/internal/taxonomy"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	flagMeal     string
	flagCategory string
	flagFood     string
	flagUnits    float64
	flagNotes    string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a food entry",
	Long:  "Append one food entry to the log. With --food the entry comes from flags; otherwise an interactive form walks through the taxonomy.",
	RunE:  runLog,
}

func init() {
	logCmd.Flags().StringVar(&flagMeal, "meal", "", "Meal (Breakfast, Lunch, Dinner, Snack)")
	logCmd.Flags().StringVar(&flagCategory, "category", "", "Food category")
	logCmd.Flags().StringVar(&flagFood, "food", "", "Food name")
	logCmd.Flags().Float64Var(&flagUnits, "units", 1, "Units consumed (multiples of 0.5)")
	logCmd.Flags().StringVar(&flagNotes, "notes", "", "Optional notes")
	rootCmd.AddCommand(logCmd)
}

func runLog(_ *cobra.Command, _ []string) error {
	date, err := targetDate()
	if err != nil {
		return err
	}
	tax, err := loadTaxonomy()
	if err != nil {
		return err
	}

	var entry model.LogEntry
	if flagFood != "" {
		meal, err := model.ParseMeal(flagMeal)
		if err != nil {
			return err
		}
		entry = model.LogEntry{
			Date:     date,
			Meal:     meal,
			Category: flagCategory,
			Food:     flagFood,
			Units:    flagUnits,
			Notes:    flagNotes,
		}
	} else {
		entry, err = promptEntry(tax, date)
		if err != nil {
			return err
		}
	}

	if err := entry.Validate(); err != nil {
		return err
	}

	// Appends never silently degrade: if the store is down the user must
	// know the row was not written.
	s, err := store.Open(dbPath())
	if err != nil {
		return fmt.Errorf("log store unavailable: %w", err)
	}
	defer func() { _ = s.Close() }()

	if err := s.Append(entry); err != nil {
		return err
	}

	fmt.Printf("\n  %s %s %s (%s units) on %s\n\n",
		cli.Success("Logged:"), entry.Food, cli.Muted("["+entry.Category+"]"),
		cli.FormatUnits(entry.Units), entry.Date)
	return nil
}

const customEntry = "Custom Entry"

// promptEntry walks the user through date, meal, category, food, and units.
// The food list follows the chosen category, so it runs as two forms.
func promptEntry(tax *taxonomy.Table, date string) (model.LogEntry, error) {
	meal := model.Breakfast
	category := ""

	categories := append(tax.Categories(), taxonomy.Other)

	first := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Date").
			Value(&date).
			Validate(model.ValidateDate),
		huh.NewSelect[model.Meal]().
			Title("Meal").
			Options(huh.NewOptions(model.Meals...)...).
			Value(&meal),
		huh.NewSelect[string]().
			Title("Category").
			Options(huh.NewOptions(categories...)...).
			Value(&category),
	))
	if err := first.Run(); err != nil {
		return model.LogEntry{}, err
	}

	food := ""
	unitsStr := "1"
	notes := ""

	var fields []huh.Field
	if items := tax.ItemsOf(category); len(items) > 0 {
		fields = append(fields, huh.NewSelect[string]().
			Title("Food Item").
			Options(huh.NewOptions(append(items, customEntry)...)...).
			Value(&food))
	} else {
		food = customEntry
	}
	fields = append(fields,
		huh.NewInput().
			Title("Units").
			Value(&unitsStr).
			Validate(func(s string) error {
				u, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
				if err != nil {
					return fmt.Errorf("not a number")
				}
				return model.ValidateUnits(u)
			}),
		huh.NewInput().
			Title("Notes (optional)").
			Value(&notes),
	)

	second := huh.NewForm(huh.NewGroup(fields...))
	if err := second.Run(); err != nil {
		return model.LogEntry{}, err
	}

	if food == customEntry {
		custom := ""
		name := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Type Food Name").
				Value(&custom).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("food name is required")
					}
					return nil
				}),
		))
		if err := name.Run(); err != nil {
			return model.LogEntry{}, err
		}
		food = custom
	}

	units, _ := strconv.ParseFloat(strings.TrimSpace(unitsStr), 64)
	return model.LogEntry{
		Date:     date,
		Meal:     meal,
		Category: category,
		Food:     food,
		Units:    units,
		Notes:    notes,
	}, nil
}
