package tui

import (
	"fmt"
	"strconv"
	"strings"

	"unitlog/internal/model"
	"unitlog/internal/taxonomy"

	"github.com/charmbracelet/huh"
)

// logFormValues backs the Log tab's huh form. Units is a string so the
// form can validate it before parsing.
type logFormValues struct {
	meal     model.Meal
	category string
	food     string
	units    string
	notes    string
}

// entry converts submitted form values into a validated LogEntry.
func (v *logFormValues) entry(date string) (model.LogEntry, error) {
	units, err := strconv.ParseFloat(strings.TrimSpace(v.units), 64)
	if err != nil {
		return model.LogEntry{}, fmt.Errorf("units %q is not a number", v.units)
	}
	e := model.LogEntry{
		Date:     date,
		Meal:     v.meal,
		Category: v.category,
		Food:     strings.TrimSpace(v.food),
		Units:    units,
		Notes:    strings.TrimSpace(v.notes),
	}
	return e, e.Validate()
}

// resetForm builds a fresh entry form for the Log tab. formVals stays a
// pointer: the model is copied on every update, and the form's Value
// bindings must keep writing into the same struct the submit path reads.
func (a *App) resetForm() {
	v := &logFormValues{meal: model.Breakfast, units: "1"}

	categories := append(a.tax.Categories(), taxonomy.Other)
	v.category = categories[0]

	a.formVals = v
	a.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[model.Meal]().
			Title("Meal").
			Options(huh.NewOptions(model.Meals...)...).
			Value(&v.meal),
		huh.NewSelect[string]().
			Title("Category").
			Options(huh.NewOptions(categories...)...).
			Value(&v.category),
		huh.NewInput().
			Title("Food").
			Placeholder("e.g. Chicken Breast").
			Value(&v.food).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("food name is required")
				}
				return nil
			}),
		huh.NewInput().
			Title("Units").
			Value(&v.units).
			Validate(func(s string) error {
				u, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
				if err != nil {
					return fmt.Errorf("not a number")
				}
				return model.ValidateUnits(u)
			}),
		huh.NewInput().
			Title("Notes (optional)").
			Value(&v.notes),
	))
}
