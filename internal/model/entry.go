// Package model defines the core data types for the food-unit tracker.
package model

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// DateLayout is the calendar-date format used everywhere: in the store,
// on the command line, and as the grouping key for daily reports.
const DateLayout = "2006-01-02"

// Meal identifies which meal an entry belongs to.
type Meal string

const (
	Breakfast Meal = "Breakfast"
	Lunch     Meal = "Lunch"
	Dinner    Meal = "Dinner"
	Snack     Meal = "Snack"
)

// Meals lists all valid meals in display order.
var Meals = []Meal{Breakfast, Lunch, Dinner, Snack}

// ParseMeal returns the Meal matching s, or an error for anything else.
func ParseMeal(s string) (Meal, error) {
	for _, m := range Meals {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown meal %q (expected one of Breakfast, Lunch, Dinner, Snack)", s)
}

// UnitStep is the minimum granularity for logged units.
const UnitStep = 0.5

// LogEntry is one logged food consumption event. Entries are immutable
// once appended; the store never edits or deletes them.
type LogEntry struct {
	Date     string // calendar date, DateLayout
	Meal     Meal
	Category string
	Food     string
	Units    float64
	Notes    string
}

// Validate checks an entry before it is appended to the store.
// The evaluator assumes entries passed this check, so every rule the
// report math depends on lives here.
func (e LogEntry) Validate() error {
	if err := ValidateDate(e.Date); err != nil {
		return err
	}
	if _, err := ParseMeal(string(e.Meal)); err != nil {
		return err
	}
	if strings.TrimSpace(e.Category) == "" {
		return errors.New("category is required")
	}
	if strings.TrimSpace(e.Food) == "" {
		return errors.New("food name is required")
	}
	return ValidateUnits(e.Units)
}

// ValidateDate checks a calendar-date string against DateLayout.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("invalid date %q: want YYYY-MM-DD", date)
	}
	return nil
}

// ValidateUnits checks the positive, half-unit granularity rule.
func ValidateUnits(units float64) error {
	if units <= 0 {
		return fmt.Errorf("units must be positive, got %g", units)
	}
	if rem := math.Mod(units, UnitStep); math.Abs(rem) > 1e-9 && math.Abs(rem-UnitStep) > 1e-9 {
		return fmt.Errorf("units must be a multiple of %g, got %g", UnitStep, units)
	}
	return nil
}
