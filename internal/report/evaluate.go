// Package report turns a snapshot of log entries into daily progress
// metrics and an allowance verdict.
package report

import (
	"sort"
	"time"

	"unitlog/internal/model"
	"unitlog/internal/taxonomy"
)

// Evaluate computes the daily report for targetDate from a full snapshot of
// log entries. It is a pure function: same snapshot and parameters, same
// report, category order included.
//
// Rows whose Date does not exactly match targetDate are ignored, which also
// drops rows with corrupted dates instead of failing the whole report.
func Evaluate(entries []model.LogEntry, targetDate string, baseTargets []taxonomy.BaseTarget, extraAllowance float64) model.DailyReport {
	consumed := make(map[string]float64)
	var totalConsumed float64
	matched := false

	for _, e := range entries {
		if e.Date != targetDate {
			continue
		}
		matched = true
		consumed[e.Category] += e.Units
		totalConsumed += e.Units
	}

	var baseTotal float64
	categories := make([]model.CategoryProgress, 0, len(baseTargets))
	for _, bt := range baseTargets {
		baseTotal += bt.Units
		categories = append(categories, model.CategoryProgress{
			Category: bt.Category,
			Consumed: consumed[bt.Category],
			Target:   bt.Units,
			Ratio:    progressRatio(consumed[bt.Category], bt.Units),
		})
	}

	overage := totalConsumed - baseTotal
	if overage < 0 {
		overage = 0
	}

	return model.DailyReport{
		Date:            targetDate,
		Categories:      categories,
		TotalConsumed:   totalConsumed,
		BaseTotal:       baseTotal,
		Overage:         overage,
		ExtraAllowance:  extraAllowance,
		WithinAllowance: overage <= extraAllowance,
		Empty:           !matched,
	}
}

// progressRatio caps progress at 1.0 for display. A zero target never ships
// in the built-in taxonomy, but a malformed override must not divide by zero.
func progressRatio(consumed, target float64) float64 {
	if target == 0 {
		if consumed > 0 {
			return 1.0
		}
		return 0.0
	}
	ratio := consumed / target
	if ratio > 1.0 {
		return 1.0
	}
	return ratio
}

// DayTotals sums units per calendar date across the whole log, ascending by
// date. Rows with unparseable dates are skipped; one corrupted row should
// not hide the rest of the history.
func DayTotals(entries []model.LogEntry) []model.DayTotal {
	byDay := make(map[string]float64)
	for _, e := range entries {
		if _, err := time.Parse(model.DateLayout, e.Date); err != nil {
			continue
		}
		byDay[e.Date] += e.Units
	}

	totals := make([]model.DayTotal, 0, len(byDay))
	for date, units := range byDay {
		totals = append(totals, model.DayTotal{Date: date, Units: units})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Date < totals[j].Date
	})
	return totals
}
