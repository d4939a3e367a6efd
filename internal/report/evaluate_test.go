package report

import (
	"math"
	"reflect"
	"testing"

	"unitlog/internal/model"
	"unitlog/internal/taxonomy"
)

const day = "2026-09-01"

func entry(date, category string, units float64) model.LogEntry {
	return model.LogEntry{
		Date:     date,
		Meal:     model.Lunch,
		Category: category,
		Food:     "test food",
		Units:    units,
	}
}

func targets() []taxonomy.BaseTarget {
	return taxonomy.Default().BaseTargets()
}

func ratioFor(t *testing.T, rep model.DailyReport, category string) float64 {
	t.Helper()
	for _, cp := range rep.Categories {
		if cp.Category == category {
			return cp.Ratio
		}
	}
	t.Fatalf("category %q missing from report", category)
	return 0
}

func TestEvaluateEmptyLog(t *testing.T) {
	rep := Evaluate(nil, day, targets(), 2)

	if !rep.Empty {
		t.Fatal("report not flagged empty for empty log")
	}
	if rep.TotalConsumed != 0 {
		t.Fatalf("TotalConsumed = %g, want 0", rep.TotalConsumed)
	}
	if rep.Overage != 0 {
		t.Fatalf("Overage = %g, want 0", rep.Overage)
	}
	if !rep.WithinAllowance {
		t.Fatal("empty day should be within allowance")
	}
	if len(rep.Categories) != 6 {
		t.Fatalf("Categories len = %d, want 6", len(rep.Categories))
	}
	for _, cp := range rep.Categories {
		if cp.Consumed != 0 || cp.Ratio != 0 {
			t.Fatalf("%s: consumed=%g ratio=%g, want zeros", cp.Category, cp.Consumed, cp.Ratio)
		}
	}
}

func TestEvaluateTargetsHit(t *testing.T) {
	entries := []model.LogEntry{
		entry(day, "Protein", 9),
		entry(day, "Fruit", 3),
	}
	rep := Evaluate(entries, day, targets(), 0)

	if r := ratioFor(t, rep, "Protein"); r != 1.0 {
		t.Fatalf("Protein ratio = %g, want 1.0", r)
	}
	if r := ratioFor(t, rep, "Fruit"); r != 1.0 {
		t.Fatalf("Fruit ratio = %g, want 1.0", r)
	}
	if rep.TotalConsumed != 12 {
		t.Fatalf("TotalConsumed = %g, want 12", rep.TotalConsumed)
	}
	if rep.BaseTotal != 20 {
		t.Fatalf("BaseTotal = %g, want 20", rep.BaseTotal)
	}
	if rep.Overage != 0 {
		t.Fatalf("Overage = %g, want 0", rep.Overage)
	}
	if !rep.WithinAllowance {
		t.Fatal("should be within allowance")
	}
}

func TestEvaluateSingleCategoryOverTarget(t *testing.T) {
	// Over one category's target but under the day's base total: the
	// ratio caps at 1.0 and no overage is charged.
	rep := Evaluate([]model.LogEntry{entry(day, "Protein", 12)}, day, targets(), 2)

	if r := ratioFor(t, rep, "Protein"); r != 1.0 {
		t.Fatalf("Protein ratio = %g, want capped 1.0", r)
	}
	if rep.TotalConsumed != 12 {
		t.Fatalf("TotalConsumed = %g, want 12", rep.TotalConsumed)
	}
	if rep.Overage != 0 {
		t.Fatalf("Overage = %g, want 0 (12 under base 20)", rep.Overage)
	}
	if !rep.WithinAllowance {
		t.Fatal("should be within allowance")
	}
}

func TestEvaluateOverAllowance(t *testing.T) {
	entries := []model.LogEntry{
		entry(day, "Protein", 10),
		entry(day, "Grain/Starch", 6),
		entry(day, "Fruit", 4),
		entry(day, "Milk", 1),
		entry(day, "Fat", 1),
		entry(day, "Dinner Veg", 1),
	}
	rep := Evaluate(entries, day, targets(), 2)

	if rep.TotalConsumed != 23 {
		t.Fatalf("TotalConsumed = %g, want 23", rep.TotalConsumed)
	}
	if rep.Overage != 3 {
		t.Fatalf("Overage = %g, want 3", rep.Overage)
	}
	if rep.WithinAllowance {
		t.Fatal("3 over with allowance 2 should not be within allowance")
	}
}

func TestEvaluateAllowanceBoundaryIsInclusive(t *testing.T) {
	// Overage exactly equal to the allowance still counts as within: the
	// comparison is deliberately non-strict.
	entries := []model.LogEntry{
		entry(day, "Protein", 22),
	}
	rep := Evaluate(entries, day, targets(), 2)

	if rep.Overage != 2 {
		t.Fatalf("Overage = %g, want 2", rep.Overage)
	}
	if !rep.WithinAllowance {
		t.Fatal("overage == allowance must be within allowance")
	}
}

func TestEvaluateOtherDatesExcluded(t *testing.T) {
	entries := []model.LogEntry{
		entry("2026-08-31", "Protein", 9),
		entry("2026-08-31", "Fruit", 3),
	}
	rep := Evaluate(entries, day, targets(), 0)

	if !rep.Empty {
		t.Fatal("day with no matching rows should be flagged empty")
	}
	if rep.TotalConsumed != 0 {
		t.Fatalf("TotalConsumed = %g, want 0", rep.TotalConsumed)
	}
}

func TestEvaluateNonCoreCountsTowardTotal(t *testing.T) {
	entries := []model.LogEntry{
		entry(day, "Protein", 2),
		entry(day, taxonomy.Other, 1.5),
		entry(day, "Sanity Savers / Free", 0.5),
	}
	rep := Evaluate(entries, day, targets(), 0)

	if rep.TotalConsumed != 4 {
		t.Fatalf("TotalConsumed = %g, want 4 (all categories count)", rep.TotalConsumed)
	}
	for _, cp := range rep.Categories {
		if cp.Category == taxonomy.Other {
			t.Fatal("Other must not appear as a core category")
		}
	}
}

func TestEvaluateMalformedDateRowsIgnored(t *testing.T) {
	entries := []model.LogEntry{
		entry("garbage", "Protein", 99),
		entry(day, "Protein", 2),
	}
	rep := Evaluate(entries, day, targets(), 0)

	if rep.TotalConsumed != 2 {
		t.Fatalf("TotalConsumed = %g, want 2 (corrupted row excluded)", rep.TotalConsumed)
	}
}

func TestEvaluateZeroTargetGuard(t *testing.T) {
	bad := []taxonomy.BaseTarget{{Category: "Protein", Units: 0}}

	rep := Evaluate([]model.LogEntry{entry(day, "Protein", 1)}, day, bad, 0)
	if r := ratioFor(t, rep, "Protein"); r != 1.0 {
		t.Fatalf("zero target with consumption: ratio = %g, want 1.0", r)
	}

	rep = Evaluate(nil, day, bad, 0)
	if r := ratioFor(t, rep, "Protein"); r != 0.0 {
		t.Fatalf("zero target without consumption: ratio = %g, want 0.0", r)
	}
}

func TestEvaluateRatioAlwaysInRange(t *testing.T) {
	entries := []model.LogEntry{
		entry(day, "Protein", 4.5),
		entry(day, "Grain/Starch", 11),
		entry(day, "Milk", 0.5),
	}
	rep := Evaluate(entries, day, targets(), 4)
	for _, cp := range rep.Categories {
		if cp.Ratio < 0 || cp.Ratio > 1 {
			t.Fatalf("%s: ratio %g out of [0,1]", cp.Category, cp.Ratio)
		}
	}
	if r := ratioFor(t, rep, "Protein"); math.Abs(r-0.5) > 1e-9 {
		t.Fatalf("Protein ratio = %g, want 0.5", r)
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	entries := []model.LogEntry{
		entry(day, "Protein", 3),
		entry(day, taxonomy.Other, 1),
		entry("2026-08-30", "Fruit", 2),
	}

	first := Evaluate(entries, day, targets(), 2)
	second := Evaluate(entries, day, targets(), 2)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs produced different reports")
	}
}

func TestEvaluateCategoryOrderFollowsTargets(t *testing.T) {
	rep := Evaluate(nil, day, targets(), 0)
	want := []string{"Protein", "Grain/Starch", "Fruit", "Milk", "Fat", "Dinner Veg"}
	for i, cp := range rep.Categories {
		if cp.Category != want[i] {
			t.Fatalf("Categories[%d] = %q, want %q", i, cp.Category, want[i])
		}
	}
}

func TestDayTotals(t *testing.T) {
	entries := []model.LogEntry{
		entry("2026-09-02", "Protein", 1),
		entry("2026-09-01", "Fruit", 2),
		entry("2026-09-02", "Milk", 0.5),
		entry("bad-date", "Protein", 50),
	}

	totals := DayTotals(entries)
	if len(totals) != 2 {
		t.Fatalf("totals len = %d, want 2", len(totals))
	}
	if totals[0].Date != "2026-09-01" || totals[0].Units != 2 {
		t.Fatalf("totals[0] = %+v, want 2026-09-01/2", totals[0])
	}
	if totals[1].Date != "2026-09-02" || totals[1].Units != 1.5 {
		t.Fatalf("totals[1] = %+v, want 2026-09-02/1.5", totals[1])
	}
}
