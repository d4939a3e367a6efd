package source

import (
	"strings"
	"testing"
)

func TestParseCSV(t *testing.T) {
	input := `Date,Meal,Category,Food,Units,Notes
2026-09-01,Breakfast,Protein,Egg (1 medium),2,
2026-09-01,Lunch,Fruit,Apple (1 medium),1,crisp
2026-09-02,Dinner,Dinner Veg,Broccoli,0.5,
`
	result, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(result.Entries) != 3 {
		t.Fatalf("Entries len = %d, want 3", len(result.Entries))
	}
	if result.Skipped != 0 {
		t.Fatalf("Skipped = %d, want 0", result.Skipped)
	}

	first := result.Entries[0]
	if first.Date != "2026-09-01" || first.Food != "Egg (1 medium)" || first.Units != 2 {
		t.Fatalf("Entries[0] = %+v", first)
	}
	if result.Entries[1].Notes != "crisp" {
		t.Fatalf("Notes = %q, want crisp", result.Entries[1].Notes)
	}
}

func TestParseCSVSkipsInvalidRows(t *testing.T) {
	input := `Date,Meal,Category,Food,Units,Notes
2026-09-01,Breakfast,Protein,Egg (1 medium),2,
not-a-date,Lunch,Fruit,Apple,1,
2026-09-01,Brunch,Fruit,Apple,1,
2026-09-01,Lunch,Fruit,Apple,zero,
2026-09-01,Lunch,Fruit,Apple,-1,
`
	result, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(result.Entries) != 1 {
		t.Fatalf("Entries len = %d, want 1", len(result.Entries))
	}
	if result.Skipped != 4 {
		t.Fatalf("Skipped = %d, want 4", result.Skipped)
	}
}

func TestParseCSVRejectsWrongHeader(t *testing.T) {
	if _, err := ParseCSV(strings.NewReader("a,b,c\n1,2,3\n")); err == nil {
		t.Fatal("wrong header must fail")
	}
	if _, err := ParseCSV(strings.NewReader("")); err == nil {
		t.Fatal("empty file must fail")
	}
}

func TestParseCSVHeaderCaseInsensitive(t *testing.T) {
	input := "date,meal,category,food,units,notes\n2026-09-01,Snack,Fruit,Pear (1 small),1,\n"
	result, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(result.Entries) != 1 {
		t.Fatalf("Entries len = %d, want 1", len(result.Entries))
	}
}
