package store

import (
	"errors"
	"path/filepath"
	"testing"

	"unitlog/internal/model"
)

func openTestStore(t *testing.T) *SQLite {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "unitlog.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestAppendReadAllRoundTrip(t *testing.T) {
	s := openTestStore(t)

	entries := []model.LogEntry{
		{Date: "2026-09-02", Meal: model.Lunch, Category: "Fruit", Food: "Apple (1 medium)", Units: 1},
		{Date: "2026-09-01", Meal: model.Breakfast, Category: "Protein", Food: "Egg (1 medium)", Units: 2, Notes: "scrambled"},
		{Date: "2026-09-01", Meal: model.Dinner, Category: "Dinner Veg", Food: "Broccoli", Units: 0.5},
	}
	for _, e := range entries {
		if err := s.Append(e); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := s.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("ReadAll len = %d, want 3", len(got))
	}

	// Oldest date first, insertion order within a date
	if got[0].Food != "Egg (1 medium)" || got[1].Food != "Broccoli" || got[2].Food != "Apple (1 medium)" {
		t.Fatalf("unexpected order: %q, %q, %q", got[0].Food, got[1].Food, got[2].Food)
	}
	if got[0].Notes != "scrambled" {
		t.Fatalf("Notes = %q, want scrambled", got[0].Notes)
	}
	if got[1].Units != 0.5 {
		t.Fatalf("Units = %g, want 0.5", got[1].Units)
	}
	if got[0].Meal != model.Breakfast {
		t.Fatalf("Meal = %s, want Breakfast", got[0].Meal)
	}
}

func TestReadAllEmpty(t *testing.T) {
	s := openTestStore(t)

	got, err := s.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("ReadAll on empty store returned %d entries", len(got))
	}
}

func TestCount(t *testing.T) {
	s := openTestStore(t)

	for i := 0; i < 4; i++ {
		e := model.LogEntry{Date: "2026-09-01", Meal: model.Snack, Category: "Fruit", Food: "Grapes (1/2 cup)", Units: 1}
		if err := s.Append(e); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	n, err := s.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 4 {
		t.Fatalf("Count = %d, want 4", n)
	}
}

func TestReopenKeepsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unitlog.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	e := model.LogEntry{Date: "2026-09-01", Meal: model.Lunch, Category: "Milk", Food: "Skim Milk (8 oz)", Units: 1}
	if err := s.Append(e); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = s2.Close() }()

	got, err := s2.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 1 || got[0].Food != "Skim Milk (8 oz)" {
		t.Fatalf("entries did not survive reopen: %+v", got)
	}
}

func TestMemoryStore(t *testing.T) {
	var _ EntryStore = (*Memory)(nil)
	var _ EntryStore = (*SQLite)(nil)

	m := NewMemory()
	if err := m.Append(model.LogEntry{Date: "2026-09-01", Meal: model.Lunch, Category: "Fat", Food: "Oil (1 tsp)", Units: 1}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := m.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("ReadAll len = %d, want 1", len(got))
	}

	// snapshot is a copy, not a view
	got[0].Units = 99
	again, _ := m.ReadAll()
	if again[0].Units != 1 {
		t.Fatal("ReadAll must return a copy")
	}
}

func TestUnavailableStore(t *testing.T) {
	var _ EntryStore = (*Unavailable)(nil)

	u := NewUnavailable(errors.New("disk gone"))

	if _, err := u.ReadAll(); err == nil {
		t.Fatal("ReadAll must surface the open error")
	}

	e := model.LogEntry{Date: "2026-09-01", Meal: model.Lunch, Category: "Fruit", Food: "Apple (1 medium)", Units: 1}
	if err := u.Append(e); err == nil {
		t.Fatal("Append on an unreachable store must fail")
	}
}
