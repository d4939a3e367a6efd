package plan

import "testing"

func TestAllowanceFor(t *testing.T) {
	tests := []struct {
		level Level
		extra float64
	}{
		{Basic, 0},
		{Level1, 2},
		{Level2, 4},
		{Level3, 6},
	}

	for _, tt := range tests {
		a, err := AllowanceFor(tt.level)
		if err != nil {
			t.Fatalf("AllowanceFor(%s): %v", tt.level, err)
		}
		if a.ExtraUnits != tt.extra {
			t.Fatalf("AllowanceFor(%s).ExtraUnits = %g, want %g", tt.level, a.ExtraUnits, tt.extra)
		}
		if a.Guidance == "" {
			t.Fatalf("AllowanceFor(%s) has no guidance text", tt.level)
		}
	}
}

func TestAllowanceForUnknownLevelFails(t *testing.T) {
	if _, err := AllowanceFor("level4"); err == nil {
		t.Fatal("unknown level must not silently default")
	}
	if _, err := AllowanceFor(""); err == nil {
		t.Fatal("empty level must not silently default")
	}
}

func TestParse(t *testing.T) {
	level, err := Parse("level2")
	if err != nil {
		t.Fatalf("Parse(level2): %v", err)
	}
	if level != Level2 {
		t.Fatalf("Parse(level2) = %s, want %s", level, Level2)
	}

	if _, err := Parse("Basic Plan"); err == nil {
		t.Fatal("display labels are not level identifiers")
	}
}
