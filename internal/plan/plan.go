// Package plan maps the program level selection to its extra-unit allowance.
package plan

import "fmt"

// Level identifies one of the four program levels.
type Level string

const (
	Basic  Level = "basic"
	Level1 Level = "level1"
	Level2 Level = "level2"
	Level3 Level = "level3"
)

// Levels lists all valid levels in ascending order.
var Levels = []Level{Basic, Level1, Level2, Level3}

// Allowance is the fixed policy attached to a level.
type Allowance struct {
	Level      Level
	Label      string
	ExtraUnits float64
	Guidance   string
}

// The level set is closed, so an unknown identifier is a configuration
// error and must fail loudly rather than default to anything.
var allowances = map[Level]Allowance{
	Basic: {
		Level:      Basic,
		Label:      "Basic Plan",
		ExtraUnits: 0,
		Guidance:   "Goal: Hit the base targets.",
	},
	Level1: {
		Level:      Level1,
		Label:      "Level 1 (+2 units)",
		ExtraUnits: 2,
		Guidance:   "Level 1: You have 2 extra units to use on Protein, Fruit, Milk, or Veg.",
	},
	Level2: {
		Level:      Level2,
		Label:      "Level 2 (+4 units)",
		ExtraUnits: 4,
		Guidance:   "Level 2: You have 4 extra units. Max 2 can be Grains/Sanity Savers.",
	},
	Level3: {
		Level:      Level3,
		Label:      "Level 3 (+6 units)",
		ExtraUnits: 6,
		Guidance:   "Level 3: You have 6 extra units.",
	},
}

// AllowanceFor returns the allowance policy for a level.
func AllowanceFor(level Level) (Allowance, error) {
	a, ok := allowances[level]
	if !ok {
		return Allowance{}, fmt.Errorf("unknown program level %q (expected basic, level1, level2, or level3)", level)
	}
	return a, nil
}

// Parse converts a user-supplied string into a Level.
func Parse(s string) (Level, error) {
	if _, err := AllowanceFor(Level(s)); err != nil {
		return "", err
	}
	return Level(s), nil
}
