// Package taxonomy holds the static food-plan reference table: categories,
// their item lists, and per-category base unit targets.
package taxonomy

// Other is the sentinel category for foods outside the plan's tables.
// It never has items or a target; entries logged against it still count
// toward the day's total.
const Other = "Other"

// Category is one taxonomy category. Tracked categories carry a base unit
// target; free categories (Target unset, Tracked false) are listed for the
// entry form but never measured against a number.
type Category struct {
	Name    string   `yaml:"name"`
	Items   []string `yaml:"items"`
	Target  float64  `yaml:"target,omitempty"`
	Tracked bool     `yaml:"tracked"`
}

// BaseTarget is one (category, target) pair from the core table.
type BaseTarget struct {
	Category string
	Units    float64
}

// Table is an immutable taxonomy: category order is definition order and
// drives the order of every report and rendered table.
type Table struct {
	categories []Category
}

// Default returns the built-in plan taxonomy.
func Default() *Table {
	return &Table{categories: []Category{
		{
			Name:    "Protein",
			Target:  9.0,
			Tracked: true,
			Items: []string{
				"Cooked Protein (1 oz)", "Cottage Cheese (2 oz)", "Egg (1 medium)", "Egg Whites (2 tbsp)",
				"Hard Cheese (1 oz)", "Shellfish (Clams, Crab, Lobster)", "Chicken Breast", "Turkey Breast",
				"Legumes (1/2 cup)", "Tofu (1 oz)", "Peanut Butter (1 tbsp)", "Fish (White fish/Salmon)",
			},
		},
		{
			Name:    "Grain/Starch",
			Target:  5.0,
			Tracked: true,
			Items: []string{
				"Bread (1 oz)", "Melba Toast (4 rect/6 round)", "English Muffin (1/2)", "Whole Wheat Pita (1/2)",
				"Bagel (1/2)", "Rice (1/3 cup cooked)", "Potato (1 small baked)", "Pasta (1/2 cup cooked)",
				"Cereal (1/2 cup)", "Corn (1/2 cup)",
			},
		},
		{
			Name:    "Fruit",
			Target:  3.0,
			Tracked: true,
			Items: []string{
				"Apple (1 medium)", "Banana (1 small)", "Blueberries (1/2 cup)", "Grapes (1/2 cup)",
				"Orange (1 medium)", "Peach (1 medium)", "Pear (1 small)", "Strawberries (1 cup)",
			},
		},
		{
			Name:    "Milk",
			Target:  1.0,
			Tracked: true,
			Items: []string{
				"Skim Milk (8 oz)", "Low Fat Yogurt (3/4 cup)", "Almond Milk (1 cup)", "2% Milk (1/2 cup)",
			},
		},
		{
			Name:    "Fat",
			Target:  1.0,
			Tracked: true,
			Items: []string{
				"Margarine/Butter (1 tsp)", "Oil (1 tsp)", "Mayonnaise (1 tsp)", "Salad Dressing (2 tsp)",
				"Avocado (1/4 medium)",
			},
		},
		{
			Name:    "Dinner Veg",
			Target:  1.0,
			Tracked: true,
			Items: []string{
				"Asparagus", "Broccoli", "Carrots", "Green Beans", "Spinach", "Tomato", "Mixed Veg (1/2 cup)",
			},
		},
		{
			Name: "Sanity Savers / Free",
			Items: []string{
				"Popcorn (2 cups plain)", "Pretzels (1 oz)", "Ketchup (2 tsp)", "Salsa", "Diet Jello",
				"Clear Soup", "Coffee/Tea",
			},
		},
	}}
}

// Categories returns all category names in definition order.
func (t *Table) Categories() []string {
	names := make([]string, len(t.categories))
	for i, c := range t.categories {
		names[i] = c.Name
	}
	return names
}

// ItemsOf returns the ordered item labels for a category, or nil if the
// category is unknown. Lookup is by exact, case-sensitive name.
func (t *Table) ItemsOf(category string) []string {
	for _, c := range t.categories {
		if c.Name == category {
			items := make([]string, len(c.Items))
			copy(items, c.Items)
			return items
		}
	}
	return nil
}

// BaseTargetOf returns the base unit target for a category. ok is false
// for free categories and for names not in the table.
func (t *Table) BaseTargetOf(category string) (float64, bool) {
	for _, c := range t.categories {
		if c.Name == category && c.Tracked {
			return c.Target, true
		}
	}
	return 0, false
}

// BaseTargets returns the core (tracked) categories with their targets,
// in definition order.
func (t *Table) BaseTargets() []BaseTarget {
	var targets []BaseTarget
	for _, c := range t.categories {
		if c.Tracked {
			targets = append(targets, BaseTarget{Category: c.Name, Units: c.Target})
		}
	}
	return targets
}

// BaseTotal returns the sum of all base targets.
func (t *Table) BaseTotal() float64 {
	var total float64
	for _, c := range t.categories {
		if c.Tracked {
			total += c.Target
		}
	}
	return total
}
