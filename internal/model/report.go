package model

// CategoryProgress holds one core category's consumed/target pair for a day.
type CategoryProgress struct {
	Category string
	Consumed float64
	Target   float64
	Ratio    float64 // min(Consumed/Target, 1.0)
}

// DailyReport is the evaluator's output for one calendar date.
// Categories keeps the base-target table's order so repeated renders of
// the same snapshot come out identical.
type DailyReport struct {
	Date            string
	Categories      []CategoryProgress
	TotalConsumed   float64 // units over all rows for the date, every category
	BaseTotal       float64 // sum of all base targets
	Overage         float64 // max(0, TotalConsumed - BaseTotal)
	ExtraAllowance  float64
	WithinAllowance bool
	Empty           bool // nothing logged for the date; a normal state, not an error
}

// DayTotal holds the summed units for one calendar date across the whole log.
type DayTotal struct {
	Date  string
	Units float64
}
