package repository

// RangeOptions restricts aggregates to an inclusive day range.
type RangeOptions struct {
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
}
