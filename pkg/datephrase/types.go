package datephrase

import "time"

// DateRange is an inclusive day-level range.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether the day of t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return !day.Before(r.Start) && !day.After(r.End)
}
