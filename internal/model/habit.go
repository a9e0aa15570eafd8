package model

// Habit is a recurring habit definition.
type Habit struct {
	ID     string
	Name   string
	Active bool
}

// HabitRecord is one day's check-in for a habit.
// At most one record exists per (habit, date).
type HabitRecord struct {
	ID        string
	HabitID   string
	Date      string // YYYY-MM-DD
	Completed bool
	Value     *float64 // optional numeric value (km run, pages read, ...)
}
