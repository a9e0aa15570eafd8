package repository

import (
	"context"
	"errors"

	"life-assistant/internal/model"
)

// ErrRecordNotFound is returned when no check-in exists for a (habit, date).
var ErrRecordNotFound = errors.New("habit record not found")

// Repository is the interface for habit data access.
type Repository interface {
	CreateHabit(ctx context.Context, habit model.Habit) (model.Habit, error)
	GetActiveHabits(ctx context.Context) ([]model.Habit, error)
	// GetRecordByHabitAndDate returns ErrRecordNotFound when the day has no
	// check-in.
	GetRecordByHabitAndDate(ctx context.Context, habitID, date string) (model.HabitRecord, error)
	InsertRecord(ctx context.Context, record model.HabitRecord) (model.HabitRecord, error)
	UpdateRecord(ctx context.Context, record model.HabitRecord) (model.HabitRecord, error)
}
