package repository

import (
	"context"

	"life-assistant/internal/model"
)

// Repository is the interface for goal and savings data access.
type Repository interface {
	Insert(ctx context.Context, goal model.Goal) (model.Goal, error)
	// ListActive returns goals whose window includes the given day: an end
	// date on or after it, or no end date at all.
	ListActive(ctx context.Context, onDate string) ([]model.Goal, error)
	AddProgress(ctx context.Context, goalID string, delta float64) error

	// Savings are deposits and withdrawals tracked alongside goals.
	InsertSavingsRecord(ctx context.Context, rec model.SavingsRecord) (model.SavingsRecord, error)
	SavingsBalance(ctx context.Context) (float64, error)
}
