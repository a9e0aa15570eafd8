package repository

import (
	"context"

	"life-assistant/internal/model"
)

// Repository is the interface for transaction data access.
type Repository interface {
	Insert(ctx context.Context, tx model.Transaction) (model.Transaction, error)
	SumByType(ctx context.Context, typ model.TransactionType, opt RangeOptions) (float64, error)
	SumByCategory(ctx context.Context, categoryName string, opt RangeOptions) (float64, error)
}
