package repository

import (
	"context"

	"life-assistant/internal/model"
)

// Repository is the interface for todo data access.
type Repository interface {
	Insert(ctx context.Context, todo model.Todo) (model.Todo, error)
}
