package repository

import (
	"context"

	"life-assistant/internal/model"
)

// Repository is the interface for diary data access.
type Repository interface {
	Insert(ctx context.Context, entry model.DiaryEntry) (model.DiaryEntry, error)
}
