package sqlite

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"life-assistant/internal/diary/repository"
	"life-assistant/internal/model"
	pkgLog "life-assistant/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a sqlite-backed diary repository.
func New(db *sql.DB, l pkgLog.Logger) *implRepository {
	return &implRepository{db: db, l: l}
}

func (r *implRepository) Insert(ctx context.Context, entry model.DiaryEntry) (model.DiaryEntry, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO diary_entries(id,date,content,mood) VALUES (?,?,?,?)`,
		entry.ID, entry.Date, entry.Content, entry.Mood)
	if err != nil {
		return model.DiaryEntry{}, err
	}
	return entry, nil
}
