package sqlite

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"life-assistant/internal/model"
	"life-assistant/internal/todo/repository"
	pkgLog "life-assistant/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a sqlite-backed todo repository.
func New(db *sql.DB, l pkgLog.Logger) *implRepository {
	return &implRepository{db: db, l: l}
}

func (r *implRepository) Insert(ctx context.Context, todo model.Todo) (model.Todo, error) {
	if todo.ID == "" {
		todo.ID = uuid.NewString()
	}
	if todo.Priority == "" {
		todo.Priority = model.PriorityNone
	}

	var quadrant sql.NullString
	if todo.Quadrant != nil {
		quadrant = sql.NullString{String: string(*todo.Quadrant), Valid: true}
	}
	var dueDate, dueTime sql.NullString
	if todo.DueDate != nil {
		dueDate = sql.NullString{String: *todo.DueDate, Valid: true}
	}
	if todo.DueTime != nil {
		dueTime = sql.NullString{String: *todo.DueTime, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO todos(id,title,priority,due_date,due_time,quadrant,done,source)
		 VALUES (?,?,?,?,?,?,?,?)`,
		todo.ID, todo.Title, string(todo.Priority), dueDate, dueTime, quadrant, todo.Done, todo.Source)
	if err != nil {
		return model.Todo{}, err
	}
	return todo, nil
}
