package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"life-assistant/internal/habit/repository"
	"life-assistant/internal/model"
	pkgLog "life-assistant/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a sqlite-backed habit repository.
func New(db *sql.DB, l pkgLog.Logger) *implRepository {
	return &implRepository{db: db, l: l}
}

func (r *implRepository) CreateHabit(ctx context.Context, habit model.Habit) (model.Habit, error) {
	if habit.ID == "" {
		habit.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO habits(id,name,active) VALUES (?,?,?)`,
		habit.ID, habit.Name, habit.Active)
	if err != nil {
		return model.Habit{}, err
	}
	return habit, nil
}

func (r *implRepository) GetActiveHabits(ctx context.Context) ([]model.Habit, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id,name,active FROM habits WHERE active=1 ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []model.Habit
	for rows.Next() {
		var h model.Habit
		if err := rows.Scan(&h.ID, &h.Name, &h.Active); err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (r *implRepository) GetRecordByHabitAndDate(ctx context.Context, habitID, date string) (model.HabitRecord, error) {
	var rec model.HabitRecord
	var value sql.NullFloat64
	err := r.db.QueryRowContext(ctx,
		`SELECT id,habit_id,date,completed,value FROM habit_records WHERE habit_id=? AND date=?`,
		habitID, date).Scan(&rec.ID, &rec.HabitID, &rec.Date, &rec.Completed, &value)
	if errors.Is(err, sql.ErrNoRows) {
		return model.HabitRecord{}, repository.ErrRecordNotFound
	}
	if err != nil {
		return model.HabitRecord{}, err
	}
	if value.Valid {
		rec.Value = &value.Float64
	}
	return rec, nil
}

func (r *implRepository) InsertRecord(ctx context.Context, record model.HabitRecord) (model.HabitRecord, error) {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	var value sql.NullFloat64
	if record.Value != nil {
		value = sql.NullFloat64{Float64: *record.Value, Valid: true}
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO habit_records(id,habit_id,date,completed,value) VALUES (?,?,?,?,?)`,
		record.ID, record.HabitID, record.Date, record.Completed, value)
	if err != nil {
		return model.HabitRecord{}, err
	}
	return record, nil
}

func (r *implRepository) UpdateRecord(ctx context.Context, record model.HabitRecord) (model.HabitRecord, error) {
	var value sql.NullFloat64
	if record.Value != nil {
		value = sql.NullFloat64{Float64: *record.Value, Valid: true}
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE habit_records SET completed=?, value=? WHERE id=?`,
		record.Completed, value, record.ID)
	if err != nil {
		return model.HabitRecord{}, err
	}
	return record, nil
}
