package sqlite

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"life-assistant/internal/goal/repository"
	"life-assistant/internal/model"
	pkgLog "life-assistant/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a sqlite-backed goal repository.
func New(db *sql.DB, l pkgLog.Logger) *implRepository {
	return &implRepository{db: db, l: l}
}

func (r *implRepository) Insert(ctx context.Context, goal model.Goal) (model.Goal, error) {
	if goal.ID == "" {
		goal.ID = uuid.NewString()
	}

	var endDate sql.NullString
	if goal.EndDate != nil {
		endDate = sql.NullString{String: *goal.EndDate, Valid: true}
	}
	var target sql.NullFloat64
	if goal.TargetValue != nil {
		target = sql.NullFloat64{Float64: *goal.TargetValue, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO goals(id,title,type,category,start_date,end_date,target_value,target_unit,progress)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		goal.ID, goal.Title, string(goal.Type), string(goal.Category),
		goal.StartDate, endDate, target, goal.TargetUnit, goal.Progress)
	if err != nil {
		return model.Goal{}, err
	}
	return goal, nil
}

func (r *implRepository) ListActive(ctx context.Context, onDate string) ([]model.Goal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id,title,type,category,start_date,end_date,target_value,target_unit,progress
		 FROM goals WHERE end_date IS NULL OR end_date >= ? ORDER BY start_date DESC`, onDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []model.Goal
	for rows.Next() {
		var g model.Goal
		var endDate sql.NullString
		var target sql.NullFloat64
		if err := rows.Scan(&g.ID, &g.Title, &g.Type, &g.Category, &g.StartDate, &endDate, &target, &g.TargetUnit, &g.Progress); err != nil {
			return nil, err
		}
		if endDate.Valid {
			g.EndDate = &endDate.String
		}
		if target.Valid {
			g.TargetValue = &target.Float64
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (r *implRepository) AddProgress(ctx context.Context, goalID string, delta float64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE goals SET progress = progress + ? WHERE id=?`, delta, goalID)
	return err
}

func (r *implRepository) InsertSavingsRecord(ctx context.Context, rec model.SavingsRecord) (model.SavingsRecord, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO savings_records(id,amount,date,note) VALUES (?,?,?,?)`,
		rec.ID, rec.Amount, rec.Date, rec.Note)
	if err != nil {
		return model.SavingsRecord{}, err
	}
	return rec, nil
}

func (r *implRepository) SavingsBalance(ctx context.Context) (float64, error) {
	var total sql.NullFloat64
	if err := r.db.QueryRowContext(ctx, `SELECT SUM(amount) FROM savings_records`).Scan(&total); err != nil {
		return 0, err
	}
	return total.Float64, nil
}
