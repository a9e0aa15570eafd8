package sqlite

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"life-assistant/internal/model"
	"life-assistant/internal/transaction/repository"
	pkgLog "life-assistant/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a sqlite-backed transaction repository.
func New(db *sql.DB, l pkgLog.Logger) *implRepository {
	return &implRepository{db: db, l: l}
}

func (r *implRepository) Insert(ctx context.Context, tx model.Transaction) (model.Transaction, error) {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}

	var categoryID sql.NullInt64
	if tx.CategoryID != nil {
		categoryID = sql.NullInt64{Int64: *tx.CategoryID, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions(id,amount,type,category_id,category_name,date,time,note,source)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		tx.ID, tx.Amount, string(tx.Type), categoryID, tx.CategoryName, tx.Date, tx.Time, tx.Note, tx.Source)
	if err != nil {
		return model.Transaction{}, err
	}
	return tx, nil
}

func (r *implRepository) SumByType(ctx context.Context, typ model.TransactionType, opt repository.RangeOptions) (float64, error) {
	var total sql.NullFloat64
	err := r.db.QueryRowContext(ctx,
		`SELECT SUM(amount) FROM transactions WHERE type=? AND date>=? AND date<=?`,
		string(typ), opt.StartDate, opt.EndDate).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total.Float64, nil
}

func (r *implRepository) SumByCategory(ctx context.Context, categoryName string, opt repository.RangeOptions) (float64, error) {
	var total sql.NullFloat64
	err := r.db.QueryRowContext(ctx,
		`SELECT SUM(amount) FROM transactions WHERE type=? AND category_name=? AND date>=? AND date<=?`,
		string(model.TransactionExpense), categoryName, opt.StartDate, opt.EndDate).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total.Float64, nil
}
