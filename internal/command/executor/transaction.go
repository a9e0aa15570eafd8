package executor

import (
	"context"
	"fmt"

	"life-assistant/internal/command"
	"life-assistant/internal/model"
	"life-assistant/pkg/datephrase"
)

// executeTransaction persists an expense or income record.
// A missing amount never reaches persistence: it short-circuits to
// NeedMoreInfo before any repository call.
func (e *Executor) executeTransaction(ctx context.Context, it command.TransactionIntent) command.Result {
	if it.Amount == nil {
		return command.NeedMoreInfo{
			Intent:        it,
			MissingFields: []string{"amount"},
			Prompt:        MsgAmountPrompt,
		}
	}

	now := e.now()

	typ := it.Type
	if typ == "" {
		typ = model.TransactionExpense
	}

	date := it.Date
	if date == "" {
		date = now.Format(datephrase.DateFormat)
	} else {
		date = e.dates.ResolveDate(date, now).Format(datephrase.DateFormat)
	}

	timeOfDay := it.Time
	if timeOfDay == "" {
		timeOfDay = now.Format("15:04")
	}

	categoryName := it.CategoryName
	if categoryName == "" {
		categoryName = "其他"
	}

	tx, err := e.transactions.Insert(ctx, model.Transaction{
		Amount:       *it.Amount,
		Type:         typ,
		CategoryID:   it.CategoryID,
		CategoryName: categoryName,
		Date:         date,
		Time:         timeOfDay,
		Note:         it.Note,
		Source:       model.SourceVoice,
	})
	if err != nil {
		e.l.Errorf(ctx, "%s: transaction insert failed: %v", LogPrefixExecute, err)
		return command.Failure{Message: MsgExecutionFailed}
	}

	verb := "支出"
	if typ == model.TransactionIncome {
		verb = "收入"
	}
	return command.Success{
		Message: fmt.Sprintf("已记录%s %s%.2f（%s）", verb, CurrencySymbol, tx.Amount, tx.CategoryName),
		Data: map[string]any{
			"transaction_id": tx.ID,
			"amount":         tx.Amount,
			"type":           string(tx.Type),
			"date":           tx.Date,
		},
	}
}
