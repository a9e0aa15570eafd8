package executor

import (
	"context"
	"fmt"

	"life-assistant/internal/command"
	"life-assistant/internal/model"
	"life-assistant/pkg/datephrase"
)

func (e *Executor) executeSavings(ctx context.Context, it command.SavingsIntent) command.Result {
	switch it.Action {
	case command.SavingsDeposit:
		if it.Amount == nil || *it.Amount <= 0 {
			return command.NeedMoreInfo{
				Intent:        it,
				MissingFields: []string{"amount"},
				Prompt:        MsgDepositPrompt,
			}
		}
		return e.depositSavings(ctx, *it.Amount)
	case command.SavingsWithdraw:
		if it.Amount == nil || *it.Amount <= 0 {
			return command.NeedMoreInfo{
				Intent:        it,
				MissingFields: []string{"amount"},
				Prompt:        MsgWithdrawPrompt,
			}
		}
		return e.withdrawSavings(ctx, *it.Amount)
	case command.SavingsCheck:
		return command.Success{Message: MsgInDevelopment}
	default:
		return command.Failure{Message: "无法识别的储蓄操作"}
	}
}

func (e *Executor) depositSavings(ctx context.Context, amount float64) command.Result {
	rec, err := e.goals.InsertSavingsRecord(ctx, model.SavingsRecord{
		Amount: amount,
		Date:   e.now().Format(datephrase.DateFormat),
	})
	if err != nil {
		e.l.Errorf(ctx, "%s: savings deposit failed: %v", LogPrefixExecute, err)
		return command.Failure{Message: MsgExecutionFailed}
	}
	return command.Success{
		Message: fmt.Sprintf("已存入 %s%.2f", CurrencySymbol, amount),
		Data:    map[string]any{"record_id": rec.ID, "amount": amount},
	}
}

func (e *Executor) withdrawSavings(ctx context.Context, amount float64) command.Result {
	rec, err := e.goals.InsertSavingsRecord(ctx, model.SavingsRecord{
		Amount: -amount,
		Date:   e.now().Format(datephrase.DateFormat),
	})
	if err != nil {
		e.l.Errorf(ctx, "%s: savings withdrawal failed: %v", LogPrefixExecute, err)
		return command.Failure{Message: MsgExecutionFailed}
	}
	return command.Success{
		Message: fmt.Sprintf("已取出 %s%.2f", CurrencySymbol, amount),
		Data:    map[string]any{"record_id": rec.ID, "amount": amount},
	}
}
