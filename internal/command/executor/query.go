package executor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"life-assistant/internal/command"
	"life-assistant/internal/model"
	txRepo "life-assistant/internal/transaction/repository"
	"life-assistant/pkg/datephrase"
)

// executeQuery dispatches read-only aggregate queries. Recognized but
// unimplemented query types answer with a fixed "in development" message
// instead of an error; that stub policy is deliberate.
func (e *Executor) executeQuery(ctx context.Context, it command.QueryIntent) command.Result {
	now := e.now()

	switch it.Type {
	case command.QueryTodayExpense:
		rng := e.dates.ResolveRange("今天", now)
		return e.sumTransactions(ctx, model.TransactionExpense, rng, "今日支出")
	case command.QueryMonthExpense:
		rng := e.resolvePeriod(it.Period, "本月", now)
		return e.sumTransactions(ctx, model.TransactionExpense, rng, "本月支出")
	case command.QueryMonthIncome:
		rng := e.resolvePeriod(it.Period, "本月", now)
		return e.sumTransactions(ctx, model.TransactionIncome, rng, "本月收入")
	case command.QueryCategoryExpense:
		return e.sumCategoryExpense(ctx, it, now)
	case command.QueryHabitStreak:
		return e.queryHabitStreak(ctx, it, now)
	case command.QueryGoalProgress:
		return e.queryGoalProgress(ctx)
	case command.QuerySavingsProgress:
		return e.querySavingsProgress(ctx)
	default:
		return command.Success{Message: MsgInDevelopment}
	}
}

func (e *Executor) resolvePeriod(phrase, fallback string, now time.Time) datephrase.DateRange {
	if phrase == "" {
		phrase = fallback
	}
	return e.dates.ResolveRange(phrase, now)
}

func (e *Executor) sumTransactions(ctx context.Context, typ model.TransactionType, rng datephrase.DateRange, label string) command.Result {
	total, err := e.transactions.SumByType(ctx, typ, txRepo.RangeOptions{
		StartDate: rng.Start.Format(datephrase.DateFormat),
		EndDate:   rng.End.Format(datephrase.DateFormat),
	})
	if err != nil {
		e.l.Errorf(ctx, "%s: sum query failed: %v", LogPrefixExecute, err)
		return command.Failure{Message: MsgExecutionFailed}
	}
	return command.Success{
		Message: fmt.Sprintf("%s %s%.2f", label, CurrencySymbol, total),
		Data:    map[string]any{"total": total},
	}
}

func (e *Executor) sumCategoryExpense(ctx context.Context, it command.QueryIntent, now time.Time) command.Result {
	if strings.TrimSpace(it.CategoryName) == "" {
		return command.NeedMoreInfo{
			Intent:        it,
			MissingFields: []string{"category"},
			Prompt:        MsgCategoryPrompt,
		}
	}

	rng := e.resolvePeriod(it.Period, "", now)
	total, err := e.transactions.SumByCategory(ctx, it.CategoryName, txRepo.RangeOptions{
		StartDate: rng.Start.Format(datephrase.DateFormat),
		EndDate:   rng.End.Format(datephrase.DateFormat),
	})
	if err != nil {
		e.l.Errorf(ctx, "%s: category sum failed: %v", LogPrefixExecute, err)
		return command.Failure{Message: MsgExecutionFailed}
	}
	return command.Success{
		Message: fmt.Sprintf("「%s」支出 %s%.2f", it.CategoryName, CurrencySymbol, total),
		Data:    map[string]any{"category": it.CategoryName, "total": total},
	}
}

func (e *Executor) queryHabitStreak(ctx context.Context, it command.QueryIntent, now time.Time) command.Result {
	habits, err := e.habits.GetActiveHabits(ctx)
	if err != nil {
		e.l.Errorf(ctx, "%s: load habits failed: %v", LogPrefixExecute, err)
		return command.Failure{Message: MsgExecutionFailed}
	}
	if len(habits) == 0 {
		return command.Failure{Message: MsgNoHabits}
	}

	habit, ok := matchHabit(habits, it.HabitName)
	if !ok {
		return command.NeedMoreInfo{
			Intent:        it,
			MissingFields: []string{"habit_name"},
			Prompt:        habitCandidatesPrompt(habits),
		}
	}

	streak := e.calculateHabitStreak(ctx, habit.ID, now.Format(datephrase.DateFormat))
	return command.Success{
		Message: fmt.Sprintf("「%s」当前连续打卡%d天", habit.Name, streak),
		Data:    map[string]any{"habit_id": habit.ID, "streak": streak},
	}
}

func (e *Executor) queryGoalProgress(ctx context.Context) command.Result {
	goals, err := e.goals.ListActive(ctx, e.now().Format(datephrase.DateFormat))
	if err != nil {
		e.l.Errorf(ctx, "%s: list goals failed: %v", LogPrefixExecute, err)
		return command.Failure{Message: MsgExecutionFailed}
	}
	if len(goals) == 0 {
		return command.Success{Message: MsgNoGoals}
	}

	var sb strings.Builder
	for i, g := range goals {
		if i > 0 {
			sb.WriteString("\n")
		}
		if g.TargetValue != nil && *g.TargetValue > 0 {
			percent := g.Progress / *g.TargetValue * 100
			sb.WriteString(fmt.Sprintf("%s：%s/%s%s（%.0f%%）",
				g.Title, trimFloat(g.Progress), trimFloat(*g.TargetValue), g.TargetUnit, percent))
		} else {
			sb.WriteString(fmt.Sprintf("%s：进行中", g.Title))
		}
	}
	return command.Success{
		Message: sb.String(),
		Data:    map[string]any{"goal_count": len(goals)},
	}
}

func (e *Executor) querySavingsProgress(ctx context.Context) command.Result {
	balance, err := e.goals.SavingsBalance(ctx)
	if err != nil {
		e.l.Errorf(ctx, "%s: savings balance failed: %v", LogPrefixExecute, err)
		return command.Failure{Message: MsgExecutionFailed}
	}
	return command.Success{
		Message: fmt.Sprintf("当前已攒 %s%.2f", CurrencySymbol, balance),
		Data:    map[string]any{"balance": balance},
	}
}
