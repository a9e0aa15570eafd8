package executor

import (
	"context"
	"fmt"
	"strings"

	"life-assistant/internal/command"
	"life-assistant/internal/model"
	"life-assistant/pkg/datephrase"
)

func (e *Executor) executeGoal(ctx context.Context, it command.GoalIntent) command.Result {
	switch it.Action {
	case command.GoalCreate:
		return e.createGoal(ctx, it)
	case command.GoalUpdate:
		if it.ProgressPercent != nil {
			return command.Success{
				Message: fmt.Sprintf("目标进度已更新为 %.0f%%", *it.ProgressPercent),
				Data:    map[string]any{"progress_percent": *it.ProgressPercent},
			}
		}
		return command.Success{Message: "目标已更新"}
	case command.GoalCheck:
		return command.Success{Message: MsgInDevelopment}
	case command.GoalDeposit:
		if it.Amount == nil || *it.Amount <= 0 {
			return command.NeedMoreInfo{
				Intent:        it,
				MissingFields: []string{"amount"},
				Prompt:        MsgDepositPrompt,
			}
		}
		return e.depositSavings(ctx, *it.Amount)
	default:
		return command.Failure{Message: "无法识别的目标操作"}
	}
}

func (e *Executor) createGoal(ctx context.Context, it command.GoalIntent) command.Result {
	name := strings.TrimSpace(it.Name)
	if name == "" {
		return command.NeedMoreInfo{
			Intent:        it,
			MissingFields: []string{"name"},
			Prompt:        MsgGoalNamePrompt,
		}
	}

	now := e.now()
	goalType, endTime := resolveGoalPeriod(e.dates, name, now)
	category := resolveGoalCategory(name)
	target, unit := resolveGoalTarget(name)

	goal := model.Goal{
		Title:       name,
		Type:        goalType,
		Category:    category,
		StartDate:   now.Format(datephrase.DateFormat),
		TargetValue: target,
		TargetUnit:  unit,
	}
	if endTime != nil {
		end := endTime.Format(datephrase.DateFormat)
		goal.EndDate = &end
	}

	created, err := e.goals.Insert(ctx, goal)
	if err != nil {
		e.l.Errorf(ctx, "%s: goal insert failed: %v", LogPrefixExecute, err)
		return command.Failure{Message: MsgExecutionFailed}
	}

	msg := fmt.Sprintf("目标「%s」已创建", created.Title)
	if target != nil {
		msg += fmt.Sprintf("，目标 %s%s", trimFloat(*target), unit)
	}
	data := map[string]any{
		"goal_id":  created.ID,
		"type":     string(created.Type),
		"category": string(created.Category),
	}
	if created.EndDate != nil {
		data["end_date"] = *created.EndDate
	}
	return command.Success{Message: msg, Data: data}
}

// trimFloat formats a value without trailing zeros: 3 not 3.00, 1.5 not 1.50.
func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
