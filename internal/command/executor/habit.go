package executor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"life-assistant/internal/command"
	habitRepo "life-assistant/internal/habit/repository"
	"life-assistant/internal/model"
	"life-assistant/pkg/datephrase"
)

// executeHabitCheckin checks in a habit for a day. Check-ins are idempotent
// per (habit, date): an already-checked day returns Success flagged
// already_checked without writing a second record.
func (e *Executor) executeHabitCheckin(ctx context.Context, it command.HabitCheckinIntent) command.Result {
	habits, err := e.habits.GetActiveHabits(ctx)
	if err != nil {
		e.l.Errorf(ctx, "%s: load habits failed: %v", LogPrefixExecute, err)
		return command.Failure{Message: MsgExecutionFailed}
	}
	if len(habits) == 0 {
		// No amount of field-filling resolves this, so it is a Failure
		// rather than NeedMoreInfo.
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

	now := e.now()
	date := it.Date
	if date == "" {
		date = now.Format(datephrase.DateFormat)
	} else {
		date = e.dates.ResolveDate(date, now).Format(datephrase.DateFormat)
	}

	rec, err := e.habits.GetRecordByHabitAndDate(ctx, habit.ID, date)
	switch {
	case err == nil && rec.Completed:
		streak := e.calculateHabitStreak(ctx, habit.ID, date)
		return command.Success{
			Message: fmt.Sprintf("「%s」今天已经打过卡啦，已连续%d天", habit.Name, streak),
			Data: map[string]any{
				"habit_id":        habit.ID,
				"already_checked": true,
				"streak":          streak,
			},
		}
	case err == nil:
		// The day has a record but it was never completed (a planned or
		// reset day). Complete it rather than reporting already-checked.
		rec.Completed = true
		if it.Value != nil {
			rec.Value = it.Value
		}
		if _, err := e.habits.UpdateRecord(ctx, rec); err != nil {
			e.l.Errorf(ctx, "%s: habit record update failed: %v", LogPrefixExecute, err)
			return command.Failure{Message: MsgExecutionFailed}
		}
		streak := e.calculateHabitStreak(ctx, habit.ID, date)
		return command.Success{
			Message: fmt.Sprintf("「%s」打卡成功，已连续%d天", habit.Name, streak),
			Data: map[string]any{
				"habit_id":        habit.ID,
				"already_checked": false,
				"streak":          streak,
			},
		}
	case errors.Is(err, habitRepo.ErrRecordNotFound):
		// fall through to write the record
	default:
		e.l.Errorf(ctx, "%s: habit record lookup failed: %v", LogPrefixExecute, err)
		return command.Failure{Message: MsgExecutionFailed}
	}

	_, err = e.habits.InsertRecord(ctx, model.HabitRecord{
		HabitID:   habit.ID,
		Date:      date,
		Completed: true,
		Value:     it.Value,
	})
	if err != nil {
		e.l.Errorf(ctx, "%s: habit record insert failed: %v", LogPrefixExecute, err)
		return command.Failure{Message: MsgExecutionFailed}
	}

	streak := e.calculateHabitStreak(ctx, habit.ID, date)
	return command.Success{
		Message: fmt.Sprintf("「%s」打卡成功，已连续%d天", habit.Name, streak),
		Data: map[string]any{
			"habit_id":        habit.ID,
			"already_checked": false,
			"streak":          streak,
		},
	}
}

// habitCandidatesPrompt lists up to MaxHabitCandidates habit names for a
// NeedMoreInfo prompt.
func habitCandidatesPrompt(habits []model.Habit) string {
	names := make([]string, 0, MaxHabitCandidates)
	for _, h := range habits {
		if len(names) == MaxHabitCandidates {
			break
		}
		names = append(names, h.Name)
	}
	return fmt.Sprintf(MsgHabitNotFound, strings.Join(names, "、"))
}

// matchHabit finds the habit the user named: exact match first, then
// bidirectional substring containment, case-insensitive. First match wins;
// there is no ranking.
func matchHabit(habits []model.Habit, name string) (model.Habit, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return model.Habit{}, false
	}

	for _, h := range habits {
		if strings.ToLower(h.Name) == name {
			return h, true
		}
	}
	for _, h := range habits {
		hn := strings.ToLower(h.Name)
		if strings.Contains(hn, name) || strings.Contains(name, hn) {
			return h, true
		}
	}
	return model.Habit{}, false
}

// calculateHabitStreak counts consecutive checked-in days ending at the
// given day, walking backward until the first gap.
func (e *Executor) calculateHabitStreak(ctx context.Context, habitID, endDate string) int {
	day, err := time.Parse(datephrase.DateFormat, endDate)
	if err != nil {
		return 0
	}

	streak := 0
	for {
		rec, err := e.habits.GetRecordByHabitAndDate(ctx, habitID, day.Format(datephrase.DateFormat))
		if errors.Is(err, habitRepo.ErrRecordNotFound) {
			break
		}
		if err != nil {
			e.l.Warnf(ctx, "%s: streak lookup failed at %s: %v", LogPrefixExecute, day.Format(datephrase.DateFormat), err)
			break
		}
		if !rec.Completed {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
