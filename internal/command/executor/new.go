package executor

import (
	"context"
	"time"

	"life-assistant/internal/command"
	diaryRepo "life-assistant/internal/diary/repository"
	goalRepo "life-assistant/internal/goal/repository"
	habitRepo "life-assistant/internal/habit/repository"
	todoRepo "life-assistant/internal/todo/repository"
	txRepo "life-assistant/internal/transaction/repository"
	"life-assistant/pkg/datephrase"
	"life-assistant/pkg/gcalendar"
	pkgLog "life-assistant/pkg/log"
)

// CalendarClient is the optional calendar collaborator used to mirror todos
// with due dates. Satisfied by *gcalendar.Client.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// Executor translates command intents into repository side effects and a
// result. Execute is total over the intent set: it never returns a Go error
// and never panics past its boundary; downstream repository errors surface
// as Failure results.
type Executor struct {
	l pkgLog.Logger

	transactions txRepo.Repository
	todos        todoRepo.Repository
	diary        diaryRepo.Repository
	habits       habitRepo.Repository
	goals        goalRepo.Repository

	dates      *datephrase.Resolver
	calendar   CalendarClient // nil disables the calendar mirror
	calendarID string         // empty means the primary calendar
	timezone   string
	now        func() time.Time
}

// Deps is the dependency bag passed to New().
type Deps struct {
	Logger       pkgLog.Logger
	Transactions txRepo.Repository
	Todos        todoRepo.Repository
	Diary        diaryRepo.Repository
	Habits       habitRepo.Repository
	Goals        goalRepo.Repository
	Dates        *datephrase.Resolver
	Calendar     CalendarClient // optional
	CalendarID   string         // optional
	Timezone     string
	Now          func() time.Time // optional; defaults to time.Now
}

// New creates a new command Executor.
func New(deps Deps) *Executor {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	timezone := deps.Timezone
	if timezone == "" {
		timezone = "Asia/Shanghai"
	}
	return &Executor{
		l:            deps.Logger,
		transactions: deps.Transactions,
		todos:        deps.Todos,
		diary:        deps.Diary,
		habits:       deps.Habits,
		goals:        deps.Goals,
		dates:        deps.Dates,
		calendar:     deps.Calendar,
		calendarID:   deps.CalendarID,
		timezone:     timezone,
		now:          now,
	}
}

// Execute runs a single intent to completion. Every variant of the closed
// intent set has a handling branch; Unknown always yields NotRecognized.
func (e *Executor) Execute(ctx context.Context, intent command.Intent) command.Result {
	switch it := intent.(type) {
	case command.TransactionIntent:
		return e.executeTransaction(ctx, it)
	case command.TodoIntent:
		return e.executeTodo(ctx, it)
	case command.DiaryIntent:
		return e.executeDiary(ctx, it)
	case command.HabitCheckinIntent:
		return e.executeHabitCheckin(ctx, it)
	case command.TimeTrackIntent:
		return e.executeTimeTrack(ctx, it)
	case command.NavigateIntent:
		return e.executeNavigate(ctx, it)
	case command.QueryIntent:
		return e.executeQuery(ctx, it)
	case command.GoalIntent:
		return e.executeGoal(ctx, it)
	case command.SavingsIntent:
		return e.executeSavings(ctx, it)
	case command.MultipleIntent:
		return e.executeMultiple(ctx, it)
	case command.UnknownIntent:
		return command.NotRecognized{OriginalText: it.OriginalText}
	default:
		return command.NotRecognized{}
	}
}
