package executor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"life-assistant/internal/command"
	"life-assistant/internal/model"
	"life-assistant/pkg/datephrase"
	"life-assistant/pkg/gcalendar"
)

// priorityTable maps free-text or numeric priority indicators to the fixed
// 4-level enum. Ordered; first match wins; no match falls through to NONE.
var priorityTable = []struct {
	keywords []string
	priority model.Priority
}{
	{[]string{"高", "重要", "紧急", "1", "high"}, model.PriorityHigh},
	{[]string{"中", "一般", "2", "medium"}, model.PriorityMedium},
	{[]string{"低", "不急", "3", "low"}, model.PriorityLow},
}

func mapPriority(text string) model.Priority {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return model.PriorityNone
	}
	for _, entry := range priorityTable {
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				return entry.priority
			}
		}
	}
	return model.PriorityNone
}

func (e *Executor) executeTodo(ctx context.Context, it command.TodoIntent) command.Result {
	if strings.TrimSpace(it.Title) == "" {
		return command.NeedMoreInfo{
			Intent:        it,
			MissingFields: []string{"title"},
			Prompt:        MsgTitlePrompt,
		}
	}

	now := e.now()
	todo := model.Todo{
		Title:    strings.TrimSpace(it.Title),
		Priority: mapPriority(it.Priority),
		Source:   model.SourceVoice,
	}

	if it.DueDate != "" {
		due := e.dates.ResolveDate(it.DueDate, now).Format(datephrase.DateFormat)
		todo.DueDate = &due
	}
	if it.DueTime != "" {
		t := it.DueTime
		todo.DueTime = &t
	}

	// Quadrant tags outside the four known values are dropped, not stored.
	if model.ValidQuadrant(it.Quadrant) {
		q := model.Quadrant(it.Quadrant)
		todo.Quadrant = &q
	}

	created, err := e.todos.Insert(ctx, todo)
	if err != nil {
		e.l.Errorf(ctx, "%s: todo insert failed: %v", LogPrefixExecute, err)
		return command.Failure{Message: MsgExecutionFailed}
	}

	calendarLink := e.tryCreateCalendarEvent(ctx, created)

	data := map[string]any{
		"todo_id":  created.ID,
		"priority": string(created.Priority),
	}
	if calendarLink != "" {
		data["calendar_link"] = calendarLink
	}
	return command.Success{
		Message: fmt.Sprintf("已添加待办：%s", created.Title),
		Data:    data,
	}
}

// tryCreateCalendarEvent mirrors a todo with a due date into the calendar.
// Returns the event link, or empty string on failure or when no calendar is
// configured; failures never fail the todo itself.
func (e *Executor) tryCreateCalendarEvent(ctx context.Context, todo model.Todo) string {
	if e.calendar == nil || todo.DueDate == nil {
		return ""
	}

	loc, err := time.LoadLocation(e.timezone)
	if err != nil {
		loc = time.Local
	}

	clock := "09:00"
	if todo.DueTime != nil {
		clock = *todo.DueTime
	}
	start, err := time.ParseInLocation("2006-01-02 15:04", *todo.DueDate+" "+clock, loc)
	if err != nil {
		e.l.Warnf(ctx, "%s: bad due date/time for calendar event: %v", LogPrefixExecute, err)
		return ""
	}

	event, err := e.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID: e.calendarID,
		Summary:    todo.Title,
		StartTime:  start,
		EndTime:    start.Add(DefaultEventMinutes * time.Minute),
		Timezone:   e.timezone,
	})
	if err != nil {
		e.l.Warnf(ctx, "%s: calendar event creation failed (non-fatal): %v", LogPrefixExecute, err)
		return ""
	}
	return event.HtmlLink
}
