package nlu

import (
	"strings"

	"life-assistant/internal/command"
	"life-assistant/internal/model"
)

// payload is the JSON shape the LLM is instructed to return. One flat struct
// covers every intent type; irrelevant fields stay at their zero value.
type payload struct {
	Intent string `json:"intent"`

	// transaction
	Amount       *float64 `json:"amount,omitempty"`
	Type         string   `json:"type,omitempty"`
	CategoryName string   `json:"category_name,omitempty"`
	Date         string   `json:"date,omitempty"`
	Time         string   `json:"time,omitempty"`
	Note         string   `json:"note,omitempty"`

	// todo
	Title    string `json:"title,omitempty"`
	Priority string `json:"priority,omitempty"`
	DueDate  string `json:"due_date,omitempty"`
	DueTime  string `json:"due_time,omitempty"`
	Quadrant string `json:"quadrant,omitempty"`

	// diary
	Content  string `json:"content,omitempty"`
	MoodText string `json:"mood_text,omitempty"`

	// habit
	HabitName string   `json:"habit_name,omitempty"`
	Value     *float64 `json:"value,omitempty"`

	// time tracking
	Action   string `json:"action,omitempty"`
	Activity string `json:"activity,omitempty"`

	// navigation
	Destination string `json:"destination,omitempty"`

	// query
	QueryType string `json:"query_type,omitempty"`
	Period    string `json:"period,omitempty"`

	// goal
	Name            string   `json:"name,omitempty"`
	ProgressPercent *float64 `json:"progress_percent,omitempty"`

	// multiple
	Children []payload `json:"children,omitempty"`
}

// toIntent converts a payload into a command intent. originalText is carried
// into UnknownIntent so the user sees what was not understood. depth bounds
// recursion through children.
func (p payload) toIntent(originalText string, depth int) command.Intent {
	if depth > MaxNestingDepth {
		return command.UnknownIntent{OriginalText: originalText}
	}

	switch strings.ToLower(strings.TrimSpace(p.Intent)) {
	case "transaction":
		return command.TransactionIntent{
			Amount:       p.Amount,
			Type:         model.TransactionType(strings.ToLower(p.Type)),
			CategoryName: p.CategoryName,
			Date:         p.Date,
			Time:         p.Time,
			Note:         p.Note,
		}
	case "todo":
		return command.TodoIntent{
			Title:    p.Title,
			Priority: p.Priority,
			DueDate:  p.DueDate,
			DueTime:  p.DueTime,
			Quadrant: p.Quadrant,
		}
	case "diary":
		return command.DiaryIntent{
			Content:  p.Content,
			Date:     p.Date,
			MoodText: p.MoodText,
		}
	case "habit_checkin":
		return command.HabitCheckinIntent{
			HabitName: p.HabitName,
			Date:      p.Date,
			Value:     p.Value,
		}
	case "time_track":
		return command.TimeTrackIntent{
			Action:   command.TimeTrackAction(strings.ToUpper(p.Action)),
			Activity: p.Activity,
		}
	case "navigate":
		return command.NavigateIntent{Destination: p.Destination}
	case "query":
		return command.QueryIntent{
			Type:         command.QueryType(strings.ToUpper(p.QueryType)),
			CategoryName: p.CategoryName,
			HabitName:    p.HabitName,
			Period:       p.Period,
		}
	case "goal":
		return command.GoalIntent{
			Action:          command.GoalAction(strings.ToUpper(p.Action)),
			Name:            p.Name,
			ProgressPercent: p.ProgressPercent,
			Amount:          p.Amount,
		}
	case "savings":
		return command.SavingsIntent{
			Action: command.SavingsAction(strings.ToUpper(p.Action)),
			Amount: p.Amount,
		}
	case "multiple":
		if len(p.Children) == 0 {
			return command.UnknownIntent{OriginalText: originalText}
		}
		children := make([]command.Intent, 0, len(p.Children))
		for _, child := range p.Children {
			children = append(children, child.toIntent(originalText, depth+1))
		}
		return command.MultipleIntent{Children: children}
	default:
		return command.UnknownIntent{OriginalText: originalText}
	}
}
