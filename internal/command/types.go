package command

import "life-assistant/internal/model"

// Intent is a parsed, structured representation of a user's natural-language
// command. It is a closed set: every variant lives in this package and the
// executor must handle all of them. Fields are optional (pointers or zero
// values) because the upstream NLU may fail to extract them; absence is a
// valid state, not an error.
type Intent interface {
	isIntent()
}

// TimeTrackAction is the 4-state time tracking action.
type TimeTrackAction string

const (
	TimeTrackStart  TimeTrackAction = "START"
	TimeTrackStop   TimeTrackAction = "STOP"
	TimeTrackPause  TimeTrackAction = "PAUSE"
	TimeTrackResume TimeTrackAction = "RESUME"
)

// GoalAction is the operation requested on a goal.
type GoalAction string

const (
	GoalCreate  GoalAction = "CREATE"
	GoalUpdate  GoalAction = "UPDATE"
	GoalCheck   GoalAction = "CHECK"
	GoalDeposit GoalAction = "DEPOSIT"
)

// SavingsAction is the operation requested on savings.
type SavingsAction string

const (
	SavingsDeposit  SavingsAction = "DEPOSIT"
	SavingsWithdraw SavingsAction = "WITHDRAW"
	SavingsCheck    SavingsAction = "CHECK"
)

// QueryType is the closed set of read-only queries.
type QueryType string

const (
	QueryTodayExpense    QueryType = "TODAY_EXPENSE"
	QueryMonthExpense    QueryType = "MONTH_EXPENSE"
	QueryMonthIncome     QueryType = "MONTH_INCOME"
	QueryCategoryExpense QueryType = "CATEGORY_EXPENSE"
	QueryHabitStreak     QueryType = "HABIT_STREAK"
	QueryGoalProgress    QueryType = "GOAL_PROGRESS"
	QuerySavingsProgress QueryType = "SAVINGS_PROGRESS"
	// Stubbed query types: recognized but answered with a fixed
	// "in development" message.
	QueryTodoToday QueryType = "TODO_TODAY"
	QueryTimeStats QueryType = "TIME_STATS"
)

// TransactionIntent records an expense or income.
type TransactionIntent struct {
	Amount       *float64
	Type         model.TransactionType
	CategoryID   *int64
	CategoryName string
	Date         string // date phrase or YYYY-MM-DD; empty means today
	Time         string // HH:MM; empty means now
	Note         string
}

// TodoIntent creates a todo item.
type TodoIntent struct {
	Title    string
	Priority string // free-text or numeric indicator, mapped to model.Priority
	DueDate  string // date phrase or YYYY-MM-DD
	DueTime  string // HH:MM
	Quadrant string // Eisenhower tag; invalid values are dropped
}

// DiaryIntent writes a diary entry.
type DiaryIntent struct {
	Content  string
	Date     string // date phrase or YYYY-MM-DD; empty means today
	MoodText string // free-text mood, mapped to a 1..5 score
}

// HabitCheckinIntent checks in a habit for a day.
type HabitCheckinIntent struct {
	HabitName string
	Date      string // empty means today
	Value     *float64
}

// TimeTrackIntent starts/stops/pauses/resumes time tracking.
type TimeTrackIntent struct {
	Action   TimeTrackAction
	Activity string
}

// NavigateIntent asks the caller to open a screen.
type NavigateIntent struct {
	Destination string
}

// QueryIntent is a read-only aggregate question.
type QueryIntent struct {
	Type         QueryType
	CategoryName string
	HabitName    string
	Period       string // period phrase, e.g. 本月; empty means month-to-date
}

// GoalIntent creates or updates a goal.
type GoalIntent struct {
	Action          GoalAction
	Name            string
	ProgressPercent *float64
	Amount          *float64 // for DEPOSIT
}

// SavingsIntent deposits to or withdraws from savings.
type SavingsIntent struct {
	Action SavingsAction
	Amount *float64
}

// MultipleIntent is a composite of child intents executed in order.
type MultipleIntent struct {
	Children []Intent
}

// UnknownIntent carries text the NLU could not classify.
type UnknownIntent struct {
	OriginalText string
}

func (TransactionIntent) isIntent()  {}
func (TodoIntent) isIntent()         {}
func (DiaryIntent) isIntent()        {}
func (HabitCheckinIntent) isIntent() {}
func (TimeTrackIntent) isIntent()    {}
func (NavigateIntent) isIntent()     {}
func (QueryIntent) isIntent()        {}
func (GoalIntent) isIntent()         {}
func (SavingsIntent) isIntent()      {}
func (MultipleIntent) isIntent()     {}
func (UnknownIntent) isIntent()      {}
