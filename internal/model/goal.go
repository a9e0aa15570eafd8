package model

// GoalType is the period classification of a goal.
type GoalType string

const (
	GoalMonthly   GoalType = "MONTHLY"
	GoalQuarterly GoalType = "QUARTERLY"
	GoalYearly    GoalType = "YEARLY"
	GoalLongTerm  GoalType = "LONG_TERM"
)

// GoalCategory is the life area a goal belongs to.
type GoalCategory string

const (
	GoalCategoryHealth    GoalCategory = "HEALTH"
	GoalCategoryFinance   GoalCategory = "FINANCE"
	GoalCategoryLearning  GoalCategory = "LEARNING"
	GoalCategoryCareer    GoalCategory = "CAREER"
	GoalCategoryLifestyle GoalCategory = "LIFESTYLE"
)

// Goal is a tracked objective with an optional numeric target.
type Goal struct {
	ID          string
	Title       string
	Type        GoalType
	Category    GoalCategory
	StartDate   string  // YYYY-MM-DD
	EndDate     *string // YYYY-MM-DD, nil for long-term goals
	TargetValue *float64
	TargetUnit  string
	Progress    float64 // in target units
}

// SavingsRecord is a single deposit (positive) or withdrawal (negative).
type SavingsRecord struct {
	ID     string
	Amount float64
	Date   string // YYYY-MM-DD
	Note   string
}
