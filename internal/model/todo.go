package model

// Priority is the fixed 4-level todo priority.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
	PriorityNone   Priority = "NONE"
)

// Quadrant is the Eisenhower-matrix classification of a todo.
// Exactly these four values are valid; anything else is dropped to unset.
type Quadrant string

const (
	QuadrantUrgentImportant       Quadrant = "URGENT_IMPORTANT"
	QuadrantUrgentNotImportant    Quadrant = "URGENT_NOT_IMPORTANT"
	QuadrantNotUrgentImportant    Quadrant = "NOT_URGENT_IMPORTANT"
	QuadrantNotUrgentNotImportant Quadrant = "NOT_URGENT_NOT_IMPORTANT"
)

// ValidQuadrant reports whether q is one of the four known quadrant tags.
func ValidQuadrant(q string) bool {
	switch Quadrant(q) {
	case QuadrantUrgentImportant, QuadrantUrgentNotImportant,
		QuadrantNotUrgentImportant, QuadrantNotUrgentNotImportant:
		return true
	}
	return false
}

// Todo is a single todo item.
type Todo struct {
	ID       string
	Title    string
	Priority Priority
	DueDate  *string // YYYY-MM-DD
	DueTime  *string // HH:MM
	Quadrant *Quadrant
	Done     bool
	Source   string
}
