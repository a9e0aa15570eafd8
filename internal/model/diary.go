package model

// Mood score bounds. Scores always land in [MoodMin, MoodMax];
// unrecognized mood text maps to MoodNeutral.
const (
	MoodMin     = 1
	MoodNeutral = 3
	MoodMax     = 5
)

// DiaryEntry is a dated diary record with a mood score.
type DiaryEntry struct {
	ID      string
	Date    string // YYYY-MM-DD
	Content string
	Mood    int // 1..5
}
