package executor

import (
	"context"
	"fmt"
	"strings"

	"life-assistant/internal/command"
	"life-assistant/internal/model"
	"life-assistant/pkg/datephrase"
)

// moodTable maps mood text to a score in [1,5]. Ordered; first match wins.
// More specific phrases come before the plain words they contain, so
// "非常开心" scores 5 before "开心" can score 4, and "不开心" scores 2
// before "开心" is considered.
var moodTable = []struct {
	keyword string
	score   int
}{
	{"非常开心", 5},
	{"特别开心", 5},
	{"超开心", 5},
	{"兴奋", 5},
	{"棒极了", 5},
	{"很难过", 1},
	{"难过", 1},
	{"伤心", 1},
	{"痛苦", 1},
	{"沮丧", 1},
	{"糟糕", 1},
	{"想哭", 1},
	{"不开心", 2},
	{"不太好", 2},
	{"郁闷", 2},
	{"烦躁", 2},
	{"疲惫", 2},
	{"开心", 4},
	{"高兴", 4},
	{"愉快", 4},
	{"不错", 4},
	{"满足", 4},
}

// mapMoodScore maps free-text mood to a score in the closed range [1,5].
// Unrecognized text is neutral (3) — never zero, never out of range.
func mapMoodScore(text string) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.MoodNeutral
	}
	for _, entry := range moodTable {
		if strings.Contains(text, entry.keyword) {
			return entry.score
		}
	}
	return model.MoodNeutral
}

func (e *Executor) executeDiary(ctx context.Context, it command.DiaryIntent) command.Result {
	if strings.TrimSpace(it.Content) == "" {
		return command.NeedMoreInfo{
			Intent:        it,
			MissingFields: []string{"content"},
			Prompt:        MsgContentPrompt,
		}
	}

	now := e.now()
	date := it.Date
	if date == "" {
		date = now.Format(datephrase.DateFormat)
	} else {
		date = e.dates.ResolveDate(date, now).Format(datephrase.DateFormat)
	}

	mood := mapMoodScore(it.MoodText)
	entry, err := e.diary.Insert(ctx, model.DiaryEntry{
		Date:    date,
		Content: strings.TrimSpace(it.Content),
		Mood:    mood,
	})
	if err != nil {
		e.l.Errorf(ctx, "%s: diary insert failed: %v", LogPrefixExecute, err)
		return command.Failure{Message: MsgExecutionFailed}
	}

	return command.Success{
		Message: fmt.Sprintf("日记已保存，心情指数 %d/5", mood),
		Data: map[string]any{
			"entry_id": entry.ID,
			"date":     entry.Date,
			"mood":     mood,
		},
	}
}
