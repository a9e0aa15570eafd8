package datephrase

import (
	"fmt"
	"strings"
	"time"
)

// DateFormat is the canonical day format used across the service.
const DateFormat = "2006-01-02"

// Resolver converts Chinese relative-date phrases to absolute dates and
// day-level ranges. All methods take an explicit base time so behavior is
// deterministic under test; weeks anchor at Monday.
type Resolver struct {
	location *time.Location
}

// NewResolver creates a resolver for the given IANA timezone string,
// e.g. "Asia/Shanghai".
func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

var weekdayNames = []struct {
	name   string
	offset int // days after Monday
}{
	{"一", 0},
	{"二", 1},
	{"三", 2},
	{"四", 3},
	{"五", 4},
	{"六", 5},
	{"日", 6},
	{"天", 6},
}

// ResolveDate converts a relative date phrase to the start of the matching
// day. Unrecognized phrases resolve to the base day itself.
func (r *Resolver) ResolveDate(phrase string, base time.Time) time.Time {
	phrase = strings.TrimSpace(phrase)

	switch phrase {
	case "今天", "今日":
		return r.startOfDay(base)
	case "明天":
		return r.startOfDay(base.AddDate(0, 0, 1))
	case "后天":
		return r.startOfDay(base.AddDate(0, 0, 2))
	case "昨天":
		return r.startOfDay(base.AddDate(0, 0, -1))
	case "前天":
		return r.startOfDay(base.AddDate(0, 0, -2))
	}

	// "下周X": always a day in the following Monday-anchored week, even when
	// the named weekday has not yet passed this week.
	for _, prefix := range []string{"下周", "下星期", "下礼拜"} {
		if rest, ok := strings.CutPrefix(phrase, prefix); ok {
			if offset, ok := weekdayOffset(rest); ok {
				nextMonday := r.mondayOf(base).AddDate(0, 0, 7)
				return nextMonday.AddDate(0, 0, offset)
			}
		}
	}

	// "周X"/"星期X"/"礼拜X": this week, rolling to next week when the named
	// day is already behind the base day.
	for _, prefix := range []string{"这周", "本周", "周", "星期", "礼拜"} {
		if rest, ok := strings.CutPrefix(phrase, prefix); ok {
			if offset, ok := weekdayOffset(rest); ok {
				day := r.mondayOf(base).AddDate(0, 0, offset)
				if day.Before(r.startOfDay(base)) {
					day = day.AddDate(0, 0, 7)
				}
				return day
			}
		}
	}

	if t, err := time.ParseInLocation(DateFormat, phrase, r.location); err == nil {
		return t
	}

	return r.startOfDay(base)
}

// ResolveRange converts a period phrase to an inclusive day range.
// Unrecognized phrases default to "this month so far": the first of the
// month through the base day.
func (r *Resolver) ResolveRange(phrase string, base time.Time) DateRange {
	phrase = strings.TrimSpace(phrase)
	today := r.startOfDay(base)

	switch phrase {
	case "今天", "今日":
		return DateRange{Start: today, End: today}
	case "昨天":
		d := today.AddDate(0, 0, -1)
		return DateRange{Start: d, End: d}
	case "本周", "这周", "这个星期":
		monday := r.mondayOf(base)
		return DateRange{Start: monday, End: monday.AddDate(0, 0, 6)}
	case "上周":
		monday := r.mondayOf(base).AddDate(0, 0, -7)
		return DateRange{Start: monday, End: monday.AddDate(0, 0, 6)}
	case "本月", "这个月", "当月":
		start := r.monthStart(base)
		return DateRange{Start: start, End: start.AddDate(0, 1, -1)}
	case "上月", "上个月":
		start := r.monthStart(base).AddDate(0, -1, 0)
		return DateRange{Start: start, End: start.AddDate(0, 1, -1)}
	case "今年", "本年":
		start := time.Date(base.Year(), 1, 1, 0, 0, 0, 0, r.location)
		return DateRange{Start: start, End: time.Date(base.Year(), 12, 31, 0, 0, 0, 0, r.location)}
	}

	return DateRange{Start: r.monthStart(base), End: today}
}

// MonthEnd returns the last day of the month containing base.
func (r *Resolver) MonthEnd(base time.Time) time.Time {
	return r.monthStart(base).AddDate(0, 1, -1)
}

// QuarterEnd returns the last day of the calendar quarter containing base.
func (r *Resolver) QuarterEnd(base time.Time) time.Time {
	quarter := (int(base.Month()) - 1) / 3
	start := time.Date(base.Year(), time.Month(quarter*3+1), 1, 0, 0, 0, 0, r.location)
	return start.AddDate(0, 3, -1)
}

// YearEnd returns December 31 of the year containing base.
func (r *Resolver) YearEnd(base time.Time) time.Time {
	return time.Date(base.Year(), 12, 31, 0, 0, 0, 0, r.location)
}

func weekdayOffset(name string) (int, bool) {
	for _, w := range weekdayNames {
		if name == w.name {
			return w.offset, true
		}
	}
	return 0, false
}

func (r *Resolver) startOfDay(t time.Time) time.Time {
	t = t.In(r.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.location)
}

func (r *Resolver) monthStart(t time.Time) time.Time {
	t = t.In(r.location)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, r.location)
}

// mondayOf returns the Monday starting the week that contains t.
func (r *Resolver) mondayOf(t time.Time) time.Time {
	day := r.startOfDay(t)
	weekday := int(day.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	return day.AddDate(0, 0, -(weekday - 1))
}
