package executor

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"life-assistant/internal/model"
	"life-assistant/pkg/datephrase"
)

// The goal heuristics below are explicit ordered lists evaluated in fixed
// sequence: the first entry that matches wins. Keeping them as slices (never
// maps) is what guarantees the tie-break contract.

// periodEntry scans a goal name for a period keyword.
type periodEntry struct {
	keywords []string
	goalType model.GoalType
	endDate  func(r *datephrase.Resolver, base time.Time) time.Time
}

var periodTable = []periodEntry{
	{[]string{"这个月", "本月"}, model.GoalMonthly, (*datephrase.Resolver).MonthEnd},
	{[]string{"这个季度", "本季度"}, model.GoalQuarterly, (*datephrase.Resolver).QuarterEnd},
	{[]string{"今年", "本年", "这一年"}, model.GoalYearly, (*datephrase.Resolver).YearEnd},
}

// resolveGoalPeriod derives the period type and end date from the goal name.
// Names without a period keyword are long-term goals with no end date.
func resolveGoalPeriod(r *datephrase.Resolver, name string, base time.Time) (model.GoalType, *time.Time) {
	for _, entry := range periodTable {
		for _, kw := range entry.keywords {
			if strings.Contains(name, kw) {
				end := entry.endDate(r, base)
				return entry.goalType, &end
			}
		}
	}
	return model.GoalLongTerm, nil
}

// goalCategoryTable maps goal-name keywords to a category. Ordered: the
// first matching category in table order wins.
var goalCategoryTable = []struct {
	keywords []string
	category model.GoalCategory
}{
	{[]string{"减肥", "瘦", "体重", "跑", "锻炼", "健身", "运动", "早睡", "早起"}, model.GoalCategoryHealth},
	{[]string{"存", "钱", "元", "万", "攒", "理财", "储蓄"}, model.GoalCategoryFinance},
	{[]string{"读", "书", "学", "课", "背", "单词", "考", "证"}, model.GoalCategoryLearning},
	{[]string{"工作", "升职", "晋升", "项目", "职业", "副业"}, model.GoalCategoryCareer},
}

func resolveGoalCategory(name string) model.GoalCategory {
	for _, entry := range goalCategoryTable {
		for _, kw := range entry.keywords {
			if strings.Contains(name, kw) {
				return entry.category
			}
		}
	}
	return model.GoalCategoryLifestyle
}

// targetPattern extracts a numeric target and unit from a goal name.
type targetPattern struct {
	re   *regexp.Regexp
	unit func(match []string, original string) string
}

// targetTable is tried in order; the first pattern that matches wins. The
// 万 multiplier is applied before unit assignment. The final generic pattern
// matches any bare number and sniffs the unit from the original text.
var targetTable = []targetPattern{
	{
		re: regexp.MustCompile(`(\d+(?:\.\d+)?)(公斤|kg|斤)`),
		unit: func(match []string, _ string) string {
			if match[2] == "kg" {
				return "公斤"
			}
			return match[2]
		},
	},
	{
		re: regexp.MustCompile(`(\d+(?:\.\d+)?)(公里|千米|km)`),
		unit: func(match []string, _ string) string {
			if match[2] == "km" {
				return "公里"
			}
			return match[2]
		},
	},
	{
		re:   regexp.MustCompile(`(\d+(?:\.\d+)?)(万)?(元|块)`),
		unit: func([]string, string) string { return "元" },
	},
	{
		re: regexp.MustCompile(`(\d+(?:\.\d+)?)(万)?`),
		unit: func(_ []string, original string) string {
			switch {
			case strings.Contains(original, "书"), strings.Contains(original, "本"):
				return "本"
			case strings.Contains(original, "天"):
				return "天"
			case strings.Contains(original, "次"):
				return "次"
			default:
				return "个"
			}
		},
	},
}

// resolveGoalTarget extracts an optional numeric target and unit from the
// goal name. The result is never negative; names without a number yield no
// target at all.
func resolveGoalTarget(name string) (*float64, string) {
	for _, pattern := range targetTable {
		match := pattern.re.FindStringSubmatch(name)
		if match == nil {
			continue
		}

		value, err := strconv.ParseFloat(match[1], 64)
		if err != nil || value < 0 {
			continue
		}
		// 万 multiplier applies before the unit is assigned.
		for _, group := range match[2:] {
			if group == "万" {
				value *= 10000
			}
		}
		return &value, pattern.unit(match, name)
	}
	return nil, ""
}
