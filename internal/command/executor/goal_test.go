package executor

import (
	"context"
	"testing"

	"life-assistant/internal/command"
	"life-assistant/internal/model"
)

func TestExecute_GoalCreateBlankName(t *testing.T) {
	exec, deps := newTestExecutor(t)

	res := exec.Execute(context.Background(), command.GoalIntent{
		Action: command.GoalCreate,
		Name:   "   ",
	})

	need, ok := res.(command.NeedMoreInfo)
	if !ok {
		t.Fatalf("expected NeedMoreInfo, got %#v", res)
	}
	if len(need.MissingFields) != 1 || need.MissingFields[0] != "name" {
		t.Errorf("missing fields = %v, want [name]", need.MissingFields)
	}
	if len(deps.goals.goals) != 0 {
		t.Error("no goal may be created without a name")
	}
}

func TestExecute_GoalCreateDerivesEverything(t *testing.T) {
	exec, deps := newTestExecutor(t)

	res := exec.Execute(context.Background(), command.GoalIntent{
		Action: command.GoalCreate,
		Name:   "这个月读完3本书",
	})

	if _, ok := res.(command.Success); !ok {
		t.Fatalf("expected Success, got %#v", res)
	}
	if len(deps.goals.goals) != 1 {
		t.Fatalf("expected 1 goal, got %d", len(deps.goals.goals))
	}
	g := deps.goals.goals[0]
	if g.Type != model.GoalMonthly {
		t.Errorf("type = %s, want MONTHLY", g.Type)
	}
	if g.Category != model.GoalCategoryLearning {
		t.Errorf("category = %s, want LEARNING", g.Category)
	}
	if g.EndDate == nil || *g.EndDate != "2025-06-30" {
		t.Errorf("end date = %v, want month end 2025-06-30", g.EndDate)
	}
	if g.TargetValue == nil || *g.TargetValue != 3 {
		t.Errorf("target = %v, want 3", g.TargetValue)
	}
	if g.TargetUnit != "本" {
		t.Errorf("unit = %s, want 本", g.TargetUnit)
	}
}

func TestExecute_GoalCreateLongTerm(t *testing.T) {
	exec, deps := newTestExecutor(t)

	exec.Execute(context.Background(), command.GoalIntent{
		Action: command.GoalCreate,
		Name:   "学会游泳",
	})

	g := deps.goals.goals[0]
	if g.Type != model.GoalLongTerm {
		t.Errorf("type = %s, want LONG_TERM", g.Type)
	}
	if g.EndDate != nil {
		t.Errorf("long-term goal must have no end date, got %v", *g.EndDate)
	}
	if g.Category != model.GoalCategoryLearning {
		t.Errorf("category = %s, want LEARNING for 学", g.Category)
	}
}

func TestExecute_GoalDepositRoutesToSavings(t *testing.T) {
	exec, deps := newTestExecutor(t)

	res := exec.Execute(context.Background(), command.GoalIntent{
		Action: command.GoalDeposit,
		Amount: floatPtr(500),
	})

	if _, ok := res.(command.Success); !ok {
		t.Fatalf("expected Success, got %#v", res)
	}
	if len(deps.goals.savings) != 1 || deps.goals.savings[0].Amount != 500 {
		t.Errorf("savings = %#v, want one record of 500", deps.goals.savings)
	}
}

func TestResolveGoalTarget(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		unit  string
	}{
		{"这个月瘦5公斤", 5, "公斤"},
		{"减到60kg", 60, "公斤"},
		{"今年跑500公里", 500, "公里"},
		{"今年存1.5万元", 15000, "元"},
		{"存3000块", 3000, "元"},
		{"这个月读完3本书", 3, "本"},
		{"坚持早起100天", 100, "天"},
		{"健身20次", 20, "次"},
		{"完成10个项目", 10, "个"},
	}
	for _, tt := range tests {
		value, unit := resolveGoalTarget(tt.name)
		if value == nil {
			t.Errorf("%s: no target extracted", tt.name)
			continue
		}
		if *value != tt.value || unit != tt.unit {
			t.Errorf("%s: got %v%s, want %v%s", tt.name, *value, unit, tt.value, tt.unit)
		}
	}

	if value, unit := resolveGoalTarget("学会游泳"); value != nil || unit != "" {
		t.Errorf("no number must yield no target, got %v %s", value, unit)
	}
}

func TestResolveGoalCategory_FirstMatchWins(t *testing.T) {
	// 跑 (health) appears before 学 in the table even though both match.
	if got := resolveGoalCategory("跑步学英语"); got != model.GoalCategoryHealth {
		t.Errorf("category = %s, want HEALTH", got)
	}
	if got := resolveGoalCategory("升职加薪"); got != model.GoalCategoryCareer {
		t.Errorf("category = %s, want CAREER", got)
	}
	if got := resolveGoalCategory("多陪家人"); got != model.GoalCategoryLifestyle {
		t.Errorf("category = %s, want LIFESTYLE default", got)
	}
}
