package db_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"life-assistant/internal/db"
	diarySqlite "life-assistant/internal/diary/repository/sqlite"
	goalSqlite "life-assistant/internal/goal/repository/sqlite"
	habitRepo "life-assistant/internal/habit/repository"
	habitSqlite "life-assistant/internal/habit/repository/sqlite"
	"life-assistant/internal/model"
	todoSqlite "life-assistant/internal/todo/repository/sqlite"
	txRepo "life-assistant/internal/transaction/repository"
	txSqlite "life-assistant/internal/transaction/repository/sqlite"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...any)                  {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Info(ctx context.Context, args ...any)                   {}
func (noopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (noopLogger) Warn(ctx context.Context, args ...any)                   {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (noopLogger) Error(ctx context.Context, args ...any)                  {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (noopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Panic(ctx context.Context, args ...any)                  {}
func (noopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (noopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func TestTransactionRepository_InsertAndSums(t *testing.T) {
	ctx := context.Background()
	conn, err := db.Open(db.Config{Path: filepath.Join(t.TempDir(), "test.db")})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	defer conn.Close()

	repo := txSqlite.New(conn, noopLogger{})

	insert := func(amount float64, typ model.TransactionType, category, date string) {
		t.Helper()
		tx, err := repo.Insert(ctx, model.Transaction{
			Amount:       amount,
			Type:         typ,
			CategoryName: category,
			Date:         date,
			Time:         "12:00",
			Source:       model.SourceVoice,
		})
		if err != nil {
			t.Fatalf("insert transaction: %v", err)
		}
		if tx.ID == "" {
			t.Fatal("expected generated transaction ID")
		}
	}

	insert(30, model.TransactionExpense, "餐饮", "2025-06-01")
	insert(120, model.TransactionExpense, "交通", "2025-06-10")
	insert(50, model.TransactionExpense, "餐饮", "2025-05-28") // outside range
	insert(8000, model.TransactionIncome, "工资", "2025-06-05")

	june := txRepo.RangeOptions{StartDate: "2025-06-01", EndDate: "2025-06-30"}

	expense, err := repo.SumByType(ctx, model.TransactionExpense, june)
	if err != nil {
		t.Fatalf("SumByType: %v", err)
	}
	if expense != 150 {
		t.Errorf("expense sum = %v, want 150", expense)
	}

	income, err := repo.SumByType(ctx, model.TransactionIncome, june)
	if err != nil {
		t.Fatalf("SumByType: %v", err)
	}
	if income != 8000 {
		t.Errorf("income sum = %v, want 8000", income)
	}

	food, err := repo.SumByCategory(ctx, "餐饮", june)
	if err != nil {
		t.Fatalf("SumByCategory: %v", err)
	}
	if food != 30 {
		t.Errorf("餐饮 sum = %v, want 30", food)
	}

	empty, err := repo.SumByCategory(ctx, "娱乐", june)
	if err != nil {
		t.Fatalf("SumByCategory: %v", err)
	}
	if empty != 0 {
		t.Errorf("empty category sum = %v, want 0", empty)
	}
}

func TestHabitRepository_RecordsAndUniqueness(t *testing.T) {
	ctx := context.Background()
	conn, err := db.Open(db.Config{Path: filepath.Join(t.TempDir(), "test.db")})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	defer conn.Close()

	repo := habitSqlite.New(conn, noopLogger{})

	run, err := repo.CreateHabit(ctx, model.Habit{Name: "晨跑", Active: true})
	if err != nil {
		t.Fatalf("create habit: %v", err)
	}
	if _, err := repo.CreateHabit(ctx, model.Habit{Name: "午睡", Active: false}); err != nil {
		t.Fatalf("create habit: %v", err)
	}

	active, err := repo.GetActiveHabits(ctx)
	if err != nil {
		t.Fatalf("GetActiveHabits: %v", err)
	}
	if len(active) != 1 || active[0].Name != "晨跑" {
		t.Fatalf("active habits = %+v, want only 晨跑", active)
	}

	if _, err := repo.GetRecordByHabitAndDate(ctx, run.ID, "2025-06-11"); !errors.Is(err, habitRepo.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound before check-in, got %v", err)
	}

	km := 5.0
	if _, err := repo.InsertRecord(ctx, model.HabitRecord{
		HabitID:   run.ID,
		Date:      "2025-06-11",
		Completed: true,
		Value:     &km,
	}); err != nil {
		t.Fatalf("insert record: %v", err)
	}

	rec, err := repo.GetRecordByHabitAndDate(ctx, run.ID, "2025-06-11")
	if err != nil {
		t.Fatalf("get record: %v", err)
	}
	if !rec.Completed || rec.Value == nil || *rec.Value != 5.0 {
		t.Errorf("record = %+v, want completed with value 5", rec)
	}

	// UNIQUE(habit_id, date) rejects a second check-in for the same day.
	if _, err := repo.InsertRecord(ctx, model.HabitRecord{
		HabitID: run.ID,
		Date:    "2025-06-11",
	}); err == nil {
		t.Error("expected unique constraint error on duplicate check-in")
	}

	longer := 8.0
	rec.Value = &longer
	if _, err := repo.UpdateRecord(ctx, rec); err != nil {
		t.Fatalf("update record: %v", err)
	}
	updated, err := repo.GetRecordByHabitAndDate(ctx, run.ID, "2025-06-11")
	if err != nil {
		t.Fatalf("get record: %v", err)
	}
	if updated.Value == nil || *updated.Value != 8.0 {
		t.Errorf("updated value = %v, want 8", updated.Value)
	}
}

func TestGoalRepository_ProgressAndSavings(t *testing.T) {
	ctx := context.Background()
	conn, err := db.Open(db.Config{Path: filepath.Join(t.TempDir(), "test.db")})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	defer conn.Close()

	repo := goalSqlite.New(conn, noopLogger{})

	endDate := "2025-06-30"
	target := 3.0
	goal, err := repo.Insert(ctx, model.Goal{
		Title:       "读完3本书",
		Type:        model.GoalMonthly,
		Category:    model.GoalCategoryLearning,
		StartDate:   "2025-06-01",
		EndDate:     &endDate,
		TargetValue: &target,
		TargetUnit:  "本",
	})
	if err != nil {
		t.Fatalf("insert goal: %v", err)
	}
	if _, err := repo.Insert(ctx, model.Goal{
		Title:     "学会游泳",
		Type:      model.GoalLongTerm,
		Category:  model.GoalCategoryHealth,
		StartDate: "2025-01-01",
	}); err != nil {
		t.Fatalf("insert goal: %v", err)
	}

	expired := "2025-05-31"
	if _, err := repo.Insert(ctx, model.Goal{
		Title:     "五月存钱",
		Type:      model.GoalMonthly,
		Category:  model.GoalCategoryFinance,
		StartDate: "2025-05-01",
		EndDate:   &expired,
	}); err != nil {
		t.Fatalf("insert goal: %v", err)
	}

	if err := repo.AddProgress(ctx, goal.ID, 1); err != nil {
		t.Fatalf("AddProgress: %v", err)
	}

	// The expired May goal stays in the table but out of the active list.
	goals, err := repo.ListActive(ctx, "2025-06-11")
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(goals) != 2 {
		t.Fatalf("got %d goals, want 2", len(goals))
	}
	for _, g := range goals {
		switch g.Title {
		case "读完3本书":
			if g.Progress != 1 {
				t.Errorf("progress = %v, want 1", g.Progress)
			}
			if g.EndDate == nil || *g.EndDate != endDate {
				t.Errorf("end date = %v, want %s", g.EndDate, endDate)
			}
			if g.TargetValue == nil || *g.TargetValue != 3 {
				t.Errorf("target = %v, want 3", g.TargetValue)
			}
		case "学会游泳":
			if g.EndDate != nil {
				t.Errorf("long-term goal should have nil end date, got %v", *g.EndDate)
			}
			if g.TargetValue != nil {
				t.Errorf("goal without target should have nil value, got %v", *g.TargetValue)
			}
		default:
			t.Errorf("unexpected goal %q", g.Title)
		}
	}

	for _, amount := range []float64{500, 800, -300} {
		if _, err := repo.InsertSavingsRecord(ctx, model.SavingsRecord{
			Amount: amount,
			Date:   "2025-06-11",
		}); err != nil {
			t.Fatalf("insert savings record: %v", err)
		}
	}
	balance, err := repo.SavingsBalance(ctx)
	if err != nil {
		t.Fatalf("SavingsBalance: %v", err)
	}
	if balance != 1000 {
		t.Errorf("balance = %v, want 1000", balance)
	}
}

func TestTodoAndDiaryRepositories_Insert(t *testing.T) {
	ctx := context.Background()
	conn, err := db.Open(db.Config{Path: filepath.Join(t.TempDir(), "test.db")})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	defer conn.Close()

	todos := todoSqlite.New(conn, noopLogger{})
	diary := diarySqlite.New(conn, noopLogger{})

	dueDate := "2025-06-12"
	dueTime := "14:00"
	quadrant := model.QuadrantUrgentImportant
	todo, err := todos.Insert(ctx, model.Todo{
		Title:    "开会",
		Priority: model.PriorityHigh,
		DueDate:  &dueDate,
		DueTime:  &dueTime,
		Quadrant: &quadrant,
		Source:   model.SourceVoice,
	})
	if err != nil {
		t.Fatalf("insert todo: %v", err)
	}
	if todo.ID == "" {
		t.Error("expected generated todo ID")
	}

	// Priority defaults to NONE when unset.
	bare, err := todos.Insert(ctx, model.Todo{Title: "买牛奶", Source: model.SourceVoice})
	if err != nil {
		t.Fatalf("insert todo: %v", err)
	}
	if bare.Priority != model.PriorityNone {
		t.Errorf("priority = %q, want NONE", bare.Priority)
	}

	entry, err := diary.Insert(ctx, model.DiaryEntry{
		Date:    "2025-06-11",
		Content: "今天很开心",
		Mood:    5,
	})
	if err != nil {
		t.Fatalf("insert diary entry: %v", err)
	}
	if entry.ID == "" {
		t.Error("expected generated diary entry ID")
	}
}
