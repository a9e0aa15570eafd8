package executor

import (
	"context"
	"strings"
	"testing"

	"life-assistant/internal/command"
)

func TestExecute_MultipleCountsOnlySuccesses(t *testing.T) {
	exec, deps := newTestExecutor(t)

	res := exec.Execute(context.Background(), command.MultipleIntent{
		Children: []command.Intent{
			command.TransactionIntent{Amount: floatPtr(20), Note: "早饭"},
			command.TransactionIntent{Note: "没有金额"}, // NeedMoreInfo, dropped
			command.DiaryIntent{Content: "天气不错"},
		},
	})

	added, ok := res.(command.MultipleAdded)
	if !ok {
		t.Fatalf("expected MultipleAdded, got %#v", res)
	}
	if added.Count != 2 {
		t.Errorf("count = %d, want 2", added.Count)
	}
	if added.Failed != 1 {
		t.Errorf("failed = %d, want 1", added.Failed)
	}
	if !strings.Contains(added.Summary, "；") {
		t.Errorf("summary %q should join messages with ；", added.Summary)
	}
	if len(deps.tx.inserted) != 1 || len(deps.diary.inserted) != 1 {
		t.Error("both valid children must be persisted")
	}
}

func TestExecute_MultipleAllFailed(t *testing.T) {
	exec, _ := newTestExecutor(t)

	res := exec.Execute(context.Background(), command.MultipleIntent{
		Children: []command.Intent{
			command.TransactionIntent{},
			command.UnknownIntent{OriginalText: "???"},
		},
	})

	failure, ok := res.(command.Failure)
	if !ok {
		t.Fatalf("expected Failure when nothing succeeds, got %#v", res)
	}
	if failure.Message != MsgAllChildrenFailed {
		t.Errorf("message = %q", failure.Message)
	}
}

func TestExecute_MultipleRunsInOrder(t *testing.T) {
	exec, deps := newTestExecutor(t)

	exec.Execute(context.Background(), command.MultipleIntent{
		Children: []command.Intent{
			command.TransactionIntent{Amount: floatPtr(1), Note: "first"},
			command.TransactionIntent{Amount: floatPtr(2), Note: "second"},
		},
	})

	if len(deps.tx.inserted) != 2 {
		t.Fatalf("expected 2 inserts, got %d", len(deps.tx.inserted))
	}
	if deps.tx.inserted[0].Note != "first" || deps.tx.inserted[1].Note != "second" {
		t.Error("children must execute in declared order")
	}
}

func TestExecute_MultipleNested(t *testing.T) {
	exec, _ := newTestExecutor(t)

	res := exec.Execute(context.Background(), command.MultipleIntent{
		Children: []command.Intent{
			command.DiaryIntent{Content: "outer"},
			command.MultipleIntent{Children: []command.Intent{
				command.TransactionIntent{Amount: floatPtr(5)},
				command.TransactionIntent{}, // fails inside the nested batch
			}},
		},
	})

	added, ok := res.(command.MultipleAdded)
	if !ok {
		t.Fatalf("expected MultipleAdded, got %#v", res)
	}
	if added.Failed != 1 {
		t.Errorf("nested failure must propagate, failed = %d", added.Failed)
	}
}
