package nlu

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"life-assistant/internal/command"
	"life-assistant/pkg/gemini"
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

// newTestParser wires a parser against a canned LLM response.
func newTestParser(t *testing.T, llmText string) *SemanticParser {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		body := gemini.GenerateResponse{
			Candidates: []gemini.Candidate{
				{Content: gemini.Content{Role: "model", Parts: []gemini.Part{{Text: llmText}}}},
			},
		}
		if err := json.NewEncoder(w).Encode(body); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}))
	t.Cleanup(ts.Close)

	client := gemini.NewClient("test-key")
	client.SetAPIURL(ts.URL)
	return New(client, noopLogger{}, Options{
		Now: func() time.Time { return time.Date(2025, 6, 11, 10, 0, 0, 0, time.UTC) },
	})
}

func TestParse_Transaction(t *testing.T) {
	p := newTestParser(t, `{"intent":"transaction","amount":25.5,"type":"expense","category_name":"餐饮","date":"昨天","note":"午饭"}`)

	intent := p.Parse(context.Background(), "昨天午饭花了25块5", nil)

	tx, ok := intent.(command.TransactionIntent)
	if !ok {
		t.Fatalf("expected TransactionIntent, got %#v", intent)
	}
	if tx.Amount == nil || *tx.Amount != 25.5 {
		t.Errorf("amount = %v", tx.Amount)
	}
	if tx.Date != "昨天" {
		t.Errorf("date phrase must stay verbatim, got %q", tx.Date)
	}
	if tx.CategoryName != "餐饮" {
		t.Errorf("category = %q", tx.CategoryName)
	}
}

func TestParse_MarkdownFencedJSON(t *testing.T) {
	p := newTestParser(t, "```json\n{\"intent\":\"habit_checkin\",\"habit_name\":\"跑步\"}\n```")

	intent := p.Parse(context.Background(), "跑步打卡", nil)

	checkin, ok := intent.(command.HabitCheckinIntent)
	if !ok {
		t.Fatalf("expected HabitCheckinIntent, got %#v", intent)
	}
	if checkin.HabitName != "跑步" {
		t.Errorf("habit name = %q", checkin.HabitName)
	}
}

func TestParse_Multiple(t *testing.T) {
	p := newTestParser(t, `{"intent":"multiple","children":[{"intent":"transaction","amount":20},{"intent":"diary","content":"今天很充实"}]}`)

	intent := p.Parse(context.Background(), "记20块，再写日记", nil)

	multi, ok := intent.(command.MultipleIntent)
	if !ok {
		t.Fatalf("expected MultipleIntent, got %#v", intent)
	}
	if len(multi.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(multi.Children))
	}
	if _, ok := multi.Children[0].(command.TransactionIntent); !ok {
		t.Errorf("child 0 = %#v", multi.Children[0])
	}
	if _, ok := multi.Children[1].(command.DiaryIntent); !ok {
		t.Errorf("child 1 = %#v", multi.Children[1])
	}
}

func TestParse_InvalidJSONFallsBack(t *testing.T) {
	p := newTestParser(t, "抱歉，我不能解析这句话")

	intent := p.Parse(context.Background(), "呜啦啦", nil)

	unknown, ok := intent.(command.UnknownIntent)
	if !ok {
		t.Fatalf("expected UnknownIntent, got %#v", intent)
	}
	if unknown.OriginalText != "呜啦啦" {
		t.Errorf("original text = %q", unknown.OriginalText)
	}
}

func TestParse_LLMDownFallsBack(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := gemini.NewClient("test-key")
	client.SetAPIURL(ts.URL)
	p := New(client, noopLogger{}, Options{})

	intent := p.Parse(context.Background(), "记一笔", nil)

	if _, ok := intent.(command.UnknownIntent); !ok {
		t.Fatalf("expected UnknownIntent on LLM failure, got %#v", intent)
	}
}

func TestPayload_UnknownIntentType(t *testing.T) {
	p := payload{Intent: "teleport"}

	intent := p.toIntent("传送到火星", 0)

	if _, ok := intent.(command.UnknownIntent); !ok {
		t.Fatalf("expected UnknownIntent, got %#v", intent)
	}
}

func TestPayload_CaseInsensitiveEnums(t *testing.T) {
	p := payload{Intent: "Time_Track", Action: "start", Activity: "写作"}

	intent := p.toIntent("开始计时", 0)

	tt, ok := intent.(command.TimeTrackIntent)
	if !ok {
		t.Fatalf("expected TimeTrackIntent, got %#v", intent)
	}
	if tt.Action != command.TimeTrackStart {
		t.Errorf("action = %q, want START", tt.Action)
	}
}

func TestSessionMemory(t *testing.T) {
	m := NewSessionMemory()

	for i := 0; i < 15; i++ {
		m.Append(1, "message")
	}
	m.Append(2, "other chat")

	if got := len(m.History(1)); got != memoryMaxTurns {
		t.Errorf("history length = %d, want %d", got, memoryMaxTurns)
	}
	if got := len(m.History(2)); got != 1 {
		t.Errorf("history for chat 2 = %d, want 1", got)
	}
	if got := len(m.History(3)); got != 0 {
		t.Errorf("history for unknown chat = %d, want 0", got)
	}
}
