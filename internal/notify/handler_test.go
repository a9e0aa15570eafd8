package notify_test

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"life-assistant/internal/model"
	"life-assistant/internal/notify"
	txRepo "life-assistant/internal/transaction/repository"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockTransactionRepo struct {
	mu       sync.Mutex
	inserted []model.Transaction
	fail     bool
}

func (m *mockTransactionRepo) Insert(ctx context.Context, tx model.Transaction) (model.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return model.Transaction{}, errors.New("db error")
	}
	tx.ID = "tx-1"
	m.inserted = append(m.inserted, tx)
	return tx, nil
}

func (m *mockTransactionRepo) SumByType(ctx context.Context, typ model.TransactionType, opt txRepo.RangeOptions) (float64, error) {
	return 0, nil
}

func (m *mockTransactionRepo) SumByCategory(ctx context.Context, categoryName string, opt txRepo.RangeOptions) (float64, error) {
	return 0, nil
}

func (m *mockTransactionRepo) insertedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.inserted)
}

func (m *mockTransactionRepo) first() model.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inserted[0]
}

const testSecret = "test-secret"

func newTestRouter(t *testing.T, repo *mockTransactionRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := notify.NewHandler(repo, notify.SecurityConfig{
		Secret:          testSecret,
		RateLimitPerMin: 600,
	}, &mockLogger{})

	engine := gin.New()
	engine.POST("/webhook/notifications", h.HandlePaymentNotification)
	return engine
}

func sign(body []byte) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func postNotification(engine *gin.Engine, n notify.Notification, signature string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(n)
	if signature == "" {
		signature = sign(body)
	}
	req, _ := http.NewRequest(http.MethodPost, "/webhook/notifications", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Notify-Signature", signature)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func waitForInserts(repo *mockTransactionRepo, atLeast int, timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) && repo.insertedCount() < atLeast {
		time.Sleep(20 * time.Millisecond)
	}
}

func TestHandlePaymentNotification_RecordsExpense(t *testing.T) {
	repo := &mockTransactionRepo{}
	engine := newTestRouter(t, repo)

	w := postNotification(engine, notify.Notification{
		App:      "com.eg.android.AlipayGphone",
		Title:    "支付宝",
		Text:     "你向美团付款25.50元",
		PostedAt: "2025-06-11T12:30:00+08:00",
	}, "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	waitForInserts(repo, 1, 500*time.Millisecond)
	if repo.insertedCount() != 1 {
		t.Fatal("expected 1 recorded transaction")
	}

	tx := repo.first()
	if tx.Amount != 25.5 {
		t.Errorf("amount = %v", tx.Amount)
	}
	if tx.Type != model.TransactionExpense {
		t.Errorf("type = %s", tx.Type)
	}
	if tx.Source != model.SourceNotification {
		t.Errorf("source = %s", tx.Source)
	}
	if tx.CategoryName != "美团" {
		t.Errorf("category = %s", tx.CategoryName)
	}
	if tx.Date != "2025-06-11" {
		t.Errorf("date = %s", tx.Date)
	}
}

func TestHandlePaymentNotification_BadSignature(t *testing.T) {
	repo := &mockTransactionRepo{}
	engine := newTestRouter(t, repo)

	w := postNotification(engine, notify.Notification{
		App:  "com.eg.android.AlipayGphone",
		Text: "你向美团付款25.50元",
	}, "sha256=deadbeef")

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if repo.insertedCount() != 0 {
		t.Error("unauthenticated request must not record anything")
	}
}

func TestHandlePaymentNotification_NonPaymentIgnored(t *testing.T) {
	repo := &mockTransactionRepo{}
	engine := newTestRouter(t, repo)

	w := postNotification(engine, notify.Notification{
		App:   "com.example.game",
		Title: "每日签到",
		Text:  "登录领取奖励",
	}, "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Data map[string]string `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data["status"] != "ignored" {
		t.Errorf("status = %q, want ignored", resp.Data["status"])
	}
	if repo.insertedCount() != 0 {
		t.Error("non-payment notification must not record anything")
	}
}

func TestSecurityValidator_Signature(t *testing.T) {
	v := notify.NewSecurityValidator(notify.SecurityConfig{Secret: testSecret, RateLimitPerMin: 60})
	body := []byte(`{"app":"x"}`)

	if err := v.ValidateSignature(body, sign(body)); err != nil {
		t.Errorf("valid signature rejected: %v", err)
	}
	if err := v.ValidateSignature(body, "sha256=00"); err == nil {
		t.Error("wrong signature accepted")
	}
	if err := v.ValidateSignature(body, "md5=abc"); err == nil {
		t.Error("wrong format accepted")
	}

	empty := notify.NewSecurityValidator(notify.SecurityConfig{RateLimitPerMin: 60})
	if err := empty.ValidateSignature(body, sign(body)); err == nil {
		t.Error("unconfigured secret must reject all requests")
	}
}
