package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"life-assistant/pkg/response"
)

func TestOK(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	response.OK(c, map[string]string{"status": "accepted"})

	if w.Code != http.StatusOK {
		t.Errorf("expected %d, got %d", http.StatusOK, w.Code)
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Code != 0 || resp.Message != "ok" {
		t.Errorf("unexpected envelope: %+v", resp)
	}
	data, ok := resp.Data.(map[string]interface{})
	if !ok || data["status"] != "accepted" {
		t.Errorf("unexpected data payload: %v", resp.Data)
	}
}

func TestError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	response.Error(c, errors.New("bad payload"), nil)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected %d, got %d", http.StatusBadRequest, w.Code)
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Code != 1 || resp.Message != "bad payload" {
		t.Errorf("unexpected envelope: %+v", resp)
	}
	// Nil data still serializes as an empty object, not null.
	if resp.Data == nil {
		t.Error("expected empty map for nil data, got nil")
	}
}
