package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Resp is the JSON envelope every endpoint returns. The webhook callers
// (Telegram, the notification forwarder) only inspect the HTTP status, so
// the body exists for the health endpoints and for humans reading logs.
type Resp struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// OK sends 200 with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{Code: 0, Message: "ok", Data: data})
}

// Error sends 400 with the error message. Handlers reserve this for
// malformed payloads; valid-but-unusable input is acknowledged with OK so
// the sender does not retry it.
func Error(c *gin.Context, err error, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	c.JSON(http.StatusBadRequest, Resp{Code: 1, Message: err.Error(), Data: data})
}
