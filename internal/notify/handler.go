package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"life-assistant/internal/model"
	pkgResponse "life-assistant/pkg/response"
)

// HandlePaymentNotification processes a forwarded payment notification.
// Verification order mirrors the request lifecycle: signature, IP, rate
// limit, then payload.
func (h *Handler) HandlePaymentNotification(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "Failed to read notification body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	signature := c.GetHeader("X-Notify-Signature")
	if err := h.security.ValidateSignature(body, signature); err != nil {
		h.l.Errorf(ctx, "Notification signature verification failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Errorf(ctx, "Notification IP rejected: %v", err)
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	if err := h.security.CheckRateLimit("notify"); err != nil {
		h.l.Warnf(ctx, "Rate limit exceeded: %v", err)
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}

	var notification Notification
	if err := json.Unmarshal(body, &notification); err != nil {
		h.l.Errorf(ctx, "Failed to parse notification: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	payment, ok := ParsePayment(notification)
	if !ok {
		h.l.Infof(ctx, "Notification from %q not a payment, ignored", notification.App)
		pkgResponse.OK(c, gin.H{"status": "ignored", "reason": "not a payment notification"})
		return
	}

	// Process in background
	go h.recordPaymentAsync(payment, notification)

	// Acknowledge immediately
	pkgResponse.OK(c, gin.H{"status": "accepted"})
}

// recordPaymentAsync persists the parsed payment in the background.
func (h *Handler) recordPaymentAsync(payment ParsedPayment, notification Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	postedAt := h.now()
	if notification.PostedAt != "" {
		if t, err := time.Parse(time.RFC3339, notification.PostedAt); err == nil {
			postedAt = t
		}
	}

	category := payment.Merchant
	if category == "" {
		category = payment.Channel
	}

	tx, err := h.transactions.Insert(ctx, model.Transaction{
		Amount:       payment.Amount,
		Type:         model.TransactionType(payment.Type),
		CategoryName: category,
		Date:         postedAt.Format("2006-01-02"),
		Time:         postedAt.Format("15:04"),
		Note:         notification.Text,
		Source:       model.SourceNotification,
	})
	if err != nil {
		h.l.Errorf(ctx, "Failed to record payment from notification: %v", err)
		return
	}

	h.l.Infof(ctx, "Recorded %s %s %.2f from %s notification (id=%s)",
		payment.Type, payment.Channel, payment.Amount, notification.App, tx.ID)
}
