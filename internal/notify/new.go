package notify

import (
	"time"

	txRepo "life-assistant/internal/transaction/repository"
	pkgLog "life-assistant/pkg/log"
)

// Handler ingests payment notifications forwarded from the phone and records
// them as transactions.
type Handler struct {
	transactions txRepo.Repository
	security     *SecurityValidator
	l            pkgLog.Logger
	now          func() time.Time
}

func NewHandler(
	transactions txRepo.Repository,
	securityConfig SecurityConfig,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		transactions: transactions,
		security:     NewSecurityValidator(securityConfig),
		l:            l,
		now:          time.Now,
	}
}
