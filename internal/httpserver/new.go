package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	tgDelivery "life-assistant/internal/command/delivery/telegram"
	pkgLog "life-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string

	// Command pipeline delivery
	telegramHandler tgDelivery.Handler

	// Payment notification webhook
	notifyHandler interface {
		HandlePaymentNotification(c *gin.Context)
	}
	notifyRateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      pkgLog.Logger
	Port        int
	Mode        string
	Environment string

	// Command pipeline delivery
	TelegramHandler tgDelivery.Handler

	// Payment notification webhook
	NotifyHandler interface {
		HandlePaymentNotification(c *gin.Context)
	}
	NotifyRateLimitPerMin int
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                     cfg.Logger,
		gin:                   gin.New(),
		port:                  cfg.Port,
		mode:                  cfg.Mode,
		environment:           cfg.Environment,
		telegramHandler:       cfg.TelegramHandler,
		notifyHandler:         cfg.NotifyHandler,
		notifyRateLimitPerMin: cfg.NotifyRateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
