package middleware

import (
	pkgLog "life-assistant/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers.
type Middleware struct {
	l pkgLog.Logger
}

func New(l pkgLog.Logger) Middleware {
	return Middleware{l: l}
}
