package nlu

import (
	"context"
	"time"

	"life-assistant/internal/command"
	"life-assistant/pkg/gemini"
	pkgLog "life-assistant/pkg/log"
)

// Parser is the interface for natural-language command parsing.
type Parser interface {
	Parse(ctx context.Context, text string, history []string) command.Intent
}

// SemanticParser extracts a command intent from free text using an LLM.
// Parsing never fails outward: any LLM or decode failure degrades to
// UnknownIntent so the caller always has something to execute.
type SemanticParser struct {
	llm *gemini.Client
	l   pkgLog.Logger

	timezone string
	now      func() time.Time
}

// Ensure SemanticParser implements Parser interface
var _ Parser = (*SemanticParser)(nil)

// Options tunes the parser. Zero values fall back to defaults.
type Options struct {
	Timezone string
	Now      func() time.Time
}

// New creates a new SemanticParser
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(llm *gemini.Client, l pkgLog.Logger, opts Options) *SemanticParser {
	timezone := opts.Timezone
	if timezone == "" {
		timezone = "Asia/Shanghai"
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &SemanticParser{
		llm:      llm,
		l:        l,
		timezone: timezone,
		now:      now,
	}
}
