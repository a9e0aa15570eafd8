package nlu

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	// memoryMaxSessions caps how many concurrent chats keep history.
	memoryMaxSessions = 1000
	// memoryMaxTurns caps the utterances remembered per chat.
	memoryMaxTurns = 10
	// memoryTTL expires an idle session's history.
	memoryTTL = 30 * time.Minute
)

// SessionMemory keeps recent utterances per chat so follow-up messages like
// "再来一笔" parse with context. Sessions expire after idle TTL; history is
// best-effort and loss is harmless.
type SessionMemory struct {
	sessions *expirable.LRU[int64, []string]
}

// NewSessionMemory creates a new SessionMemory.
func NewSessionMemory() *SessionMemory {
	return &SessionMemory{
		sessions: expirable.NewLRU[int64, []string](
			memoryMaxSessions,
			nil, // No eviction callback
			memoryTTL,
		),
	}
}

// Append records an utterance for a chat, trimming to the last memoryMaxTurns.
func (m *SessionMemory) Append(chatID int64, text string) {
	history, _ := m.sessions.Get(chatID)
	history = append(history, text)
	if len(history) > memoryMaxTurns {
		history = history[len(history)-memoryMaxTurns:]
	}
	m.sessions.Add(chatID, history)
}

// History returns the remembered utterances for a chat, oldest first.
func (m *SessionMemory) History(chatID int64) []string {
	history, _ := m.sessions.Get(chatID)
	return history
}
