package service

import (
	"context"
	"time"
)

// PracticeEvent is published after a practice session is recorded
type PracticeEvent struct {
	RequestID    string    `json:"request_id,omitempty"` // For distributed tracing
	SessionID    int64     `json:"session_id"`
	AccountID    string    `json:"account_id"`
	WordID       int64     `json:"word_id"`
	DictionaryID int64     `json:"dictionary_id"`
	Correct      bool      `json:"correct"`
	PracticedAt  time.Time `json:"practiced_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPracticeEvent publishes a practice event for downstream consumers
	PublishPracticeEvent(ctx context.Context, event *PracticeEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
