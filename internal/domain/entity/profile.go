package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the learner's personal settings. An account owns at most one.
type Profile struct {
	ID             uuid.UUID
	AccountID      uuid.UUID
	Name           string
	NativeLanguage string
	TargetLanguage string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
