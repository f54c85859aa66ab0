package entity

import (
	"time"

	"github.com/google/uuid"
)

// Word is a dictionary entry placed on an account's personal list.
// Text, Meaning and Difficulty start as copies of the entry and may be edited by the owner.
type Word struct {
	ID           int64
	AccountID    uuid.UUID
	DictionaryID int64
	Text         string
	Meaning      string
	Difficulty   Difficulty
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
