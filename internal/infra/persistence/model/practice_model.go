package model

import (
	"time"

	"github.com/google/uuid"
)

// PracticeSessionModel mirrors the 'practice_sessions' table.
type PracticeSessionModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	WordID    int64     `gorm:"not null;index"`
	AccountID uuid.UUID `gorm:"type:uuid;not null"`
	Correct   bool      `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PracticeSessionModel) TableName() string {
	return "practice_sessions"
}

// PracticeStatsRow receives the aggregate computed by the stats query.
type PracticeStatsRow struct {
	Total         int64
	Correct       int64
	LastPracticed *time.Time
}
