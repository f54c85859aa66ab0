package model

import (
	"time"

	"github.com/google/uuid"
)

// WordModel mirrors the 'words' table. (account_id, dictionary_id) is unique.
type WordModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	AccountID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:words_account_id_dictionary_id_key"`
	DictionaryID int64     `gorm:"not null;uniqueIndex:words_account_id_dictionary_id_key"`
	Text         string    `gorm:"type:varchar(255);not null"`
	Meaning      string    `gorm:"type:text;not null"`
	Difficulty   string    `gorm:"type:varchar(10);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (WordModel) TableName() string {
	return "words"
}
