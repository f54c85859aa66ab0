package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. AccountID is unique: one profile per account.
type ProfileModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID      uuid.UUID `gorm:"type:uuid;uniqueIndex:profiles_account_id_key;not null"`
	Name           string    `gorm:"type:varchar(100)"`
	NativeLanguage string    `gorm:"type:varchar(50)"`
	TargetLanguage string    `gorm:"type:varchar(50)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
