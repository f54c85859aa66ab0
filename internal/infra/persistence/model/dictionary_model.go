package model

import "time"

// DictionaryEntryModel mirrors the 'dictionary_entries' table. (text, language) is unique.
type DictionaryEntryModel struct {
	ID            int64   `gorm:"primaryKey;autoIncrement"`
	Text          string  `gorm:"type:varchar(255);not null;uniqueIndex:dictionary_entries_text_language_key"`
	Meaning       string  `gorm:"type:text;not null"`
	Example       *string `gorm:"type:text"`
	Pronunciation *string `gorm:"type:varchar(255)"`
	Difficulty    string  `gorm:"type:varchar(10);not null"`
	Language      string  `gorm:"type:varchar(10);not null;uniqueIndex:dictionary_entries_text_language_key"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (DictionaryEntryModel) TableName() string {
	return "dictionary_entries"
}
