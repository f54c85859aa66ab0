package entity

import "time"

// DefaultLanguage is the language assigned to dictionary entries created without one.
const DefaultLanguage = "en"

// DictionaryEntry is a word in the shared dictionary. Text is unique per language.
type DictionaryEntry struct {
	ID            int64
	Text          string
	Meaning       string
	Example       *string
	Pronunciation *string
	Difficulty    Difficulty
	Language      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
