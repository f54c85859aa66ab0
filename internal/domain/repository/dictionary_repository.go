package repository

import (
	"context"
	"errors"

	"wordtrainer/internal/domain/entity"
)

var (
	ErrDictionaryEntryNotFound = errors.New("dictionary entry not found")

	// ErrDictionaryEntryExists is returned when (text, language) is already taken.
	ErrDictionaryEntryExists = errors.New("dictionary entry already exists")

	// ErrDictionaryEntryInUse is returned when deleting an entry still referenced by words.
	ErrDictionaryEntryInUse = errors.New("dictionary entry is referenced by words")

	// ErrInvalidDifficulty is returned when a difficulty fails the column CHECK.
	// Dictionary entries and words share the constraint.
	ErrInvalidDifficulty = errors.New("difficulty is not an allowed value")
)

// Page bounds a list query.
type Page struct {
	Skip  int
	Limit int
}

// DictionaryFilter narrows a dictionary listing. Empty fields do not filter.
type DictionaryFilter struct {
	Language   string
	Difficulty entity.Difficulty
	Search     string // case-insensitive substring of the entry text
}

// DictionaryRepository defines persistence operations for the shared dictionary.
type DictionaryRepository interface {
	Create(ctx context.Context, entry *entity.DictionaryEntry) error
	FindByID(ctx context.Context, id int64) (*entity.DictionaryEntry, error)

	// FindByTextAndLanguage looks up the entry holding the (text, language) key.
	FindByTextAndLanguage(ctx context.Context, text, language string) (*entity.DictionaryEntry, error)

	List(ctx context.Context, filter DictionaryFilter, page Page) ([]*entity.DictionaryEntry, error)
	Update(ctx context.Context, entry *entity.DictionaryEntry) error
	Delete(ctx context.Context, id int64) error
}
