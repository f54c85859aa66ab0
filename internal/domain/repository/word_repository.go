package repository

import (
	"context"
	"errors"

	"wordtrainer/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	ErrWordNotFound = errors.New("word not found")

	// ErrWordAlreadyAdded is returned when the account already has a word for the dictionary entry.
	ErrWordAlreadyAdded = errors.New("word already added")
)

// WordFilter narrows a word listing. Empty fields do not filter.
type WordFilter struct {
	Difficulty entity.Difficulty
	Search     string
}

// WordRepository defines persistence operations for per-account word lists.
// Every lookup is scoped to the owning account.
type WordRepository interface {
	Create(ctx context.Context, word *entity.Word) error
	FindByID(ctx context.Context, accountID uuid.UUID, id int64) (*entity.Word, error)
	List(ctx context.Context, accountID uuid.UUID, filter WordFilter, page Page) ([]*entity.Word, error)
	Update(ctx context.Context, word *entity.Word) error
	Delete(ctx context.Context, accountID uuid.UUID, id int64) error

	// CountByDictionaryID returns how many words reference the dictionary entry.
	CountByDictionaryID(ctx context.Context, dictionaryID int64) (int64, error)
}
