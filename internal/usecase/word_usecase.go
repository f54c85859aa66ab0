package usecase

import (
	"context"

	"wordtrainer/internal/domain/entity"
	"wordtrainer/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateWordInput adds a dictionary entry to the caller's list. Unset overrides
// are copied from the entry.
type CreateWordInput struct {
	DictionaryID int64
	Text         *string
	Meaning      *string
	Difficulty   *entity.Difficulty
}

// UpdateWordInput holds the fields to change; nil fields are left untouched.
type UpdateWordInput struct {
	Text       *string
	Meaning    *string
	Difficulty *entity.Difficulty
}

// ApplyTo copies the set fields onto word.
func (in *UpdateWordInput) ApplyTo(word *entity.Word) {
	if in.Text != nil {
		word.Text = *in.Text
	}
	if in.Meaning != nil {
		word.Meaning = *in.Meaning
	}
	if in.Difficulty != nil {
		word.Difficulty = *in.Difficulty
	}
}

// WordQuery selects a page of the caller's words.
type WordQuery struct {
	Filter repository.WordFilter
	Page   repository.Page
}

// WordUsecase manages an account's personal word list.
type WordUsecase interface {
	CreateWord(ctx context.Context, accountID uuid.UUID, input *CreateWordInput) (*entity.Word, error)
	ListWords(ctx context.Context, accountID uuid.UUID, query WordQuery) ([]*entity.Word, error)
	GetWord(ctx context.Context, accountID uuid.UUID, id int64) (*entity.Word, error)
	UpdateWord(ctx context.Context, accountID uuid.UUID, id int64, input *UpdateWordInput) (*entity.Word, error)
	DeleteWord(ctx context.Context, accountID uuid.UUID, id int64) error
}
