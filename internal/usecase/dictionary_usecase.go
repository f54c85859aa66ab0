package usecase

import (
	"context"

	"wordtrainer/internal/domain/entity"
	"wordtrainer/internal/domain/repository"
)

// DictionaryEntryInput is the full set of editable entry fields, used for create and replace.
type DictionaryEntryInput struct {
	Text          string
	Meaning       string
	Example       *string
	Pronunciation *string
	Difficulty    entity.Difficulty
	Language      string
}

// DictionaryQuery selects a page of dictionary entries.
type DictionaryQuery struct {
	Filter repository.DictionaryFilter
	Page   repository.Page
}

// DictionaryUsecase manages the shared dictionary.
type DictionaryUsecase interface {
	CreateEntry(ctx context.Context, input *DictionaryEntryInput) (*entity.DictionaryEntry, error)
	ListEntries(ctx context.Context, query DictionaryQuery) ([]*entity.DictionaryEntry, error)
	GetEntry(ctx context.Context, id int64) (*entity.DictionaryEntry, error)
	UpdateEntry(ctx context.Context, id int64, input *DictionaryEntryInput) (*entity.DictionaryEntry, error)
	DeleteEntry(ctx context.Context, id int64) error

	// EntryQRCode renders a PNG share card for the entry.
	EntryQRCode(ctx context.Context, id int64) ([]byte, error)
	// ResolveQRCode returns the entry a scanned share card points at.
	ResolveQRCode(ctx context.Context, data string) (*entity.DictionaryEntry, error)
}

// ToEntity builds an entry from input, filling in the default difficulty and language.
func (in *DictionaryEntryInput) ToEntity() *entity.DictionaryEntry {
	language := in.Language
	if language == "" {
		language = entity.DefaultLanguage
	}

	return &entity.DictionaryEntry{
		Text:          in.Text,
		Meaning:       in.Meaning,
		Example:       in.Example,
		Pronunciation: in.Pronunciation,
		Difficulty:    in.Difficulty.OrDefault(),
		Language:      language,
	}
}
