package impl

import (
	"context"
	"log/slog"

	deliverycontext "wordtrainer/internal/delivery/context"
	"wordtrainer/internal/domain/entity"
	domainerrors "wordtrainer/internal/domain/errors"
	"wordtrainer/internal/domain/repository"
	"wordtrainer/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// wordService implements the WordUsecase interface.
type wordService struct {
	wordRepo       repository.WordRepository
	dictionaryRepo repository.DictionaryRepository
	txManager      repository.TransactionManager
	logger         *slog.Logger
}

// WordServiceParams holds dependencies for WordService, injected by Fx.
type WordServiceParams struct {
	fx.In

	WordRepo       repository.WordRepository
	DictionaryRepo repository.DictionaryRepository
	TxManager      repository.TransactionManager
	Logger         *slog.Logger
}

// NewWordService is the constructor for wordService.
func NewWordService(params WordServiceParams) usecase.WordUsecase {
	return &wordService{
		wordRepo:       params.WordRepo,
		dictionaryRepo: params.DictionaryRepo,
		txManager:      params.TxManager,
		logger:         params.Logger,
	}
}

func (srv *wordService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func mapWordError(err error, action string) error {
	switch {
	case errors.Is(err, repository.ErrWordNotFound):
		return errors.Wrap(domainerrors.ErrWordNotFound, action)
	case errors.Is(err, repository.ErrWordAlreadyAdded):
		return errors.Wrap(domainerrors.ErrWordAlreadyAdded, action)
	case errors.Is(err, repository.ErrDictionaryEntryNotFound):
		return errors.Wrap(domainerrors.ErrDictionaryEntryNotFound, action)
	case errors.Is(err, repository.ErrInvalidDifficulty):
		return errors.Wrap(domainerrors.ErrInvalidDifficulty, action)
	case errors.Is(err, repository.ErrAccountNotFound):
		// the account was deleted after the gate resolved it
		return errors.Wrap(domainerrors.ErrUnauthorized, action)
	default:
		return errors.Wrap(err, action)
	}
}

// CreateWord puts a dictionary entry on the account's list, copying the entry's
// text, meaning and difficulty unless the input overrides them.
func (srv *wordService) CreateWord(ctx context.Context, accountID uuid.UUID, input *usecase.CreateWordInput) (*entity.Word, error) {
	srv.log(ctx).Info("Adding word", slog.Any("accountID", accountID), slog.Int64("dictionaryID", input.DictionaryID))

	entry, err := srv.dictionaryRepo.FindByID(ctx, input.DictionaryID)
	if err != nil {
		return nil, mapWordError(err, "failed to find dictionary entry")
	}

	word := &entity.Word{
		AccountID:    accountID,
		DictionaryID: entry.ID,
		Text:         entry.Text,
		Meaning:      entry.Meaning,
		Difficulty:   entry.Difficulty.OrDefault(),
	}
	(&usecase.UpdateWordInput{
		Text:       input.Text,
		Meaning:    input.Meaning,
		Difficulty: input.Difficulty,
	}).ApplyTo(word)

	if err := srv.wordRepo.Create(ctx, word); err != nil {
		return nil, mapWordError(err, "failed to create word")
	}

	return word, nil
}

func (srv *wordService) ListWords(ctx context.Context, accountID uuid.UUID, query usecase.WordQuery) ([]*entity.Word, error) {
	words, err := srv.wordRepo.List(ctx, accountID, query.Filter, query.Page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list words")
	}

	return words, nil
}

func (srv *wordService) GetWord(ctx context.Context, accountID uuid.UUID, id int64) (*entity.Word, error) {
	word, err := srv.wordRepo.FindByID(ctx, accountID, id)
	if err != nil {
		return nil, mapWordError(err, "failed to find word")
	}

	return word, nil
}

func (srv *wordService) UpdateWord(ctx context.Context, accountID uuid.UUID, id int64, input *usecase.UpdateWordInput) (*entity.Word, error) {
	srv.log(ctx).Info("Updating word", slog.Any("accountID", accountID), slog.Int64("wordID", id))

	var updated *entity.Word

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		wordRepo := repoFactory.WordRepo()

		word, err := wordRepo.FindByID(ctx, accountID, id)
		if err != nil {
			return mapWordError(err, "failed to find word")
		}

		input.ApplyTo(word)
		if err := wordRepo.Update(ctx, word); err != nil {
			return mapWordError(err, "failed to update word")
		}
		updated = word

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update word")
	}

	return updated, nil
}

// DeleteWord removes the word; its practice sessions go with it.
func (srv *wordService) DeleteWord(ctx context.Context, accountID uuid.UUID, id int64) error {
	srv.log(ctx).Info("Deleting word", slog.Any("accountID", accountID), slog.Int64("wordID", id))

	if err := srv.wordRepo.Delete(ctx, accountID, id); err != nil {
		return mapWordError(err, "failed to delete word")
	}

	return nil
}
