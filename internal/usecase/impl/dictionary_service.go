package impl

import (
	"context"
	"log/slog"

	deliverycontext "wordtrainer/internal/delivery/context"
	"wordtrainer/internal/domain/entity"
	domainerrors "wordtrainer/internal/domain/errors"
	"wordtrainer/internal/domain/repository"
	"wordtrainer/internal/domain/service"
	"wordtrainer/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dictionaryService implements the DictionaryUsecase interface.
type dictionaryService struct {
	dictionaryRepo repository.DictionaryRepository
	txManager      repository.TransactionManager
	qrCodeService  service.QRCodeService
	logger         *slog.Logger
}

// DictionaryServiceParams holds dependencies for DictionaryService, injected by Fx.
type DictionaryServiceParams struct {
	fx.In

	DictionaryRepo repository.DictionaryRepository
	TxManager      repository.TransactionManager
	QRCodeService  service.QRCodeService
	Logger         *slog.Logger
}

// NewDictionaryService is the constructor for dictionaryService.
func NewDictionaryService(params DictionaryServiceParams) usecase.DictionaryUsecase {
	return &dictionaryService{
		dictionaryRepo: params.DictionaryRepo,
		txManager:      params.TxManager,
		qrCodeService:  params.QRCodeService,
		logger:         params.Logger,
	}
}

func (srv *dictionaryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// mapDictionaryError translates repository sentinels into their AppError counterparts.
func mapDictionaryError(err error, action string) error {
	switch {
	case errors.Is(err, repository.ErrDictionaryEntryNotFound):
		return errors.Wrap(domainerrors.ErrDictionaryEntryNotFound, action)
	case errors.Is(err, repository.ErrDictionaryEntryExists):
		return errors.Wrap(domainerrors.ErrDictionaryEntryExists, action)
	case errors.Is(err, repository.ErrDictionaryEntryInUse):
		return errors.Wrap(domainerrors.ErrDictionaryEntryInUse, action)
	case errors.Is(err, repository.ErrInvalidDifficulty):
		return errors.Wrap(domainerrors.ErrInvalidDifficulty, action)
	default:
		return errors.Wrap(err, action)
	}
}

func (srv *dictionaryService) CreateEntry(ctx context.Context, input *usecase.DictionaryEntryInput) (*entity.DictionaryEntry, error) {
	entry := input.ToEntity()
	srv.log(ctx).Info("Creating dictionary entry", slog.String("text", entry.Text), slog.String("language", entry.Language))

	if err := srv.dictionaryRepo.Create(ctx, entry); err != nil {
		return nil, mapDictionaryError(err, "failed to create dictionary entry")
	}

	return entry, nil
}

func (srv *dictionaryService) ListEntries(ctx context.Context, query usecase.DictionaryQuery) ([]*entity.DictionaryEntry, error) {
	entries, err := srv.dictionaryRepo.List(ctx, query.Filter, query.Page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list dictionary entries")
	}

	return entries, nil
}

func (srv *dictionaryService) GetEntry(ctx context.Context, id int64) (*entity.DictionaryEntry, error) {
	entry, err := srv.dictionaryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapDictionaryError(err, "failed to find dictionary entry")
	}

	return entry, nil
}

// UpdateEntry replaces every editable field of the entry. Moving onto a (text, language)
// pair owned by another entry is rejected.
func (srv *dictionaryService) UpdateEntry(ctx context.Context, id int64, input *usecase.DictionaryEntryInput) (*entity.DictionaryEntry, error) {
	srv.log(ctx).Info("Updating dictionary entry", slog.Int64("entryID", id))

	var updated *entity.DictionaryEntry

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		dictionaryRepo := repoFactory.DictionaryRepo()

		existing, err := dictionaryRepo.FindByID(ctx, id)
		if err != nil {
			return mapDictionaryError(err, "failed to find dictionary entry")
		}

		replacement := input.ToEntity()
		if replacement.Text != existing.Text || replacement.Language != existing.Language {
			other, err := dictionaryRepo.FindByTextAndLanguage(ctx, replacement.Text, replacement.Language)
			switch {
			case err == nil && other.ID != id:
				return errors.Wrap(domainerrors.ErrDictionaryEntryExists, "dictionary entry already exists")
			case err != nil && !errors.Is(err, repository.ErrDictionaryEntryNotFound):
				return errors.Wrap(err, "failed to check for duplicate entry")
			}
		}

		replacement.ID = existing.ID
		replacement.CreatedAt = existing.CreatedAt
		if err := dictionaryRepo.Update(ctx, replacement); err != nil {
			return mapDictionaryError(err, "failed to update dictionary entry")
		}
		updated = replacement

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update dictionary entry")
	}

	return updated, nil
}

// DeleteEntry removes an entry no word refers to. The foreign key stays the final
// guard against a word added after the count.
func (srv *dictionaryService) DeleteEntry(ctx context.Context, id int64) error {
	srv.log(ctx).Info("Deleting dictionary entry", slog.Int64("entryID", id))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.DictionaryRepo().FindByID(ctx, id); err != nil {
			return mapDictionaryError(err, "failed to find dictionary entry")
		}

		count, err := repoFactory.WordRepo().CountByDictionaryID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to count words")
		}
		if count > 0 {
			return errors.Wrap(domainerrors.ErrDictionaryEntryInUse, "dictionary entry in use")
		}

		if err := repoFactory.DictionaryRepo().Delete(ctx, id); err != nil {
			return mapDictionaryError(err, "failed to delete dictionary entry")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete dictionary entry")
	}

	return nil
}

func (srv *dictionaryService) EntryQRCode(ctx context.Context, id int64) ([]byte, error) {
	entry, err := srv.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodeService.GenerateEntryQR(service.EntryCard{
		EntryID:  entry.ID,
		Text:     entry.Text,
		Language: entry.Language,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return png, nil
}

func (srv *dictionaryService) ResolveQRCode(ctx context.Context, data string) (*entity.DictionaryEntry, error) {
	card, err := srv.qrCodeService.ParseEntryQR(data)
	if err != nil {
		srv.log(ctx).Warn("Rejected QR payload", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(err.Error()), "invalid QR code")
	}

	return srv.GetEntry(ctx, card.EntryID)
}
