package impl

import (
	"context"
	"log/slog"

	deliverycontext "wordtrainer/internal/delivery/context"
	"wordtrainer/internal/domain/entity"
	"wordtrainer/internal/domain/repository"
	"wordtrainer/internal/domain/service"
	"wordtrainer/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// practiceService implements the PracticeUsecase interface.
type practiceService struct {
	wordRepo       repository.WordRepository
	practiceRepo   repository.PracticeRepository
	txManager      repository.TransactionManager
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// PracticeServiceParams holds dependencies for PracticeService, injected by Fx.
type PracticeServiceParams struct {
	fx.In

	WordRepo       repository.WordRepository
	PracticeRepo   repository.PracticeRepository
	TxManager      repository.TransactionManager
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewPracticeService is the constructor for practiceService.
func NewPracticeService(params PracticeServiceParams) usecase.PracticeUsecase {
	return &practiceService{
		wordRepo:       params.WordRepo,
		practiceRepo:   params.PracticeRepo,
		txManager:      params.TxManager,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

func (srv *practiceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordPractice stores one attempt at the caller's word and announces it once the
// session is committed. A failed publish does not undo the recording.
func (srv *practiceService) RecordPractice(ctx context.Context, accountID uuid.UUID, wordID int64, correct bool) (*entity.PracticeSession, error) {
	var (
		session *entity.PracticeSession
		word    *entity.Word
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.WordRepo().FindByID(ctx, accountID, wordID)
		if err != nil {
			return mapWordError(err, "failed to find word")
		}
		word = found

		session = &entity.PracticeSession{
			WordID:    wordID,
			AccountID: accountID,
			Correct:   correct,
		}
		if err := repoFactory.PracticeRepo().Create(ctx, session); err != nil {
			return mapWordError(err, "failed to record practice session")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record practice")
	}

	srv.log(ctx).Info("Practice recorded",
		slog.Int64("sessionID", session.ID),
		slog.Int64("wordID", wordID),
		slog.Bool("correct", correct),
	)

	event := &service.PracticeEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		SessionID:    session.ID,
		AccountID:    accountID.String(),
		WordID:       wordID,
		DictionaryID: word.DictionaryID,
		Correct:      correct,
		PracticedAt:  session.CreatedAt,
	}
	if err := srv.eventPublisher.PublishPracticeEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish practice event",
			slog.Int64("sessionID", session.ID),
			slog.Any("error", err),
		)
	}

	return session, nil
}

// GetStats summarizes the practice history of the caller's word.
func (srv *practiceService) GetStats(ctx context.Context, accountID uuid.UUID, wordID int64) (*entity.PracticeStats, error) {
	if _, err := srv.wordRepo.FindByID(ctx, accountID, wordID); err != nil {
		return nil, mapWordError(err, "failed to find word")
	}

	stats, err := srv.practiceRepo.StatsByWordID(ctx, wordID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load practice stats")
	}

	return stats, nil
}
