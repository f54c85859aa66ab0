package usecase

import (
	"context"

	"wordtrainer/internal/domain/entity"

	"github.com/google/uuid"
)

// PracticeUsecase records practice attempts and reports per-word statistics.
type PracticeUsecase interface {
	RecordPractice(ctx context.Context, accountID uuid.UUID, wordID int64, correct bool) (*entity.PracticeSession, error)
	GetStats(ctx context.Context, accountID uuid.UUID, wordID int64) (*entity.PracticeStats, error)
}
