package repository

import (
	"context"

	"wordtrainer/internal/domain/entity"
)

// PracticeRepository stores practice sessions and aggregates them.
type PracticeRepository interface {
	Create(ctx context.Context, session *entity.PracticeSession) error
	StatsByWordID(ctx context.Context, wordID int64) (*entity.PracticeStats, error)
}
