package postgres

import (
	"context"

	"wordtrainer/internal/domain/entity"
	domainerrors "wordtrainer/internal/domain/errors"
	"wordtrainer/internal/domain/repository"
	"wordtrainer/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type practiceRepository struct {
	db *gorm.DB
}

// NewPracticeRepository is the constructor for practiceRepository.
func NewPracticeRepository(db *gorm.DB) repository.PracticeRepository {
	return &practiceRepository{db: db}
}

func (repo *practiceRepository) Create(ctx context.Context, session *entity.PracticeSession) error {
	sessionM := &model.PracticeSessionModel{
		WordID:    session.WordID,
		AccountID: session.AccountID,
		Correct:   session.Correct,
	}
	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.WithStack(repository.ErrWordNotFound)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record practice session")
	}

	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// StatsByWordID aggregates every session of the word in one query.
func (repo *practiceRepository) StatsByWordID(ctx context.Context, wordID int64) (*entity.PracticeStats, error) {
	var row model.PracticeStatsRow
	err := repo.db.WithContext(ctx).
		Model(&model.PracticeSessionModel{}).
		Select("COUNT(*) AS total, COUNT(*) FILTER (WHERE correct) AS correct, MAX(created_at) AS last_practiced").
		Where("word_id = ?", wordID).
		Scan(&row).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate practice sessions")
	}

	return &entity.PracticeStats{
		TotalPractices: row.Total,
		CorrectAnswers: row.Correct,
		LastPracticed:  row.LastPracticed,
	}, nil
}
