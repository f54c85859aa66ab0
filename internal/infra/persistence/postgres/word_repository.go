package postgres

import (
	"context"
	"time"

	"wordtrainer/internal/domain/entity"
	domainerrors "wordtrainer/internal/domain/errors"
	"wordtrainer/internal/domain/repository"
	"wordtrainer/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type wordRepository struct {
	db *gorm.DB
}

// NewWordRepository is the constructor for wordRepository.
func NewWordRepository(db *gorm.DB) repository.WordRepository {
	return &wordRepository{db: db}
}

func (repo *wordRepository) Create(ctx context.Context, word *entity.Word) error {
	wordM := fromWordDomain(word)
	if err := repo.db.WithContext(ctx).Create(wordM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.WithStack(repository.ErrWordAlreadyAdded)
		}
		if isCheckConstraintViolation(err) {
			return errors.WithStack(repository.ErrInvalidDifficulty)
		}
		if isForeignKeyConstraintViolation(err) {
			return wordForeignKeyError(err)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create word")
	}

	word.ID = wordM.ID
	word.CreatedAt = wordM.CreatedAt
	word.UpdatedAt = wordM.UpdatedAt

	return nil
}

// wordForeignKeyError tells a vanished account apart from a missing dictionary entry.
func wordForeignKeyError(err error) error {
	switch violatedConstraint(err) {
	case wordsAccountFKey:
		return errors.WithStack(repository.ErrAccountNotFound)
	case wordsDictionaryFKey, "":
		return errors.WithStack(repository.ErrDictionaryEntryNotFound)
	default:
		return domainerrors.NewDatabaseExecuteError(err, "failed to create word")
	}
}

func (repo *wordRepository) FindByID(ctx context.Context, accountID uuid.UUID, id int64) (*entity.Word, error) {
	var wordM model.WordModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, accountID).
		First(&wordM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWordNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find word")
	}

	return toWordDomain(&wordM), nil
}

func (repo *wordRepository) List(
	ctx context.Context,
	accountID uuid.UUID,
	filter repository.WordFilter,
	page repository.Page,
) ([]*entity.Word, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.WordModel{}).
		Where("account_id = ?", accountID)
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", string(filter.Difficulty))
	}
	if filter.Search != "" {
		query = query.Where("text ILIKE ?", containsPattern(filter.Search))
	}

	var rows []model.WordModel
	if err := query.Order("id").Offset(page.Skip).Limit(page.Limit).Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list words")
	}

	words := make([]*entity.Word, 0, len(rows))
	for i := range rows {
		words = append(words, toWordDomain(&rows[i]))
	}

	return words, nil
}

// Update writes the owner-editable columns.
func (repo *wordRepository) Update(ctx context.Context, word *entity.Word) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.WordModel{}).
		Where("id = ? AND account_id = ?", word.ID, word.AccountID).
		Updates(map[string]any{
			"text":       word.Text,
			"meaning":    word.Meaning,
			"difficulty": string(word.Difficulty),
			"updated_at": now,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return errors.WithStack(repository.ErrInvalidDifficulty)
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update word")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWordNotFound
	}

	word.UpdatedAt = now

	return nil
}

// Delete removes the word; its practice sessions go with it (ON DELETE CASCADE).
func (repo *wordRepository) Delete(ctx context.Context, accountID uuid.UUID, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, accountID).
		Delete(&model.WordModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete word")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWordNotFound
	}

	return nil
}

func (repo *wordRepository) CountByDictionaryID(ctx context.Context, dictionaryID int64) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.WordModel{}).
		Where("dictionary_id = ?", dictionaryID).
		Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count words for dictionary entry")
	}

	return count, nil
}

func toWordDomain(data *model.WordModel) *entity.Word {
	if data == nil {
		return nil
	}

	return &entity.Word{
		ID:           data.ID,
		AccountID:    data.AccountID,
		DictionaryID: data.DictionaryID,
		Text:         data.Text,
		Meaning:      data.Meaning,
		Difficulty:   entity.Difficulty(data.Difficulty),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromWordDomain(data *entity.Word) *model.WordModel {
	if data == nil {
		return nil
	}

	return &model.WordModel{
		ID:           data.ID,
		AccountID:    data.AccountID,
		DictionaryID: data.DictionaryID,
		Text:         data.Text,
		Meaning:      data.Meaning,
		Difficulty:   string(data.Difficulty),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
