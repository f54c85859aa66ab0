package postgres

import (
	"context"
	"strings"
	"time"

	"wordtrainer/internal/domain/entity"
	domainerrors "wordtrainer/internal/domain/errors"
	"wordtrainer/internal/domain/repository"
	"wordtrainer/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type dictionaryRepository struct {
	db *gorm.DB
}

// NewDictionaryRepository is the constructor for dictionaryRepository.
func NewDictionaryRepository(db *gorm.DB) repository.DictionaryRepository {
	return &dictionaryRepository{db: db}
}

func (repo *dictionaryRepository) Create(ctx context.Context, entry *entity.DictionaryEntry) error {
	entryM := fromDictionaryDomain(entry)
	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.WithStack(repository.ErrDictionaryEntryExists)
		}
		if isCheckConstraintViolation(err) {
			return errors.WithStack(repository.ErrInvalidDifficulty)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create dictionary entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt
	entry.UpdatedAt = entryM.UpdatedAt

	return nil
}

func (repo *dictionaryRepository) FindByID(ctx context.Context, id int64) (*entity.DictionaryEntry, error) {
	var entryM model.DictionaryEntryModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&entryM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDictionaryEntryNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find dictionary entry")
	}

	return toDictionaryDomain(&entryM), nil
}

func (repo *dictionaryRepository) FindByTextAndLanguage(ctx context.Context, text, language string) (*entity.DictionaryEntry, error) {
	var entryM model.DictionaryEntryModel
	err := repo.db.WithContext(ctx).
		Where("text = ? AND language = ?", text, language).
		First(&entryM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDictionaryEntryNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find dictionary entry by text")
	}

	return toDictionaryDomain(&entryM), nil
}

func (repo *dictionaryRepository) List(
	ctx context.Context,
	filter repository.DictionaryFilter,
	page repository.Page,
) ([]*entity.DictionaryEntry, error) {
	query := repo.db.WithContext(ctx).Model(&model.DictionaryEntryModel{})
	if filter.Language != "" {
		query = query.Where("language = ?", filter.Language)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", string(filter.Difficulty))
	}
	if filter.Search != "" {
		query = query.Where("text ILIKE ?", containsPattern(filter.Search))
	}

	var rows []model.DictionaryEntryModel
	if err := query.Order("id").Offset(page.Skip).Limit(page.Limit).Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list dictionary entries")
	}

	entries := make([]*entity.DictionaryEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, toDictionaryDomain(&rows[i]))
	}

	return entries, nil
}

// Update replaces every editable column of the entry.
func (repo *dictionaryRepository) Update(ctx context.Context, entry *entity.DictionaryEntry) error {
	entryM := fromDictionaryDomain(entry)
	entryM.UpdatedAt = time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.DictionaryEntryModel{ID: entry.ID}).
		Select("text", "meaning", "example", "pronunciation", "difficulty", "language", "updated_at").
		Updates(entryM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return errors.WithStack(repository.ErrDictionaryEntryExists)
		}
		if isCheckConstraintViolation(result.Error) {
			return errors.WithStack(repository.ErrInvalidDifficulty)
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update dictionary entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDictionaryEntryNotFound
	}

	entry.UpdatedAt = entryM.UpdatedAt

	return nil
}

func (repo *dictionaryRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.DictionaryEntryModel{}, id)
	if result.Error != nil {
		// words.dictionary_id is ON DELETE RESTRICT
		if isForeignKeyConstraintViolation(result.Error) {
			return errors.WithStack(repository.ErrDictionaryEntryInUse)
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete dictionary entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDictionaryEntryNotFound
	}

	return nil
}

// containsPattern builds an ILIKE pattern matching s anywhere, with wildcards in s escaped.
func containsPattern(s string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)

	return "%" + escaped + "%"
}

func toDictionaryDomain(data *model.DictionaryEntryModel) *entity.DictionaryEntry {
	if data == nil {
		return nil
	}

	return &entity.DictionaryEntry{
		ID:            data.ID,
		Text:          data.Text,
		Meaning:       data.Meaning,
		Example:       data.Example,
		Pronunciation: data.Pronunciation,
		Difficulty:    entity.Difficulty(data.Difficulty),
		Language:      data.Language,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromDictionaryDomain(data *entity.DictionaryEntry) *model.DictionaryEntryModel {
	if data == nil {
		return nil
	}

	return &model.DictionaryEntryModel{
		ID:            data.ID,
		Text:          data.Text,
		Meaning:       data.Meaning,
		Example:       data.Example,
		Pronunciation: data.Pronunciation,
		Difficulty:    string(data.Difficulty),
		Language:      data.Language,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
