package impl

import (
	"context"
	"testing"

	"wordtrainer/internal/domain/entity"
	domainerrors "wordtrainer/internal/domain/errors"
	"wordtrainer/internal/domain/repository"
	mockRepo "wordtrainer/internal/mocks/repository"
	"wordtrainer/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type wordServiceFixtures struct {
	service        usecase.WordUsecase
	wordRepo       *mockRepo.MockWordRepository
	dictionaryRepo *mockRepo.MockDictionaryRepository
	txManager      *mockRepo.MockTransactionManager
}

func createTestWordService(t *testing.T) wordServiceFixtures {
	wordRepo := mockRepo.NewMockWordRepository(t)
	dictionaryRepo := mockRepo.NewMockDictionaryRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	svc := NewWordService(WordServiceParams{
		WordRepo:       wordRepo,
		DictionaryRepo: dictionaryRepo,
		TxManager:      txManager,
		Logger:         newDiscardLogger(),
	})

	return wordServiceFixtures{
		service:        svc,
		wordRepo:       wordRepo,
		dictionaryRepo: dictionaryRepo,
		txManager:      txManager,
	}
}

func TestWordService_CreateWord(t *testing.T) {
	entry := &entity.DictionaryEntry{ID: 9, Text: "Haus", Meaning: "house", Difficulty: entity.DifficultyEasy, Language: "de"}

	tests := []struct {
		name  string
		input usecase.CreateWordInput
		want  entity.Word
	}{
		{
			name:  "copies entry",
			input: usecase.CreateWordInput{DictionaryID: 9},
			want:  entity.Word{DictionaryID: 9, Text: "Haus", Meaning: "house", Difficulty: entity.DifficultyEasy},
		},
		{
			name: "overrides",
			input: usecase.CreateWordInput{
				DictionaryID: 9,
				Meaning:      ptr("building"),
				Difficulty:   ptr(entity.DifficultyHard),
			},
			want: entity.Word{DictionaryID: 9, Text: "Haus", Meaning: "building", Difficulty: entity.DifficultyHard},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestWordService(t)
			ctx := context.Background()
			accountID := uuid.New()

			fx.dictionaryRepo.EXPECT().FindByID(ctx, int64(9)).Return(entry, nil)
			fx.wordRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Word")).Return(nil)

			word, err := fx.service.CreateWord(ctx, accountID, &tt.input)

			require.NoError(t, err)
			assert.Equal(t, accountID, word.AccountID)
			assert.Equal(t, tt.want.DictionaryID, word.DictionaryID)
			assert.Equal(t, tt.want.Text, word.Text)
			assert.Equal(t, tt.want.Meaning, word.Meaning)
			assert.Equal(t, tt.want.Difficulty, word.Difficulty)
		})
	}
}

func TestWordService_CreateWord_Errors(t *testing.T) {
	entry := &entity.DictionaryEntry{ID: 9, Text: "Haus", Meaning: "house"}

	tests := []struct {
		name    string
		setup   func(fx wordServiceFixtures)
		wantErr error
	}{
		{
			name: "unknown dictionary entry",
			setup: func(fx wordServiceFixtures) {
				fx.dictionaryRepo.EXPECT().FindByID(mock.Anything, int64(9)).Return(nil, repository.ErrDictionaryEntryNotFound)
			},
			wantErr: domainerrors.ErrDictionaryEntryNotFound,
		},
		{
			name: "already on the list",
			setup: func(fx wordServiceFixtures) {
				fx.dictionaryRepo.EXPECT().FindByID(mock.Anything, int64(9)).Return(entry, nil)
				fx.wordRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.WithStack(repository.ErrWordAlreadyAdded))
			},
			wantErr: domainerrors.ErrWordAlreadyAdded,
		},
		{
			name: "entry deleted meanwhile",
			setup: func(fx wordServiceFixtures) {
				fx.dictionaryRepo.EXPECT().FindByID(mock.Anything, int64(9)).Return(entry, nil)
				fx.wordRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.WithStack(repository.ErrDictionaryEntryNotFound))
			},
			wantErr: domainerrors.ErrDictionaryEntryNotFound,
		},
		{
			name: "account deleted meanwhile",
			setup: func(fx wordServiceFixtures) {
				fx.dictionaryRepo.EXPECT().FindByID(mock.Anything, int64(9)).Return(entry, nil)
				fx.wordRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.WithStack(repository.ErrAccountNotFound))
			},
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name: "difficulty rejected by store",
			setup: func(fx wordServiceFixtures) {
				fx.dictionaryRepo.EXPECT().FindByID(mock.Anything, int64(9)).Return(entry, nil)
				fx.wordRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.WithStack(repository.ErrInvalidDifficulty))
			},
			wantErr: domainerrors.ErrInvalidDifficulty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestWordService(t)
			tt.setup(fx)

			word, err := fx.service.CreateWord(context.Background(), uuid.New(), &usecase.CreateWordInput{DictionaryID: 9})

			assert.Nil(t, word)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWordService_GetWord_OtherAccount(t *testing.T) {
	fx := createTestWordService(t)
	ctx := context.Background()
	accountID := uuid.New()

	fx.wordRepo.EXPECT().FindByID(ctx, accountID, int64(4)).Return(nil, repository.ErrWordNotFound)

	_, err := fx.service.GetWord(ctx, accountID, 4)

	assert.ErrorIs(t, err, domainerrors.ErrWordNotFound)
}

func TestWordService_ListWords(t *testing.T) {
	fx := createTestWordService(t)
	ctx := context.Background()
	accountID := uuid.New()
	query := usecase.WordQuery{
		Filter: repository.WordFilter{Difficulty: entity.DifficultyHard},
		Page:   repository.Page{Limit: 10},
	}
	want := []*entity.Word{{ID: 1, AccountID: accountID}}

	fx.wordRepo.EXPECT().List(ctx, accountID, query.Filter, query.Page).Return(want, nil)

	got, err := fx.service.ListWords(ctx, accountID, query)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWordService_UpdateWord(t *testing.T) {
	fx := createTestWordService(t)
	ctx := context.Background()
	accountID := uuid.New()
	existing := &entity.Word{ID: 4, AccountID: accountID, Text: "Haus", Meaning: "house", Difficulty: entity.DifficultyEasy}

	txWords := mockRepo.NewMockWordRepository(t)
	txWords.EXPECT().FindByID(ctx, accountID, int64(4)).Return(existing, nil)
	txWords.EXPECT().Update(ctx, existing).Return(nil)
	fx.txManager.EXPECT().Execute(ctx, mock.Anything).Return(mockRepo.RunInTx(&mockRepo.Factory{Words: txWords}))

	word, err := fx.service.UpdateWord(ctx, accountID, 4, &usecase.UpdateWordInput{Meaning: ptr("home")})

	require.NoError(t, err)
	assert.Equal(t, "home", word.Meaning)
	assert.Equal(t, "Haus", word.Text)
}

func TestWordService_UpdateWord_NotFound(t *testing.T) {
	fx := createTestWordService(t)
	ctx := context.Background()
	accountID := uuid.New()

	txWords := mockRepo.NewMockWordRepository(t)
	txWords.EXPECT().FindByID(ctx, accountID, int64(4)).Return(nil, repository.ErrWordNotFound)
	fx.txManager.EXPECT().Execute(ctx, mock.Anything).Return(mockRepo.RunInTx(&mockRepo.Factory{Words: txWords}))

	_, err := fx.service.UpdateWord(ctx, accountID, 4, &usecase.UpdateWordInput{})

	assert.ErrorIs(t, err, domainerrors.ErrWordNotFound)
}

func TestWordService_DeleteWord(t *testing.T) {
	fx := createTestWordService(t)
	ctx := context.Background()
	accountID := uuid.New()

	fx.wordRepo.EXPECT().Delete(ctx, accountID, int64(4)).Return(nil).Once()
	fx.wordRepo.EXPECT().Delete(ctx, accountID, int64(5)).Return(repository.ErrWordNotFound).Once()

	require.NoError(t, fx.service.DeleteWord(ctx, accountID, 4))
	assert.ErrorIs(t, fx.service.DeleteWord(ctx, accountID, 5), domainerrors.ErrWordNotFound)
}
