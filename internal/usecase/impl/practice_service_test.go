package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "wordtrainer/internal/delivery/context"
	"wordtrainer/internal/domain/entity"
	domainerrors "wordtrainer/internal/domain/errors"
	"wordtrainer/internal/domain/repository"
	"wordtrainer/internal/domain/service"
	mockRepo "wordtrainer/internal/mocks/repository"
	mockSvc "wordtrainer/internal/mocks/service"
	"wordtrainer/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type practiceServiceFixtures struct {
	service        usecase.PracticeUsecase
	wordRepo       *mockRepo.MockWordRepository
	practiceRepo   *mockRepo.MockPracticeRepository
	txManager      *mockRepo.MockTransactionManager
	eventPublisher *mockSvc.MockEventPublisher
}

func createTestPracticeService(t *testing.T) practiceServiceFixtures {
	wordRepo := mockRepo.NewMockWordRepository(t)
	practiceRepo := mockRepo.NewMockPracticeRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)

	svc := NewPracticeService(PracticeServiceParams{
		WordRepo:       wordRepo,
		PracticeRepo:   practiceRepo,
		TxManager:      txManager,
		EventPublisher: eventPublisher,
		Logger:         newDiscardLogger(),
	})

	return practiceServiceFixtures{
		service:        svc,
		wordRepo:       wordRepo,
		practiceRepo:   practiceRepo,
		txManager:      txManager,
		eventPublisher: eventPublisher,
	}
}

func expectPracticeTx(t *testing.T, ctx context.Context, fx practiceServiceFixtures, word *entity.Word, createErr error) {
	t.Helper()

	txWords := mockRepo.NewMockWordRepository(t)
	txPractice := mockRepo.NewMockPracticeRepository(t)
	txWords.EXPECT().FindByID(ctx, word.AccountID, word.ID).Return(word, nil)
	txPractice.EXPECT().Create(ctx, mock.AnythingOfType("*entity.PracticeSession")).
		Run(func(args mock.Arguments) {
			session := args.Get(1).(*entity.PracticeSession)
			session.ID = 77
			session.CreatedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		}).
		Return(createErr)

	fx.txManager.EXPECT().Execute(ctx, mock.Anything).
		Return(mockRepo.RunInTx(&mockRepo.Factory{Words: txWords, Practice: txPractice}))
}

func TestPracticeService_RecordPractice_PublishesEvent(t *testing.T) {
	fx := createTestPracticeService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-7")
	accountID := uuid.New()
	word := &entity.Word{ID: 4, AccountID: accountID, DictionaryID: 9}

	expectPracticeTx(t, ctx, fx, word, nil)
	fx.eventPublisher.EXPECT().
		PublishPracticeEvent(ctx, mock.MatchedBy(func(e *service.PracticeEvent) bool {
			return e.SessionID == 77 &&
				e.AccountID == accountID.String() &&
				e.WordID == 4 &&
				e.DictionaryID == 9 &&
				e.Correct &&
				e.RequestID == "req-7"
		})).
		Return(nil)

	session, err := fx.service.RecordPractice(ctx, accountID, 4, true)

	require.NoError(t, err)
	assert.Equal(t, int64(77), session.ID)
	assert.True(t, session.Correct)
}

func TestPracticeService_RecordPractice_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestPracticeService(t)
	ctx := context.Background()
	accountID := uuid.New()
	word := &entity.Word{ID: 4, AccountID: accountID, DictionaryID: 9}

	expectPracticeTx(t, ctx, fx, word, nil)
	fx.eventPublisher.EXPECT().PublishPracticeEvent(ctx, mock.Anything).Return(errors.New("topic unavailable"))

	session, err := fx.service.RecordPractice(ctx, accountID, 4, false)

	require.NoError(t, err)
	assert.False(t, session.Correct)
}

func TestPracticeService_RecordPractice_UnknownWord(t *testing.T) {
	fx := createTestPracticeService(t)
	ctx := context.Background()
	accountID := uuid.New()

	txWords := mockRepo.NewMockWordRepository(t)
	txWords.EXPECT().FindByID(ctx, accountID, int64(4)).Return(nil, repository.ErrWordNotFound)
	fx.txManager.EXPECT().Execute(ctx, mock.Anything).Return(mockRepo.RunInTx(&mockRepo.Factory{Words: txWords}))

	session, err := fx.service.RecordPractice(ctx, accountID, 4, true)

	assert.Nil(t, session)
	assert.ErrorIs(t, err, domainerrors.ErrWordNotFound)
	fx.eventPublisher.AssertNotCalled(t, "PublishPracticeEvent", mock.Anything, mock.Anything)
}

func TestPracticeService_RecordPractice_StoreFailure(t *testing.T) {
	fx := createTestPracticeService(t)
	ctx := context.Background()
	accountID := uuid.New()
	word := &entity.Word{ID: 4, AccountID: accountID}

	expectPracticeTx(t, ctx, fx, word, errors.New("disk full"))

	_, err := fx.service.RecordPractice(ctx, accountID, 4, true)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	fx.eventPublisher.AssertNotCalled(t, "PublishPracticeEvent", mock.Anything, mock.Anything)
}

func TestPracticeService_GetStats(t *testing.T) {
	fx := createTestPracticeService(t)
	ctx := context.Background()
	accountID := uuid.New()
	last := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	want := &entity.PracticeStats{TotalPractices: 3, CorrectAnswers: 2, LastPracticed: &last}

	fx.wordRepo.EXPECT().FindByID(ctx, accountID, int64(4)).Return(&entity.Word{ID: 4}, nil)
	fx.practiceRepo.EXPECT().StatsByWordID(ctx, int64(4)).Return(want, nil)

	stats, err := fx.service.GetStats(ctx, accountID, 4)

	require.NoError(t, err)
	assert.Equal(t, want, stats)
	assert.InDelta(t, 66.67, stats.SuccessRate(), 0.0001)
}

func TestPracticeService_GetStats_OtherAccountsWord(t *testing.T) {
	fx := createTestPracticeService(t)
	ctx := context.Background()
	accountID := uuid.New()

	fx.wordRepo.EXPECT().FindByID(ctx, accountID, int64(4)).Return(nil, repository.ErrWordNotFound)

	_, err := fx.service.GetStats(ctx, accountID, 4)

	assert.ErrorIs(t, err, domainerrors.ErrWordNotFound)
	fx.practiceRepo.AssertNotCalled(t, "StatsByWordID", mock.Anything, mock.Anything)
}
