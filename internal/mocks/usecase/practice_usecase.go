package usecase

import (
	"context"

	"wordtrainer/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPracticeUsecase is a testify mock for usecase.PracticeUsecase.
type MockPracticeUsecase struct {
	mock.Mock
}

// MockPracticeUsecase_Expecter records expectations with typed method names.
type MockPracticeUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPracticeUsecase) EXPECT() *MockPracticeUsecase_Expecter {
	return &MockPracticeUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockPracticeUsecase) RecordPractice(ctx context.Context, accountID uuid.UUID, wordID int64, correct bool) (*entity.PracticeSession, error) {
	ret := _m.Called(ctx, accountID, wordID, correct)
	r0, _ := ret.Get(0).(*entity.PracticeSession)

	return r0, ret.Error(1)
}

func (_e *MockPracticeUsecase_Expecter) RecordPractice(ctx any, accountID any, wordID any, correct any) *mock.Call {
	return _e.mock.On("RecordPractice", ctx, accountID, wordID, correct)
}

func (_m *MockPracticeUsecase) GetStats(ctx context.Context, accountID uuid.UUID, wordID int64) (*entity.PracticeStats, error) {
	ret := _m.Called(ctx, accountID, wordID)
	r0, _ := ret.Get(0).(*entity.PracticeStats)

	return r0, ret.Error(1)
}

func (_e *MockPracticeUsecase_Expecter) GetStats(ctx any, accountID any, wordID any) *mock.Call {
	return _e.mock.On("GetStats", ctx, accountID, wordID)
}

// NewMockPracticeUsecase creates a mock whose expectations are asserted when the test ends.
func NewMockPracticeUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPracticeUsecase {
	m := &MockPracticeUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
