package repository

import (
	"context"

	"wordtrainer/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockPracticeRepository is a testify mock for repository.PracticeRepository.
type MockPracticeRepository struct {
	mock.Mock
}

// MockPracticeRepository_Expecter records expectations with typed method names.
type MockPracticeRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPracticeRepository) EXPECT() *MockPracticeRepository_Expecter {
	return &MockPracticeRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockPracticeRepository) Create(ctx context.Context, session *entity.PracticeSession) error {
	ret := _m.Called(ctx, session)

	return ret.Error(0)
}

func (_e *MockPracticeRepository_Expecter) Create(ctx any, session any) *mock.Call {
	return _e.mock.On("Create", ctx, session)
}

func (_m *MockPracticeRepository) StatsByWordID(ctx context.Context, wordID int64) (*entity.PracticeStats, error) {
	ret := _m.Called(ctx, wordID)
	r0, _ := ret.Get(0).(*entity.PracticeStats)

	return r0, ret.Error(1)
}

func (_e *MockPracticeRepository_Expecter) StatsByWordID(ctx any, wordID any) *mock.Call {
	return _e.mock.On("StatsByWordID", ctx, wordID)
}

// NewMockPracticeRepository creates a mock whose expectations are asserted when the test ends.
func NewMockPracticeRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPracticeRepository {
	m := &MockPracticeRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
