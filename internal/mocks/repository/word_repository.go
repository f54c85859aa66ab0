package repository

import (
	"context"

	"wordtrainer/internal/domain/entity"
	"wordtrainer/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockWordRepository is a testify mock for repository.WordRepository.
type MockWordRepository struct {
	mock.Mock
}

// MockWordRepository_Expecter records expectations with typed method names.
type MockWordRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockWordRepository) EXPECT() *MockWordRepository_Expecter {
	return &MockWordRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockWordRepository) Create(ctx context.Context, word *entity.Word) error {
	ret := _m.Called(ctx, word)

	return ret.Error(0)
}

func (_e *MockWordRepository_Expecter) Create(ctx any, word any) *mock.Call {
	return _e.mock.On("Create", ctx, word)
}

func (_m *MockWordRepository) FindByID(ctx context.Context, accountID uuid.UUID, id int64) (*entity.Word, error) {
	ret := _m.Called(ctx, accountID, id)
	r0, _ := ret.Get(0).(*entity.Word)

	return r0, ret.Error(1)
}

func (_e *MockWordRepository_Expecter) FindByID(ctx any, accountID any, id any) *mock.Call {
	return _e.mock.On("FindByID", ctx, accountID, id)
}

func (_m *MockWordRepository) List(ctx context.Context, accountID uuid.UUID, filter repository.WordFilter, page repository.Page) ([]*entity.Word, error) {
	ret := _m.Called(ctx, accountID, filter, page)
	r0, _ := ret.Get(0).([]*entity.Word)

	return r0, ret.Error(1)
}

func (_e *MockWordRepository_Expecter) List(ctx any, accountID any, filter any, page any) *mock.Call {
	return _e.mock.On("List", ctx, accountID, filter, page)
}

func (_m *MockWordRepository) Update(ctx context.Context, word *entity.Word) error {
	ret := _m.Called(ctx, word)

	return ret.Error(0)
}

func (_e *MockWordRepository_Expecter) Update(ctx any, word any) *mock.Call {
	return _e.mock.On("Update", ctx, word)
}

func (_m *MockWordRepository) Delete(ctx context.Context, accountID uuid.UUID, id int64) error {
	ret := _m.Called(ctx, accountID, id)

	return ret.Error(0)
}

func (_e *MockWordRepository_Expecter) Delete(ctx any, accountID any, id any) *mock.Call {
	return _e.mock.On("Delete", ctx, accountID, id)
}

func (_m *MockWordRepository) CountByDictionaryID(ctx context.Context, dictionaryID int64) (int64, error) {
	ret := _m.Called(ctx, dictionaryID)
	r0, _ := ret.Get(0).(int64)

	return r0, ret.Error(1)
}

func (_e *MockWordRepository_Expecter) CountByDictionaryID(ctx any, dictionaryID any) *mock.Call {
	return _e.mock.On("CountByDictionaryID", ctx, dictionaryID)
}

// NewMockWordRepository creates a mock whose expectations are asserted when the test ends.
func NewMockWordRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWordRepository {
	m := &MockWordRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
