package repository

import (
	"context"

	"wordtrainer/internal/domain/entity"
	"wordtrainer/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockDictionaryRepository is a testify mock for repository.DictionaryRepository.
type MockDictionaryRepository struct {
	mock.Mock
}

// MockDictionaryRepository_Expecter records expectations with typed method names.
type MockDictionaryRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockDictionaryRepository) EXPECT() *MockDictionaryRepository_Expecter {
	return &MockDictionaryRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockDictionaryRepository) Create(ctx context.Context, entry *entity.DictionaryEntry) error {
	ret := _m.Called(ctx, entry)

	return ret.Error(0)
}

func (_e *MockDictionaryRepository_Expecter) Create(ctx any, entry any) *mock.Call {
	return _e.mock.On("Create", ctx, entry)
}

func (_m *MockDictionaryRepository) FindByID(ctx context.Context, id int64) (*entity.DictionaryEntry, error) {
	ret := _m.Called(ctx, id)
	r0, _ := ret.Get(0).(*entity.DictionaryEntry)

	return r0, ret.Error(1)
}

func (_e *MockDictionaryRepository_Expecter) FindByID(ctx any, id any) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_m *MockDictionaryRepository) FindByTextAndLanguage(ctx context.Context, text string, language string) (*entity.DictionaryEntry, error) {
	ret := _m.Called(ctx, text, language)
	r0, _ := ret.Get(0).(*entity.DictionaryEntry)

	return r0, ret.Error(1)
}

func (_e *MockDictionaryRepository_Expecter) FindByTextAndLanguage(ctx any, text any, language any) *mock.Call {
	return _e.mock.On("FindByTextAndLanguage", ctx, text, language)
}

func (_m *MockDictionaryRepository) List(ctx context.Context, filter repository.DictionaryFilter, page repository.Page) ([]*entity.DictionaryEntry, error) {
	ret := _m.Called(ctx, filter, page)
	r0, _ := ret.Get(0).([]*entity.DictionaryEntry)

	return r0, ret.Error(1)
}

func (_e *MockDictionaryRepository_Expecter) List(ctx any, filter any, page any) *mock.Call {
	return _e.mock.On("List", ctx, filter, page)
}

func (_m *MockDictionaryRepository) Update(ctx context.Context, entry *entity.DictionaryEntry) error {
	ret := _m.Called(ctx, entry)

	return ret.Error(0)
}

func (_e *MockDictionaryRepository_Expecter) Update(ctx any, entry any) *mock.Call {
	return _e.mock.On("Update", ctx, entry)
}

func (_m *MockDictionaryRepository) Delete(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_e *MockDictionaryRepository_Expecter) Delete(ctx any, id any) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

// NewMockDictionaryRepository creates a mock whose expectations are asserted when the test ends.
func NewMockDictionaryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDictionaryRepository {
	m := &MockDictionaryRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
