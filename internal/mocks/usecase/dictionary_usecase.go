package usecase

import (
	"context"

	"wordtrainer/internal/domain/entity"
	"wordtrainer/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockDictionaryUsecase is a testify mock for usecase.DictionaryUsecase.
type MockDictionaryUsecase struct {
	mock.Mock
}

// MockDictionaryUsecase_Expecter records expectations with typed method names.
type MockDictionaryUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockDictionaryUsecase) EXPECT() *MockDictionaryUsecase_Expecter {
	return &MockDictionaryUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockDictionaryUsecase) CreateEntry(ctx context.Context, input *usecase.DictionaryEntryInput) (*entity.DictionaryEntry, error) {
	ret := _m.Called(ctx, input)
	r0, _ := ret.Get(0).(*entity.DictionaryEntry)

	return r0, ret.Error(1)
}

func (_e *MockDictionaryUsecase_Expecter) CreateEntry(ctx any, input any) *mock.Call {
	return _e.mock.On("CreateEntry", ctx, input)
}

func (_m *MockDictionaryUsecase) ListEntries(ctx context.Context, query usecase.DictionaryQuery) ([]*entity.DictionaryEntry, error) {
	ret := _m.Called(ctx, query)
	r0, _ := ret.Get(0).([]*entity.DictionaryEntry)

	return r0, ret.Error(1)
}

func (_e *MockDictionaryUsecase_Expecter) ListEntries(ctx any, query any) *mock.Call {
	return _e.mock.On("ListEntries", ctx, query)
}

func (_m *MockDictionaryUsecase) GetEntry(ctx context.Context, id int64) (*entity.DictionaryEntry, error) {
	ret := _m.Called(ctx, id)
	r0, _ := ret.Get(0).(*entity.DictionaryEntry)

	return r0, ret.Error(1)
}

func (_e *MockDictionaryUsecase_Expecter) GetEntry(ctx any, id any) *mock.Call {
	return _e.mock.On("GetEntry", ctx, id)
}

func (_m *MockDictionaryUsecase) UpdateEntry(ctx context.Context, id int64, input *usecase.DictionaryEntryInput) (*entity.DictionaryEntry, error) {
	ret := _m.Called(ctx, id, input)
	r0, _ := ret.Get(0).(*entity.DictionaryEntry)

	return r0, ret.Error(1)
}

func (_e *MockDictionaryUsecase_Expecter) UpdateEntry(ctx any, id any, input any) *mock.Call {
	return _e.mock.On("UpdateEntry", ctx, id, input)
}

func (_m *MockDictionaryUsecase) DeleteEntry(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_e *MockDictionaryUsecase_Expecter) DeleteEntry(ctx any, id any) *mock.Call {
	return _e.mock.On("DeleteEntry", ctx, id)
}

func (_m *MockDictionaryUsecase) EntryQRCode(ctx context.Context, id int64) ([]byte, error) {
	ret := _m.Called(ctx, id)
	r0, _ := ret.Get(0).([]byte)

	return r0, ret.Error(1)
}

func (_e *MockDictionaryUsecase_Expecter) EntryQRCode(ctx any, id any) *mock.Call {
	return _e.mock.On("EntryQRCode", ctx, id)
}

func (_m *MockDictionaryUsecase) ResolveQRCode(ctx context.Context, data string) (*entity.DictionaryEntry, error) {
	ret := _m.Called(ctx, data)
	r0, _ := ret.Get(0).(*entity.DictionaryEntry)

	return r0, ret.Error(1)
}

func (_e *MockDictionaryUsecase_Expecter) ResolveQRCode(ctx any, data any) *mock.Call {
	return _e.mock.On("ResolveQRCode", ctx, data)
}

// NewMockDictionaryUsecase creates a mock whose expectations are asserted when the test ends.
func NewMockDictionaryUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDictionaryUsecase {
	m := &MockDictionaryUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
