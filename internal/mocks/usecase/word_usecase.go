package usecase

import (
	"context"

	"wordtrainer/internal/domain/entity"
	"wordtrainer/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockWordUsecase is a testify mock for usecase.WordUsecase.
type MockWordUsecase struct {
	mock.Mock
}

// MockWordUsecase_Expecter records expectations with typed method names.
type MockWordUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockWordUsecase) EXPECT() *MockWordUsecase_Expecter {
	return &MockWordUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockWordUsecase) CreateWord(ctx context.Context, accountID uuid.UUID, input *usecase.CreateWordInput) (*entity.Word, error) {
	ret := _m.Called(ctx, accountID, input)
	r0, _ := ret.Get(0).(*entity.Word)

	return r0, ret.Error(1)
}

func (_e *MockWordUsecase_Expecter) CreateWord(ctx any, accountID any, input any) *mock.Call {
	return _e.mock.On("CreateWord", ctx, accountID, input)
}

func (_m *MockWordUsecase) ListWords(ctx context.Context, accountID uuid.UUID, query usecase.WordQuery) ([]*entity.Word, error) {
	ret := _m.Called(ctx, accountID, query)
	r0, _ := ret.Get(0).([]*entity.Word)

	return r0, ret.Error(1)
}

func (_e *MockWordUsecase_Expecter) ListWords(ctx any, accountID any, query any) *mock.Call {
	return _e.mock.On("ListWords", ctx, accountID, query)
}

func (_m *MockWordUsecase) GetWord(ctx context.Context, accountID uuid.UUID, id int64) (*entity.Word, error) {
	ret := _m.Called(ctx, accountID, id)
	r0, _ := ret.Get(0).(*entity.Word)

	return r0, ret.Error(1)
}

func (_e *MockWordUsecase_Expecter) GetWord(ctx any, accountID any, id any) *mock.Call {
	return _e.mock.On("GetWord", ctx, accountID, id)
}

func (_m *MockWordUsecase) UpdateWord(ctx context.Context, accountID uuid.UUID, id int64, input *usecase.UpdateWordInput) (*entity.Word, error) {
	ret := _m.Called(ctx, accountID, id, input)
	r0, _ := ret.Get(0).(*entity.Word)

	return r0, ret.Error(1)
}

func (_e *MockWordUsecase_Expecter) UpdateWord(ctx any, accountID any, id any, input any) *mock.Call {
	return _e.mock.On("UpdateWord", ctx, accountID, id, input)
}

func (_m *MockWordUsecase) DeleteWord(ctx context.Context, accountID uuid.UUID, id int64) error {
	ret := _m.Called(ctx, accountID, id)

	return ret.Error(0)
}

func (_e *MockWordUsecase_Expecter) DeleteWord(ctx any, accountID any, id any) *mock.Call {
	return _e.mock.On("DeleteWord", ctx, accountID, id)
}

// NewMockWordUsecase creates a mock whose expectations are asserted when the test ends.
func NewMockWordUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWordUsecase {
	m := &MockWordUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
