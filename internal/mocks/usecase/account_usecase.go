package usecase

import (
	"context"

	"wordtrainer/internal/domain/entity"
	"wordtrainer/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockAccountUsecase is a testify mock for usecase.AccountUsecase.
type MockAccountUsecase struct {
	mock.Mock
}

// MockAccountUsecase_Expecter records expectations with typed method names.
type MockAccountUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAccountUsecase) EXPECT() *MockAccountUsecase_Expecter {
	return &MockAccountUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockAccountUsecase) Signup(ctx context.Context, input *usecase.SignupInput) (*entity.Account, error) {
	ret := _m.Called(ctx, input)
	r0, _ := ret.Get(0).(*entity.Account)

	return r0, ret.Error(1)
}

func (_e *MockAccountUsecase_Expecter) Signup(ctx any, input any) *mock.Call {
	return _e.mock.On("Signup", ctx, input)
}

func (_m *MockAccountUsecase) Signin(ctx context.Context, input *usecase.SigninInput) (*usecase.SigninOutput, error) {
	ret := _m.Called(ctx, input)
	r0, _ := ret.Get(0).(*usecase.SigninOutput)

	return r0, ret.Error(1)
}

func (_e *MockAccountUsecase_Expecter) Signin(ctx any, input any) *mock.Call {
	return _e.mock.On("Signin", ctx, input)
}

func (_m *MockAccountUsecase) Authenticate(ctx context.Context, token string) (*entity.Account, error) {
	ret := _m.Called(ctx, token)
	r0, _ := ret.Get(0).(*entity.Account)

	return r0, ret.Error(1)
}

func (_e *MockAccountUsecase_Expecter) Authenticate(ctx any, token any) *mock.Call {
	return _e.mock.On("Authenticate", ctx, token)
}

// NewMockAccountUsecase creates a mock whose expectations are asserted when the test ends.
func NewMockAccountUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountUsecase {
	m := &MockAccountUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
