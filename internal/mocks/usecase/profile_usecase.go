package usecase

import (
	"context"

	"wordtrainer/internal/domain/entity"
	"wordtrainer/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockProfileUsecase is a testify mock for usecase.ProfileUsecase.
type MockProfileUsecase struct {
	mock.Mock
}

// MockProfileUsecase_Expecter records expectations with typed method names.
type MockProfileUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockProfileUsecase) EXPECT() *MockProfileUsecase_Expecter {
	return &MockProfileUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockProfileUsecase) CreateProfile(ctx context.Context, accountID uuid.UUID, input *usecase.CreateProfileInput) (*entity.Profile, error) {
	ret := _m.Called(ctx, accountID, input)
	r0, _ := ret.Get(0).(*entity.Profile)

	return r0, ret.Error(1)
}

func (_e *MockProfileUsecase_Expecter) CreateProfile(ctx any, accountID any, input any) *mock.Call {
	return _e.mock.On("CreateProfile", ctx, accountID, input)
}

func (_m *MockProfileUsecase) GetProfile(ctx context.Context, accountID uuid.UUID) (*entity.Profile, error) {
	ret := _m.Called(ctx, accountID)
	r0, _ := ret.Get(0).(*entity.Profile)

	return r0, ret.Error(1)
}

func (_e *MockProfileUsecase_Expecter) GetProfile(ctx any, accountID any) *mock.Call {
	return _e.mock.On("GetProfile", ctx, accountID)
}

func (_m *MockProfileUsecase) UpdateProfile(ctx context.Context, accountID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	ret := _m.Called(ctx, accountID, input)
	r0, _ := ret.Get(0).(*entity.Profile)

	return r0, ret.Error(1)
}

func (_e *MockProfileUsecase_Expecter) UpdateProfile(ctx any, accountID any, input any) *mock.Call {
	return _e.mock.On("UpdateProfile", ctx, accountID, input)
}

// NewMockProfileUsecase creates a mock whose expectations are asserted when the test ends.
func NewMockProfileUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProfileUsecase {
	m := &MockProfileUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
