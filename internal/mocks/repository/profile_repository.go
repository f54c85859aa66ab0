package repository

import (
	"context"

	"wordtrainer/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockProfileRepository is a testify mock for repository.ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

// MockProfileRepository_Expecter records expectations with typed method names.
type MockProfileRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockProfileRepository) EXPECT() *MockProfileRepository_Expecter {
	return &MockProfileRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockProfileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	ret := _m.Called(ctx, profile)

	return ret.Error(0)
}

func (_e *MockProfileRepository_Expecter) Create(ctx any, profile any) *mock.Call {
	return _e.mock.On("Create", ctx, profile)
}

func (_m *MockProfileRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.Profile, error) {
	ret := _m.Called(ctx, accountID)
	r0, _ := ret.Get(0).(*entity.Profile)

	return r0, ret.Error(1)
}

func (_e *MockProfileRepository_Expecter) FindByAccountID(ctx any, accountID any) *mock.Call {
	return _e.mock.On("FindByAccountID", ctx, accountID)
}

func (_m *MockProfileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	ret := _m.Called(ctx, profile)

	return ret.Error(0)
}

func (_e *MockProfileRepository_Expecter) Update(ctx any, profile any) *mock.Call {
	return _e.mock.On("Update", ctx, profile)
}

// NewMockProfileRepository creates a mock whose expectations are asserted when the test ends.
func NewMockProfileRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProfileRepository {
	m := &MockProfileRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
