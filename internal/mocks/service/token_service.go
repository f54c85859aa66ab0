package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTokenService is a testify mock for service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// MockTokenService_Expecter records expectations with typed method names.
type MockTokenService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenService) EXPECT() *MockTokenService_Expecter {
	return &MockTokenService_Expecter{mock: &_m.Mock}
}

func (_m *MockTokenService) Issue(accountID uuid.UUID, ttl time.Duration) (string, error) {
	ret := _m.Called(accountID, ttl)

	return ret.String(0), ret.Error(1)
}

func (_e *MockTokenService_Expecter) Issue(accountID any, ttl any) *mock.Call {
	return _e.mock.On("Issue", accountID, ttl)
}

func (_m *MockTokenService) IssueAccessToken(accountID uuid.UUID) (string, error) {
	ret := _m.Called(accountID)

	return ret.String(0), ret.Error(1)
}

func (_e *MockTokenService_Expecter) IssueAccessToken(accountID any) *mock.Call {
	return _e.mock.On("IssueAccessToken", accountID)
}

func (_m *MockTokenService) Verify(token string) (uuid.UUID, error) {
	ret := _m.Called(token)
	r0, _ := ret.Get(0).(uuid.UUID)

	return r0, ret.Error(1)
}

func (_e *MockTokenService_Expecter) Verify(token any) *mock.Call {
	return _e.mock.On("Verify", token)
}

func (_m *MockTokenService) AccessTTL() time.Duration {
	ret := _m.Called()
	r0, _ := ret.Get(0).(time.Duration)

	return r0
}

func (_e *MockTokenService_Expecter) AccessTTL() *mock.Call {
	return _e.mock.On("AccessTTL")
}

// NewMockTokenService creates a mock whose expectations are asserted when the test ends.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
