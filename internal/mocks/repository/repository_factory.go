package repository

import (
	"wordtrainer/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockRepositoryFactory is a testify mock for repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

// MockRepositoryFactory_Expecter records expectations with typed method names.
type MockRepositoryFactory_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRepositoryFactory) EXPECT() *MockRepositoryFactory_Expecter {
	return &MockRepositoryFactory_Expecter{mock: &_m.Mock}
}

func (_m *MockRepositoryFactory) AccountRepo() repository.AccountRepository {
	ret := _m.Called()
	r0, _ := ret.Get(0).(repository.AccountRepository)

	return r0
}

func (_e *MockRepositoryFactory_Expecter) AccountRepo() *mock.Call {
	return _e.mock.On("AccountRepo")
}

func (_m *MockRepositoryFactory) ProfileRepo() repository.ProfileRepository {
	ret := _m.Called()
	r0, _ := ret.Get(0).(repository.ProfileRepository)

	return r0
}

func (_e *MockRepositoryFactory_Expecter) ProfileRepo() *mock.Call {
	return _e.mock.On("ProfileRepo")
}

func (_m *MockRepositoryFactory) DictionaryRepo() repository.DictionaryRepository {
	ret := _m.Called()
	r0, _ := ret.Get(0).(repository.DictionaryRepository)

	return r0
}

func (_e *MockRepositoryFactory_Expecter) DictionaryRepo() *mock.Call {
	return _e.mock.On("DictionaryRepo")
}

func (_m *MockRepositoryFactory) WordRepo() repository.WordRepository {
	ret := _m.Called()
	r0, _ := ret.Get(0).(repository.WordRepository)

	return r0
}

func (_e *MockRepositoryFactory_Expecter) WordRepo() *mock.Call {
	return _e.mock.On("WordRepo")
}

func (_m *MockRepositoryFactory) PracticeRepo() repository.PracticeRepository {
	ret := _m.Called()
	r0, _ := ret.Get(0).(repository.PracticeRepository)

	return r0
}

func (_e *MockRepositoryFactory_Expecter) PracticeRepo() *mock.Call {
	return _e.mock.On("PracticeRepo")
}

// NewMockRepositoryFactory creates a mock whose expectations are asserted when the test ends.
func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
