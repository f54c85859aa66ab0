package service

import (
	"wordtrainer/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockQRCodeService is a testify mock for service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

// MockQRCodeService_Expecter records expectations with typed method names.
type MockQRCodeService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockQRCodeService) EXPECT() *MockQRCodeService_Expecter {
	return &MockQRCodeService_Expecter{mock: &_m.Mock}
}

func (_m *MockQRCodeService) GenerateEntryQR(card service.EntryCard) ([]byte, error) {
	ret := _m.Called(card)
	r0, _ := ret.Get(0).([]byte)

	return r0, ret.Error(1)
}

func (_e *MockQRCodeService_Expecter) GenerateEntryQR(card any) *mock.Call {
	return _e.mock.On("GenerateEntryQR", card)
}

func (_m *MockQRCodeService) ParseEntryQR(qrData string) (*service.EntryCard, error) {
	ret := _m.Called(qrData)
	r0, _ := ret.Get(0).(*service.EntryCard)

	return r0, ret.Error(1)
}

func (_e *MockQRCodeService_Expecter) ParseEntryQR(qrData any) *mock.Call {
	return _e.mock.On("ParseEntryQR", qrData)
}

// NewMockQRCodeService creates a mock whose expectations are asserted when the test ends.
func NewMockQRCodeService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
