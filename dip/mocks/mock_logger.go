package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockLogger records Log calls for assertions.
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Log(message string) error {
	args := m.Called(message)
	return args.Error(0)
}
