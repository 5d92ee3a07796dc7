// Package mocks provides testify mocks for the apps package.
package mocks

import (
	"net/http"

	"github.com/atlanticdynamic/greeter/internal/server/apps"
	"github.com/stretchr/testify/mock"
)

var _ apps.App = (*MockApp)(nil)

// MockApp is a mock implementation of the App interface for testing
type MockApp struct {
	mock.Mock
}

// NewMockApp creates a new MockApp instance with optional ID preset
func NewMockApp(id string) *MockApp {
	mockApp := &MockApp{}
	if id != "" {
		mockApp.On("String").Return(id)
	}
	return mockApp
}

// String returns the mocked unique identifier of the application
func (m *MockApp) String() string {
	args := m.Called()
	return args.String(0)
}

// Respond returns the mocked response
func (m *MockApp) Respond(r *http.Request) apps.Response {
	args := m.Called(r)
	return args.Get(0).(apps.Response)
}
