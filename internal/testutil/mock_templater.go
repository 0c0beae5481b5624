package testutil

import (
	"github.com/stretchr/testify/mock"
)

// MockTemplater provides a testify mock for ports.Templater
type MockTemplater struct {
	mock.Mock
}

func (m *MockTemplater) Render(templateText string, templateName string, values map[string]interface{}) (string, error) {
	args := m.Called(templateText, templateName, values)
	return args.String(0), args.Error(1)
}
