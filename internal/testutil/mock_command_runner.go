package testutil

import (
	"mfspatch/internal/ports"

	"github.com/stretchr/testify/mock"
)

// MockCommandRunner provides a testify mock for ports.CommandRunner
type MockCommandRunner struct {
	mock.Mock
}

func (m *MockCommandRunner) Run(name string, args ...string) ([]byte, error) {
	callArgs := m.Called(name, args)
	if callArgs.Get(0) == nil {
		return nil, callArgs.Error(1)
	}
	return callArgs.Get(0).([]byte), callArgs.Error(1)
}

func (m *MockCommandRunner) RunInDir(dir, name string, args ...string) ([]byte, error) {
	callArgs := m.Called(dir, name, args)
	if callArgs.Get(0) == nil {
		return nil, callArgs.Error(1)
	}
	return callArgs.Get(0).([]byte), callArgs.Error(1)
}

func (m *MockCommandRunner) Capture(dir string, name string, args ...string) (ports.CommandResult, error) {
	callArgs := m.Called(dir, name, args)
	return callArgs.Get(0).(ports.CommandResult), callArgs.Error(1)
}

func (m *MockCommandRunner) LookPath(name string) (string, error) {
	callArgs := m.Called(name)
	return callArgs.String(0), callArgs.Error(1)
}
