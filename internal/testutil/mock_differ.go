package testutil

import (
	"mfspatch/internal/ports"

	"github.com/stretchr/testify/mock"
)

type MockDiffer struct {
	mock.Mock
}

func (m *MockDiffer) Diff(original ports.DiffInput, modified ports.DiffInput) ([]byte, error) {
	args := m.Called(original, modified)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockPatchValidator struct {
	mock.Mock
}

func (m *MockPatchValidator) Validate(request ports.ValidationRequest) (ports.ValidationResult, error) {
	args := m.Called(request)
	return args.Get(0).(ports.ValidationResult), args.Error(1)
}
