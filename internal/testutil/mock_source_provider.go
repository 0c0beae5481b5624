package testutil

import (
	"mfspatch/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockSourceProvider struct {
	mock.Mock
}

func (m *MockSourceProvider) ReadInstalled(config *domain.Config) ([]byte, error) {
	args := m.Called(config)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockSourceProvider) Fetch(config *domain.Config, workDir string) (*domain.PristineSource, error) {
	args := m.Called(config, workDir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PristineSource), args.Error(1)
}
