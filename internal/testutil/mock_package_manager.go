package testutil

import (
	"github.com/stretchr/testify/mock"
)

type MockPackageManager struct {
	mock.Mock
}

func (m *MockPackageManager) InstalledVersion(packageName string) (string, error) {
	args := m.Called(packageName)
	return args.String(0), args.Error(1)
}

func (m *MockPackageManager) Download(packageName string, dir string) (string, error) {
	args := m.Called(packageName, dir)
	return args.String(0), args.Error(1)
}

type MockPackageExtractor struct {
	mock.Mock
}

func (m *MockPackageExtractor) ExtractMember(packagePath string, member string, destDir string) (string, error) {
	args := m.Called(packagePath, member, destDir)
	return args.String(0), args.Error(1)
}
