package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mfspatch/internal/ports"
)

type OsFileSystem struct{}

func ProvideOsFileSystem() *OsFileSystem {
	return &OsFileSystem{}
}

func (f *OsFileSystem) ReadFile(path string) ([]byte, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	return os.ReadFile(path)
}

func (f *OsFileSystem) WriteFile(path string, content []byte, accessMode ports.AccessMode) error {
	path, err := expandHome(path)
	if err != nil {
		return err
	}

	err = f.EnsureDirExists(path)
	if err != nil {
		return fmt.Errorf("failed to ensure directory exists: %w", err)
	}

	if err := os.WriteFile(path, content, getOsFileModeForAccessMode(accessMode)); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// EnsureDirExists creates the parent directory of path.
func (f *OsFileSystem) EnsureDirExists(path string) error {
	path, err := expandHome(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), getOsFileModeForAccessMode(ports.ReadWriteExecute)); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	return nil
}

func (f *OsFileSystem) FileExists(path string) (bool, error) {
	path, err := expandHome(path)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if file exists: %w", err)
}

func (f *OsFileSystem) MkdirAll(path string, accessMode ports.AccessMode) error {
	path, err := expandHome(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(path, getOsFileModeForAccessMode(accessMode)); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

func (f *OsFileSystem) MkdirTemp(pattern string) (string, error) {
	dir, err := os.MkdirTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}
	return dir, nil
}

func (f *OsFileSystem) RemoveAll(path string) error {
	path, err := expandHome(path)
	if err != nil {
		return err
	}

	return os.RemoveAll(path)
}

func (f *OsFileSystem) Glob(pattern string) ([]string, error) {
	pattern, err := expandHome(pattern)
	if err != nil {
		return nil, err
	}

	return filepath.Glob(pattern)
}

func (f *OsFileSystem) ExpandPath(path string) (string, error) {
	return expandHome(path)
}

// expandHome replaces a leading "~" with the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~\\") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

func getOsFileModeForAccessMode(accessMode ports.AccessMode) os.FileMode {
	switch accessMode {
	case ports.ReadWrite:
		return 0600
	case ports.ReadWriteExecute:
		return 0700
	case ports.ReadAllWriteOwner:
		return 0644
	default:
		return 0600
	}
}

var _ ports.FileSystem = (*OsFileSystem)(nil)
