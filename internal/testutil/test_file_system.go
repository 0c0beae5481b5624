package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mfspatch/internal/ports"
)

// TestFileSystem is a ports.FileSystem rooted in a per-test temporary directory. Every
// path, absolute or relative, is resolved below that root, and paths handed out by
// MkdirTemp and Glob are sandbox paths that can be passed straight back in.
// Use MockFileSystem when only the calls matter.
type TestFileSystem struct {
	baseDir string
}

func NewTestFileSystem(t *testing.T) *TestFileSystem {
	t.Helper()
	return &TestFileSystem{baseDir: t.TempDir()}
}

// BaseDir returns the real directory backing the sandbox.
func (f *TestFileSystem) BaseDir() string {
	return f.baseDir
}

func (f *TestFileSystem) resolvePath(path string) string {
	cleanPath := strings.TrimPrefix(filepath.Clean(path), string(filepath.Separator))
	return filepath.Join(f.baseDir, cleanPath)
}

func (f *TestFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(f.resolvePath(path))
}

func (f *TestFileSystem) WriteFile(path string, content []byte, accessMode ports.AccessMode) error {
	resolved := f.resolvePath(path)
	if err := os.MkdirAll(filepath.Dir(resolved), 0700); err != nil {
		return err
	}
	mode := os.FileMode(0600)
	if accessMode == ports.ReadAllWriteOwner {
		mode = 0644
	}
	return os.WriteFile(resolved, content, mode)
}

func (f *TestFileSystem) EnsureDirExists(path string) error {
	return os.MkdirAll(filepath.Dir(f.resolvePath(path)), 0700)
}

func (f *TestFileSystem) FileExists(path string) (bool, error) {
	_, err := os.Stat(f.resolvePath(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (f *TestFileSystem) MkdirAll(path string, _ ports.AccessMode) error {
	return os.MkdirAll(f.resolvePath(path), 0700)
}

func (f *TestFileSystem) RemoveAll(path string) error {
	return os.RemoveAll(f.resolvePath(path))
}

func (f *TestFileSystem) MkdirTemp(pattern string) (string, error) {
	tmpRoot := f.resolvePath("/tmp")
	if err := os.MkdirAll(tmpRoot, 0700); err != nil {
		return "", err
	}
	dir, err := os.MkdirTemp(tmpRoot, pattern)
	if err != nil {
		return "", err
	}
	return filepath.Join("/tmp", filepath.Base(dir)), nil
}

func (f *TestFileSystem) Glob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(f.resolvePath(pattern))
	if err != nil {
		return nil, err
	}
	for i, match := range matches {
		rel, err := filepath.Rel(f.baseDir, match)
		if err != nil {
			return nil, err
		}
		matches[i] = string(filepath.Separator) + rel
	}
	return matches, nil
}

// TestHome is the sandbox path ExpandPath substitutes for "~".
const TestHome = "/home/tester"

func (f *TestFileSystem) ExpandPath(path string) (string, error) {
	if path == "~" {
		return TestHome, nil
	}
	if strings.HasPrefix(path, "~/") {
		return TestHome + path[1:], nil
	}
	return path, nil
}

var _ ports.FileSystem = (*TestFileSystem)(nil)
