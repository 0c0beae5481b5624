package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"mfspatch/internal/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"tilde with path", "~/.mfspatch.yaml", filepath.Join(home, ".mfspatch.yaml")},
		{"tilde only", "~", home},
		{"absolute path unchanged", "/usr/share/pve-manager/js/pvemanagerlib.js", "/usr/share/pve-manager/js/pvemanagerlib.js"},
		{"relative path unchanged", "pve-moosefs.patch", "pve-moosefs.patch"},
		{"tilde user form unchanged", "~root/file", "~root/file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := expandHome(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestOsFileSystem_WriteFileCreatesParentsAndReadsBack(t *testing.T) {
	sut := ProvideOsFileSystem()
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.patch")

	err := sut.WriteFile(path, []byte("--- a\n+++ b\n"), ports.ReadAllWriteOwner)
	require.NoError(t, err)

	content, err := sut.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "--- a\n+++ b\n", string(content))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestOsFileSystem_FileExists(t *testing.T) {
	sut := ProvideOsFileSystem()
	dir := t.TempDir()
	existing := filepath.Join(dir, "present.js")
	require.NoError(t, os.WriteFile(existing, []byte("x"), 0600))

	exists, err := sut.FileExists(existing)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = sut.FileExists(filepath.Join(dir, "absent.js"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestOsFileSystem_MkdirTempAndRemoveAll(t *testing.T) {
	sut := ProvideOsFileSystem()

	dir, err := sut.MkdirTemp("mfspatch-test-*")
	require.NoError(t, err)
	require.NoError(t, sut.MkdirAll(filepath.Join(dir, "extracted", "usr"), ports.ReadWriteExecute))

	exists, err := sut.FileExists(filepath.Join(dir, "extracted", "usr"))
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, sut.RemoveAll(dir))
	exists, err = sut.FileExists(dir)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestOsFileSystem_ExpandPathMatchesWhereWriteFileWrites(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	sut := ProvideOsFileSystem()

	require.NoError(t, sut.WriteFile("~/pve-moosefs.patch", []byte("--- a\n"), ports.ReadAllWriteOwner))
	expanded, err := sut.ExpandPath("~/pve-moosefs.patch")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "pve-moosefs.patch"), expanded)
	content, err := os.ReadFile(expanded)
	require.NoError(t, err)
	assert.Equal(t, "--- a\n", string(content))

	unchanged, err := sut.ExpandPath("relative/pve-moosefs.patch")
	require.NoError(t, err)
	assert.Equal(t, "relative/pve-moosefs.patch", unchanged)
}

func TestOsFileSystem_GlobFindsPackages(t *testing.T) {
	sut := ProvideOsFileSystem()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pve-manager_8.2.4_amd64.deb"), nil, 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0600))

	matches, err := sut.Glob(filepath.Join(dir, "*.deb"))

	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "pve-manager_8.2.4_amd64.deb")}, matches)
}

func TestGetOsFileModeForAccessMode(t *testing.T) {
	assert.Equal(t, os.FileMode(0600), getOsFileModeForAccessMode(ports.ReadWrite))
	assert.Equal(t, os.FileMode(0700), getOsFileModeForAccessMode(ports.ReadWriteExecute))
	assert.Equal(t, os.FileMode(0644), getOsFileModeForAccessMode(ports.ReadAllWriteOwner))
	assert.Equal(t, os.FileMode(0600), getOsFileModeForAccessMode(ports.AccessMode(42)))
}
