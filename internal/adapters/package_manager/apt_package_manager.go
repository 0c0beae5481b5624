package package_manager

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"mfspatch/internal/core/domain"
	"mfspatch/internal/ports"
)

var _ ports.PackageManager = (*AptPackageManager)(nil)

// AptPackageManager queries dpkg and downloads archives with apt-get.
type AptPackageManager struct {
	commandRunner ports.CommandRunner
	fileSystem    ports.FileSystem
}

func ProvideAptPackageManager(commandRunner ports.CommandRunner, fileSystem ports.FileSystem) *AptPackageManager {
	return &AptPackageManager{
		commandRunner: commandRunner,
		fileSystem:    fileSystem,
	}
}

func (a *AptPackageManager) InstalledVersion(packageName string) (string, error) {
	args := []string{"-W", "-f=${Version}", packageName}
	result, err := a.commandRunner.Capture("", "dpkg-query", args...)
	if err != nil {
		return "", fmt.Errorf("failed to query %s version: %w", packageName, err)
	}
	if !result.Succeeded() {
		if result.ExitCode == 1 {
			return "", fmt.Errorf("package %s: %w", packageName, domain.ErrNotFound)
		}
		return "", &domain.ProcessError{
			Command:  "dpkg-query",
			Args:     args,
			ExitCode: result.ExitCode,
			Stderr:   string(result.Stderr),
		}
	}

	version := strings.TrimSpace(string(result.Stdout))
	if version == "" {
		return "", fmt.Errorf("package %s is known but not installed: %w", packageName, domain.ErrNotFound)
	}
	return version, nil
}

// Download runs `apt-get download` inside dir and returns the path of the fetched archive.
func (a *AptPackageManager) Download(packageName string, dir string) (string, error) {
	output, err := a.commandRunner.RunInDir(dir, "apt-get", "download", packageName)
	if err != nil {
		return "", fmt.Errorf("failed to download %s: %w\n%s", packageName, err, string(output))
	}

	archives, err := a.fileSystem.Glob(filepath.Join(dir, "*.deb"))
	if err != nil {
		return "", fmt.Errorf("failed to list downloaded archives: %w", err)
	}
	if len(archives) == 0 {
		return "", fmt.Errorf("no .deb file found after download: %w", domain.ErrNotFound)
	}

	sort.Strings(archives)
	for _, archive := range archives {
		if strings.HasPrefix(filepath.Base(archive), packageName+"_") {
			return archive, nil
		}
	}
	return archives[0], nil
}
