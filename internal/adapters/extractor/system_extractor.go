package extractor

import (
	"fmt"
	"path/filepath"

	"mfspatch/internal/core/domain"
	"mfspatch/internal/ports"
)

var _ ports.PackageExtractor = (*SystemExtractor)(nil)

// SystemExtractor unpacks the whole archive with dpkg-deb.
type SystemExtractor struct {
	commandRunner ports.CommandRunner
	fileSystem    ports.FileSystem
}

func ProvideSystemExtractor(commandRunner ports.CommandRunner, fileSystem ports.FileSystem) *SystemExtractor {
	return &SystemExtractor{
		commandRunner: commandRunner,
		fileSystem:    fileSystem,
	}
}

func (e *SystemExtractor) ExtractMember(packagePath string, member string, destDir string) (string, error) {
	if err := e.fileSystem.MkdirAll(destDir, ports.ReadWriteExecute); err != nil {
		return "", err
	}

	output, err := e.commandRunner.Run("dpkg-deb", "-x", packagePath, destDir)
	if err != nil {
		return "", fmt.Errorf("failed to extract %s: %w\n%s", packagePath, err, string(output))
	}

	extracted := filepath.Join(destDir, filepath.FromSlash(member))
	exists, err := e.fileSystem.FileExists(extracted)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", fmt.Errorf("%s not found in extracted package: %w", member, domain.ErrNotFound)
	}
	return extracted, nil
}
