package core

import (
	"fmt"
	"path/filepath"

	"mfspatch/internal/core/domain"
	"mfspatch/internal/ports"

	"go.uber.org/zap"
)

type SourceProvider interface {
	ReadInstalled(config *domain.Config) ([]byte, error)
	Fetch(config *domain.Config, workDir string) (*domain.PristineSource, error)
}

// PackageSourceProvider obtains the pristine bundle by downloading and unpacking the vendor
// package, so that a locally modified installation never leaks into the diff.
type PackageSourceProvider struct {
	packageManager ports.PackageManager
	extractors     ExtractorStrategies
	fileSystem     ports.FileSystem
	logger         *zap.Logger
}

func ProvidePackageSourceProvider(
	packageManager ports.PackageManager,
	extractors ExtractorStrategies,
	fileSystem ports.FileSystem,
	logger *zap.Logger,
) *PackageSourceProvider {
	return &PackageSourceProvider{
		packageManager: packageManager,
		extractors:     extractors,
		fileSystem:     fileSystem,
		logger:         logger,
	}
}

func (p *PackageSourceProvider) ReadInstalled(config *domain.Config) ([]byte, error) {
	if err := p.requireInstalled(config); err != nil {
		return nil, err
	}

	content, err := p.fileSystem.ReadFile(config.InstalledPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", config.InstalledPath, err)
	}
	return content, nil
}

func (p *PackageSourceProvider) requireInstalled(config *domain.Config) error {
	exists, err := p.fileSystem.FileExists(config.InstalledPath)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf(
			"%s not found, is %s installed? %w",
			filepath.Base(config.InstalledPath),
			config.Package,
			domain.ErrNotFound,
		)
	}
	return nil
}

// Fetch downloads the package into workDir and extracts the configured member. The
// installed bundle must exist; the installed version is informational only.
func (p *PackageSourceProvider) Fetch(config *domain.Config, workDir string) (*domain.PristineSource, error) {
	if err := p.requireInstalled(config); err != nil {
		return nil, err
	}

	extractor, err := p.extractors.Select(config.Tools.Extractor)
	if err != nil {
		return nil, err
	}

	source := &domain.PristineSource{}
	source.Version, err = p.packageManager.InstalledVersion(config.Package)
	if err != nil {
		p.logger.Warn("could not determine installed version", zap.String("package", config.Package), zap.Error(err))
		source.Version = ""
	}

	source.PackagePath, err = p.packageManager.Download(config.Package, workDir)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("downloaded package", zap.String("path", source.PackagePath))

	source.Path, err = extractor.ExtractMember(source.PackagePath, config.MemberPath, filepath.Join(workDir, "extracted"))
	if err != nil {
		return nil, err
	}

	source.Content, err = p.fileSystem.ReadFile(source.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read extracted %s: %w", config.MemberPath, err)
	}

	return source, nil
}
