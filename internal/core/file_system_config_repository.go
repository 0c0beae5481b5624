package core

import (
	"fmt"
	"path/filepath"

	"mfspatch/internal/core/domain"
	"mfspatch/internal/ports"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ConfigFilePath is the location of the YAML configuration; "~" expands to the home directory.
type ConfigFilePath string

var DefaultConfigFilePath = ConfigFilePath(filepath.Join("~", ".mfspatch.yaml"))

type ConfigRepository interface {
	LoadConfig() (*domain.Config, error)
	SaveConfig(*domain.Config) error
	ConfigExists() (bool, error)
	ConfigPath() string
}

type FileSystemConfigRepository struct {
	fileService ports.FileSystem
	logger      *zap.Logger
	path        ConfigFilePath
	config      *domain.Config
}

func ProvideFileSystemConfigRepository(
	fileService ports.FileSystem,
	logger *zap.Logger,
	path ConfigFilePath,
) *FileSystemConfigRepository {
	if path == "" {
		path = DefaultConfigFilePath
	}
	return &FileSystemConfigRepository{
		fileService: fileService,
		logger:      logger,
		path:        path,
	}
}

func (c *FileSystemConfigRepository) ConfigPath() string {
	return string(c.path)
}

// LoadConfig reads the configuration file, falling back to the built-in defaults when the
// file does not exist. Unset fields are filled from the defaults before validation.
func (c *FileSystemConfigRepository) LoadConfig() (*domain.Config, error) {
	if c.config != nil {
		return c.config, nil
	}

	exists, err := c.ConfigExists()
	if err != nil {
		return nil, err
	}

	var config domain.Config
	if exists {
		data, err := c.fileService.ReadFile(string(c.path))
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		c.logger.Debug("loaded configuration", zap.String("path", string(c.path)))
	} else {
		c.logger.Debug("no configuration file, using defaults", zap.String("path", string(c.path)))
	}

	config.ApplyDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	c.config = &config
	return &config, nil
}

func (c *FileSystemConfigRepository) SaveConfig(config *domain.Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return c.fileService.WriteFile(string(c.path), data, ports.ReadWrite)
}

func (c *FileSystemConfigRepository) ConfigExists() (bool, error) {
	return c.fileService.FileExists(string(c.path))
}
