package handler

import (
	"fmt"

	"mfspatch/internal/cli/output"
	"mfspatch/internal/core"
	"mfspatch/internal/core/domain"
)

type InitializeCommandHandler struct {
	configRepository core.ConfigRepository
}

func ProvideInitializeCommandHandler(configRepository core.ConfigRepository) InitializeCommandHandler {
	return InitializeCommandHandler{configRepository: configRepository}
}

// Handle writes the default configuration. An existing file is left untouched and reported
// as an error so that local rule edits are never lost.
func (h *InitializeCommandHandler) Handle(printer *output.Printer) error {
	path := h.configRepository.ConfigPath()
	exists, err := h.configRepository.ConfigExists()
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}
	if exists {
		return fmt.Errorf("configuration already exists at %s", path)
	}

	defaults := domain.CreateDefaultConfig()
	if err := h.configRepository.SaveConfig(&defaults); err != nil {
		return err
	}

	printer.Success(fmt.Sprintf("wrote default configuration to %s", path))
	printer.Field("package", defaults.Package)
	printer.Field("bundle", defaults.InstalledPath)
	printer.Field("storage", fmt.Sprintf("%s (%s)", defaults.Storage.Name, defaults.Storage.Type))
	printer.Field("rules", fmt.Sprintf("%d", len(defaults.Rules)))
	printer.Secondary("run 'mfspatch show-rules' to review the insertion rules")
	return nil
}
