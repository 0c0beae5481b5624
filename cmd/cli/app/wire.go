//go:build wireinject
// +build wireinject

package app

import (
	"mfspatch/internal/adapters/command_runner"
	"mfspatch/internal/adapters/differ"
	"mfspatch/internal/adapters/extractor"
	"mfspatch/internal/adapters/filesystem"
	"mfspatch/internal/adapters/package_manager"
	"mfspatch/internal/adapters/patch_validator"
	"mfspatch/internal/adapters/templater"
	"mfspatch/internal/core"
	"mfspatch/internal/core/handler"
	"mfspatch/internal/ports"

	"github.com/google/wire"
	"go.uber.org/zap"
)

var Adapter = wire.NewSet(
	command_runner.ProvideOsCommandRunner,
	wire.Bind(new(ports.CommandRunner), new(*command_runner.OsCommandRunner)),
	filesystem.ProvideOsFileSystem,
	wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
	templater.ProvideTextTemplater,
	package_manager.ProvideAptPackageManager,
	wire.Bind(new(ports.PackageManager), new(*package_manager.AptPackageManager)),
	extractor.ProvideSystemExtractor,
	extractor.ProvideNativeExtractor,
	extractor.ProvideExtractorStrategies,
	differ.ProvideSystemDiffer,
	differ.ProvideNativeDiffer,
	differ.ProvideDifferStrategies,
	patch_validator.ProvideSystemValidator,
	patch_validator.ProvideNativeValidator,
	patch_validator.ProvideValidatorStrategies,
)

// CoreSet provides domain/core dependencies
var CoreSet = wire.NewSet(
	core.ProvideFileSystemConfigRepository,
	wire.Bind(new(core.ConfigRepository), new(*core.FileSystemConfigRepository)),
	core.ProvideEnvironmentEnsurer,
	core.ProvideRuleCompiler,
	core.ProvidePackageSourceProvider,
	wire.Bind(new(core.SourceProvider), new(*core.PackageSourceProvider)),
)

// CommandHandlerSet combines all sets needed for command handlers
var CommandHandlerSet = wire.NewSet(
	Adapter,
	CoreSet,
)

func InjectGenerateCommandHandler(configPath core.ConfigFilePath, logger *zap.Logger) (handler.GenerateCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideGenerateCommandHandler,
	)
	return handler.GenerateCommandHandler{}, nil
}

func InjectApplyCommandHandler(configPath core.ConfigFilePath, logger *zap.Logger) (handler.ApplyCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideApplyCommandHandler,
	)
	return handler.ApplyCommandHandler{}, nil
}

func InjectCheckCommandHandler(configPath core.ConfigFilePath, logger *zap.Logger) (handler.CheckCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideCheckCommandHandler,
	)
	return handler.CheckCommandHandler{}, nil
}

func InjectShowRulesCommandHandler(configPath core.ConfigFilePath, logger *zap.Logger) (handler.ShowRulesCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideShowRulesCommandHandler,
	)
	return handler.ShowRulesCommandHandler{}, nil
}

func InjectInitializeCommandHandler(configPath core.ConfigFilePath, logger *zap.Logger) (handler.InitializeCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideInitializeCommandHandler,
	)
	return handler.InitializeCommandHandler{}, nil
}
