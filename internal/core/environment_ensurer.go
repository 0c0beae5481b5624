package core

import (
	"fmt"
	"strings"

	"mfspatch/internal/core/domain"
	"mfspatch/internal/ports"

	"go.uber.org/zap"
)

type requiredTool struct {
	name string
	// flag is the command line switch that avoids the tool, empty when nothing can.
	flag string
	// optional tools only produce a warning when missing.
	optional bool
}

type EnvironmentEnsurer struct {
	commandRunner ports.CommandRunner
	logger        *zap.Logger
}

func ProvideEnvironmentEnsurer(
	commandRunner ports.CommandRunner,
	logger *zap.Logger,
) EnvironmentEnsurer {
	return EnvironmentEnsurer{
		commandRunner: commandRunner,
		logger:        logger,
	}
}

// EnsureToolsAvailable checks that every external utility the configured strategies call
// is on PATH. Missing optional tools are returned as warnings.
func (ee *EnvironmentEnsurer) EnsureToolsAvailable(config *domain.Config) ([]string, error) {
	var missing []string
	var warnings []string
	for _, tool := range requiredTools(config) {
		path, err := ee.commandRunner.LookPath(tool.name)
		if err == nil {
			ee.logger.Debug("found tool", zap.String("tool", tool.name), zap.String("path", path))
			continue
		}

		message := tool.name
		if tool.flag != "" {
			message = fmt.Sprintf("%s (or use %s)", tool.name, tool.flag)
		}
		if tool.optional {
			warnings = append(warnings, fmt.Sprintf("%s not found on PATH", message))
		} else {
			missing = append(missing, message)
		}
	}

	if len(missing) > 0 {
		return warnings, fmt.Errorf("required tools not found on PATH: %s", strings.Join(missing, ", "))
	}
	return warnings, nil
}

func requiredTools(config *domain.Config) []requiredTool {
	tools := []requiredTool{
		{name: "apt-get"},
		{name: "dpkg-query", optional: true},
	}
	if config.Tools.Extractor == domain.StrategySystem {
		tools = append(tools, requiredTool{name: "dpkg-deb", flag: "--extractor native"})
	}
	if config.Tools.Differ == domain.StrategySystem {
		tools = append(tools, requiredTool{name: "diff", flag: "--differ native"})
	}
	if config.Tools.Validator == domain.StrategySystem {
		tools = append(tools, requiredTool{name: "patch", flag: "--validator native", optional: true})
	}
	return tools
}
