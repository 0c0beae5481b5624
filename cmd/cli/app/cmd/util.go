package cmd

import (
	"fmt"

	"mfspatch/internal/cli/output"
	"mfspatch/internal/core"
	"mfspatch/internal/core/domain"

	"github.com/spf13/cobra"
)

var strategyNames = []string{string(domain.StrategySystem), string(domain.StrategyNative)}

func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// reportError prints a failed command's error on the command's error stream.
func reportError(cmd *cobra.Command, err error) {
	newPrinter(cmd).Error(err.Error())
}

func configFilePath() core.ConfigFilePath {
	return core.ConfigFilePath(configPath)
}

// StrategyFlag reads a --differ/--extractor/--validator value. An unset flag yields the
// empty strategy so that the configured one stays in effect.
func StrategyFlag(cmd *cobra.Command, name string) (domain.ToolStrategy, error) {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", err
	}
	if value == "" {
		return "", nil
	}
	strategy := domain.ToolStrategy(value)
	if err := domain.ValidateStrategy(strategy); err != nil {
		return "", fmt.Errorf("--%s: %w", name, err)
	}
	return strategy, nil
}

func StrategyCompletion(
	cmd *cobra.Command,
	args []string,
	toComplete string,
) ([]cobra.Completion, cobra.ShellCompDirective) {
	return strategyNames, cobra.ShellCompDirectiveNoFileComp
}
