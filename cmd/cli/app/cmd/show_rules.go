package cmd

import (
	"mfspatch/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(showRulesCmd)
}

var showRulesCmd = &cobra.Command{
	Use:   "show-rules [rule]",
	Short: "Lists the configured insertion rules",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		commandHandler, err := app.InjectShowRulesCommandHandler(configFilePath(), logger)
		if err != nil {
			return err
		}

		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		return commandHandler.Handle(newPrinter(cmd), name)
	},
}
