package cmd

import (
	"mfspatch/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initializeCmd)
}

var initializeCmd = &cobra.Command{
	Use:   "initialize",
	Short: "Writes the default configuration file",
	Long:  `The default configuration is written to ~/.mfspatch.yaml, or to the path given with --config. It lists the package, the bundle paths, the tool strategies, the storage values used by the payload templates and the insertion rules. An existing file is never overwritten.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		commandHandler, err := app.InjectInitializeCommandHandler(configFilePath(), logger)
		if err != nil {
			return err
		}

		return commandHandler.Handle(newPrinter(cmd))
	},
}
