package cmd

import (
	"mfspatch/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Shows whether the installed bundle already carries the MooseFS additions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		commandHandler, err := app.InjectCheckCommandHandler(configFilePath(), logger)
		if err != nil {
			return err
		}

		_, err = commandHandler.Handle(newPrinter(cmd))
		return err
	},
}
