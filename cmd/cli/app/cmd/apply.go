package cmd

import (
	"mfspatch/cmd/cli/app"
	"mfspatch/internal/core/handler"

	"github.com/spf13/cobra"
)

func init() {
	applyCmd.Flags().StringP("output", "o", "", "Write the result to this file instead of stdout")
	applyCmd.Flags().Bool("diff", false, "Print a unified diff instead of the patched file")
	rootCmd.AddCommand(applyCmd)
}

var applyCmd = &cobra.Command{
	Use:   "apply <file>",
	Short: "Runs the insertion rules over a local file",
	Long: `Applies the configured insertion rules to a local copy of pvemanagerlib.js.
Nothing is downloaded; this is useful for checking a bundle taken from another host.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		options := handler.ApplyOptions{Input: args[0]}
		var err error
		if options.Output, err = cmd.Flags().GetString("output"); err != nil {
			return err
		}
		if options.Diff, err = cmd.Flags().GetBool("diff"); err != nil {
			return err
		}

		commandHandler, err := app.InjectApplyCommandHandler(configFilePath(), logger)
		if err != nil {
			return err
		}

		_, err = commandHandler.Handle(newPrinter(cmd), options)
		return err
	},
}
