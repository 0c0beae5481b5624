package cmd

import (
	"mfspatch/cmd/cli/app"
	"mfspatch/internal/core/handler"

	"github.com/spf13/cobra"
)

func init() {
	generateCmd.Flags().StringP("output", "o", "", "Patch file to write (default from configuration)")
	generateCmd.Flags().String("differ", "", "Diff implementation: system or native")
	generateCmd.Flags().String("extractor", "", "Package extractor: system or native")
	generateCmd.Flags().String("validator", "", "Patch validator: system or native")
	generateCmd.Flags().Bool("keep-workdir", false, "Keep the temporary work directory for inspection")
	for _, name := range []string{"differ", "extractor", "validator"} {
		_ = generateCmd.RegisterFlagCompletionFunc(name, StrategyCompletion)
	}
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generates the MooseFS patch for the installed pve-manager version",
	Long: `Downloads the pve-manager package matching the configured package name,
extracts the pristine pvemanagerlib.js, inserts the MooseFS storage type and input
panel and writes the unified diff. The diff is validated with a patch dry run; a
failed validation is reported as a warning and the patch file is kept.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		options := handler.GenerateOptions{}
		var err error
		if options.Output, err = cmd.Flags().GetString("output"); err != nil {
			return err
		}
		if options.Differ, err = StrategyFlag(cmd, "differ"); err != nil {
			return err
		}
		if options.Extractor, err = StrategyFlag(cmd, "extractor"); err != nil {
			return err
		}
		if options.Validator, err = StrategyFlag(cmd, "validator"); err != nil {
			return err
		}
		if options.KeepWorkDir, err = cmd.Flags().GetBool("keep-workdir"); err != nil {
			return err
		}

		commandHandler, err := app.InjectGenerateCommandHandler(configFilePath(), logger)
		if err != nil {
			return err
		}

		_, err = commandHandler.Handle(newPrinter(cmd), options)
		return err
	},
}
