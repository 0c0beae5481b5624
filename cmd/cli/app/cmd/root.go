package cmd

import (
	"fmt"
	"os"

	"mfspatch/internal/core"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath string
	verbose    bool
	logger     = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "mfspatch",
	Short: "Generates the MooseFS storage patch for the Proxmox VE web interface",
	Long: `mfspatch adds a MooseFS storage type and its input panel to the Proxmox VE
manager bundle (pvemanagerlib.js) and emits the change as a unified diff.

The pristine bundle is taken from the pve-manager package, never from the
installed file, so the patch always applies to a clean installation.

Configuration is read from ~/.mfspatch.yaml when it exists. Run
'mfspatch initialize' to write the defaults there.

Common workflows:
  mfspatch generate             Write pve-moosefs.patch for the installed version
  mfspatch check                Show whether the installed bundle is already patched
  mfspatch apply <file> --diff  Patch a local copy and print the diff`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		built, err := newLogger(verbose)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		logger = built
		zap.ReplaceGlobals(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", string(core.DefaultConfigFilePath), "Configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log external commands and internal steps")
}

// newLogger writes human readable diagnostics to stderr. Only warnings are shown unless
// verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.DisableCaller = true
	config.DisableStacktrace = true
	config.Sampling = nil
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level.SetLevel(zapcore.DebugLevel)
	}
	return config.Build()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(rootCmd, err)
		os.Exit(1)
	}
}
