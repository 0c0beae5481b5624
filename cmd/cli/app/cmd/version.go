package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is set at link time with -ldflags "-X mfspatch/cmd/cli/app/cmd.version=..."
var version = "dev"

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Displays the application version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), versionString())
	},
}

func versionString() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "mfspatch " + version
	}
	revision := ""
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && len(setting.Value) >= 7 {
			revision = setting.Value[:7]
		}
	}
	if revision == "" {
		return fmt.Sprintf("mfspatch %s (%s)", version, info.GoVersion)
	}
	return fmt.Sprintf("mfspatch %s (%s, %s)", version, revision, info.GoVersion)
}
