package main

import (
	"github.com/spf13/cobra"

	"github.com/redpen-dev/redpen/internal/api"
	"github.com/redpen-dev/redpen/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "redpen",
	Short: "Grammar correction service with a remote checker and local fallback",
	Long: `Redpen accepts free-form text and returns a grammar-corrected version.

Corrections come from a remote LanguageTool-style grammar service; when the
service is unavailable, slow, or errors, a deterministic local rule-based
corrector takes over and the result is marked as approximate.`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.redpen/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "redpen home directory (default: ~/.redpen)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}
