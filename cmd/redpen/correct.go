package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/redpen-dev/redpen/internal/api"
	"github.com/redpen-dev/redpen/internal/corrector"
	"github.com/redpen-dev/redpen/internal/langtool"
)

var correctCmd = &cobra.Command{
	Use:   "correct <text>",
	Short: "Correct text without a running server",
	Long: `Correct text directly: try the remote grammar checker once, and fall
back to the local rule-based corrector if it cannot be used.

Examples:
  redpen correct "i recieve the seperate items"
  redpen correct -o json "teh answer is correct"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		}))

		cm, err := newConfigManager()
		if err != nil {
			return err
		}
		cfg := cm.Get()

		checker := langtool.NewClient(langtool.Config{
			BaseURL:  cfg.Checker.URL,
			Language: cfg.Checker.Language,
			Timeout:  cfg.Checker.Timeout(),
			Logger:   logger,
		})
		svc, err := corrector.New(corrector.Config{
			Remote: checker,
			Logger: logger,
		})
		if err != nil {
			return err
		}

		result, err := svc.Correct(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		return api.Output(result)
	},
}

func init() {
	rootCmd.AddCommand(correctCmd)
}
