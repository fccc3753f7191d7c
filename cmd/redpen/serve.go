package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/redpen-dev/redpen/internal/config"
	"github.com/redpen-dev/redpen/internal/home"
	"github.com/redpen-dev/redpen/internal/server"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the redpen server",
	Long: `Start the redpen HTTP server.

The server provides:
  - /            - Correction form UI
  - /api/correct - JSON correction API
  - /health      - Basic server health check
  - /ready       - Readiness check (includes remote checker status)

The remote grammar checker being down never takes the server down: requests
are corrected by the local rule-based fallback instead.

Examples:
  redpen serve                   # Start on default port 8080
  redpen serve --port 3000       # Start on custom port
  redpen serve --host 0.0.0.0    # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Set up logger
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		cm, err := newConfigManager()
		if err != nil {
			return err
		}

		host := serveHost
		if !cmd.Flags().Changed("host") {
			host = cm.Get().Server.Host
		}
		port := servePort
		if !cmd.Flags().Changed("port") {
			port = cm.Get().Server.Port
		}

		srv, err := server.New(server.Config{
			Host:          host,
			Port:          port,
			ConfigManager: cm,
			Logger:        logger,
		})
		if err != nil {
			return err
		}

		// Start server (blocks until shutdown)
		return srv.Start(ctx)
	},
}

// newConfigManager loads configuration from --config, or from the home
// directory config file when one exists.
func newConfigManager() (*config.Manager, error) {
	path := cfgFile
	if path == "" {
		h, err := home.New(homeDir)
		if err != nil {
			return nil, err
		}
		if h.ConfigExists() {
			path = h.ConfigPath()
		}
	}
	return config.NewManager(path)
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "Host to bind to")
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}
