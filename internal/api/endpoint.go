// Package api holds the plumbing shared by the redpen HTTP API: the
// endpoint abstraction, the client used by CLI commands, and structured
// CLI output.
package api

import (
	"net/http"

	"github.com/spf13/cobra"
)

// Endpoint defines both an HTTP route and its corresponding CLI command.
// This provides a single source of truth for API operations.
type Endpoint interface {
	// Route returns the HTTP method, path, and handler for this endpoint.
	Route() (method, path string, handler http.HandlerFunc)

	// Command returns a Cobra command that calls this endpoint via HTTP.
	// getServerURL is called at runtime to get the server URL (deferred
	// evaluation, after flag parsing).
	Command(getServerURL func() string) *cobra.Command
}
