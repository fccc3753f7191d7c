// Package svcctx provides service context for dependency injection via
// context. This package is separate from server to avoid import cycles
// with endpoints.
package svcctx

import (
	"context"
	"log/slog"

	"github.com/redpen-dev/redpen/internal/corrector"
	"github.com/redpen-dev/redpen/internal/langtool"
)

// Services holds the core services that flow through context.
// Handlers extract what they need via the individual extractors.
type Services struct {
	Corrector *corrector.Service
	Checker   *langtool.Client
	Logger    *slog.Logger
}

type servicesKey struct{}

// WithServices returns a new context with services attached.
func WithServices(ctx context.Context, s *Services) context.Context {
	return context.WithValue(ctx, servicesKey{}, s)
}

// ServicesFrom extracts the full Services struct from context.
// Returns nil if not present.
func ServicesFrom(ctx context.Context) *Services {
	s, _ := ctx.Value(servicesKey{}).(*Services)
	return s
}

// CorrectorFrom extracts the correction service from context.
func CorrectorFrom(ctx context.Context) *corrector.Service {
	if s := ServicesFrom(ctx); s != nil {
		return s.Corrector
	}
	return nil
}

// CheckerFrom extracts the remote checker client from context.
func CheckerFrom(ctx context.Context) *langtool.Client {
	if s := ServicesFrom(ctx); s != nil {
		return s.Checker
	}
	return nil
}

// LoggerFrom extracts the logger from context, falling back to the
// default logger.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if s := ServicesFrom(ctx); s != nil && s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
