// Package corrector orchestrates grammar correction: it tries the remote
// checker once and, on any remote failure, runs the local fallback
// corrector so callers always receive corrected text for valid input.
package corrector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/redpen-dev/redpen/internal/fallback"
	"github.com/redpen-dev/redpen/internal/langtool"
)

// MaxTextLen is the per-request character ceiling.
const MaxTextLen = 5000

// ValidationError reports input that cannot be corrected at all: nothing
// to correct, or too much. It is the only error Correct returns.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Result is the output of a correction. Once returned it is never
// modified. ErrorMessage is set only when UsedFallback is true and
// explains why the remote service could not be used.
type Result struct {
	CorrectedText string `json:"corrected_text"`
	UsedFallback  bool   `json:"used_fallback"`
	ErrorMessage  string `json:"error_message,omitempty"`
}

// RemoteChecker is the remote correction dependency. *langtool.Client
// satisfies it; tests inject fakes.
type RemoteChecker interface {
	Correct(ctx context.Context, text string) (string, error)
}

// Config holds Service dependencies.
type Config struct {
	// Remote is required.
	Remote RemoteChecker
	// Fallback defaults to the rule-based corrector.
	Fallback func(string) string
	// Reporter receives diagnostic events; defaults to NopReporter.
	Reporter Reporter
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Service decides between remote and fallback correction.
type Service struct {
	remote   RemoteChecker
	fallback func(string) string
	reporter Reporter
	logger   *slog.Logger
}

// New creates a Service. cfg.Remote must be non-nil.
func New(cfg Config) (*Service, error) {
	if cfg.Remote == nil {
		return nil, errors.New("corrector: remote checker is required")
	}
	if cfg.Fallback == nil {
		cfg.Fallback = fallback.Correct
	}
	if cfg.Reporter == nil {
		cfg.Reporter = NopReporter{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Service{
		remote:   cfg.Remote,
		fallback: cfg.Fallback,
		reporter: cfg.Reporter,
		logger:   cfg.Logger,
	}, nil
}

// Correct validates text, makes a single remote attempt, and falls back to
// local correction on any remote failure. The fallback is total, so a
// non-validation outcome always carries corrected text.
func (s *Service) Correct(ctx context.Context, text string) (Result, error) {
	if err := validate(text); err != nil {
		return Result{}, err
	}

	ev := newEvent(EventRemoteAttempt, "sending text to remote checker")
	s.reporter.Report(ev)

	corrected, err := s.remote.Correct(ctx, text)
	if err == nil {
		s.reporter.Report(followUp(ev, EventRemoteSuccess, "remote correction applied"))
		return Result{CorrectedText: corrected}, nil
	}

	msg := remoteMessage(err)
	s.reporter.Report(followUp(ev, EventFallback, msg))
	s.logger.Warn("remote check failed, using local corrector", "error", err)

	return Result{
		CorrectedText: s.fallback(text),
		UsedFallback:  true,
		ErrorMessage:  msg,
	}, nil
}

// validate enforces the input contract: non-blank after trimming and at
// most MaxTextLen characters.
func validate(text string) error {
	if strings.TrimSpace(text) == "" {
		return &ValidationError{Reason: "text must not be empty"}
	}
	if n := utf8.RuneCountInString(text); n > MaxTextLen {
		return &ValidationError{Reason: fmt.Sprintf("text is %d characters, limit is %d", n, MaxTextLen)}
	}
	return nil
}

// remoteMessage extracts the caller-facing explanation from a remote
// failure.
func remoteMessage(err error) string {
	var re *langtool.RemoteError
	if errors.As(err, &re) {
		return re.Message()
	}
	return err.Error()
}
