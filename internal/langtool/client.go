package langtool

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the public LanguageTool endpoint. No credentials
	// are required; the service is used unauthenticated.
	DefaultBaseURL = "https://api.languagetool.org"

	// DefaultLanguage is the locale sent with every check.
	DefaultLanguage = "en-US"

	// DefaultTimeout bounds a single check request. There are no retries;
	// callers fall back to local correction when this elapses.
	DefaultTimeout = 10 * time.Second

	checkPath     = "/v2/check"
	languagesPath = "/v2/languages"
)

// Config holds client settings. Zero values fall back to the defaults
// above.
type Config struct {
	BaseURL  string
	Language string
	Timeout  time.Duration
	Logger   *slog.Logger

	// HTTPClient overrides the transport, primarily for tests.
	HTTPClient *http.Client
}

// Client calls the remote grammar checking service.
type Client struct {
	baseURL    string
	language   string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Client, filling unset config fields with defaults.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		language:   cfg.Language,
		timeout:    cfg.Timeout,
		httpClient: cfg.HTTPClient,
		logger:     cfg.Logger,
	}
}

// BaseURL returns the configured service base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Check sends text to the remote checker and returns its findings.
// Failures are always *RemoteError so callers can branch on Kind.
func (c *Client) Check(ctx context.Context, text string) ([]Match, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	form := url.Values{
		"text":     {text},
		"language": {c.language},
		// All rule categories, not just the service's default set.
		"enabledOnly": {"false"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+checkPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &RemoteError{Kind: KindUnreachable, Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransport(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransport(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RemoteError{
			Kind: KindServiceUnavailable,
			Err:  fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	if err := validateCheckResponse(body); err != nil {
		return nil, &RemoteError{Kind: KindServiceUnavailable, Err: err}
	}

	var parsed checkResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &RemoteError{Kind: KindServiceUnavailable, Err: err}
	}

	c.logger.Debug("remote check completed",
		"matches", len(parsed.Matches),
		"language", c.language,
	)
	return parsed.Matches, nil
}

// Correct runs a remote check and splices the findings into text.
func (c *Client) Correct(ctx context.Context, text string) (string, error) {
	matches, err := c.Check(ctx, text)
	if err != nil {
		return "", err
	}
	return Splice(text, matches), nil
}

// Ping verifies the checker is reachable by listing supported languages.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+languagesPath, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
