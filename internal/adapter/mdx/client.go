// Package mdx implements the dictionary markup source backed by an MDX
// lookup server (a local HTTP frontend over the dictionary's MDX files).
package mdx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/collocards/internal/config"
)

// Client queries an MDX lookup server over HTTP.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	checkTimeout time.Duration
	log          *slog.Logger
}

// New creates a Client from MDX settings.
func New(cfg config.MDXConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		checkTimeout: cfg.CheckTimeout,
		log:          logger.With("adapter", "mdx"),
	}
}

// Lookup fetches the raw entry markup for a word.
// Returns "", nil when the word is not in the dictionary (HTTP 404 or an
// empty body) — the pipeline treats both the same way.
func (c *Client) Lookup(ctx context.Context, word string) (string, error) {
	reqURL := c.baseURL + "/" + url.PathEscape(word)

	c.log.DebugContext(ctx, "mdx request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("mdx: create request: %w", err)
	}

	resp, err := c.doWithRetry(ctx, req, word)
	if err != nil {
		c.log.ErrorContext(ctx, "mdx request failed", slog.String("word", word), slog.String("error", err.Error()))
		return "", fmt.Errorf("mdx: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("mdx: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("mdx: read body: %w", err)
	}

	c.log.DebugContext(ctx, "mdx response",
		slog.String("word", word),
		slog.Int("status", resp.StatusCode),
		slog.Int("bytes", len(body)),
	)

	return string(body), nil
}

// Check probes the server's /test endpoint so a run fails fast when the
// lookup server is not up.
func (c *Client) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.checkTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/test", nil)
	if err != nil {
		return fmt.Errorf("mdx: create check request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("mdx: server unreachable at %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("mdx: server check returned status %d", resp.StatusCode)
	}
	return nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, word string) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "mdx retry", slog.String("word", word), slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	return c.httpClient.Do(req)
}
