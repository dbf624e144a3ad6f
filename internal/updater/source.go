package updater

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrPackageNotFound is returned when the remote source does not know the package.
var ErrPackageNotFound = errors.New("package not found")

// source holds the HTTP settings shared by the remote lookups.
type source struct {
	baseURL    string
	httpClient *http.Client
	distTag    string
	userAgent  string
}

// SourceOption configures a remote lookup.
type SourceOption func(*source)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) SourceOption {
	return func(s *source) {
		if c != nil {
			s.httpClient = c
		}
	}
}

// WithMirror replaces the default base URL of the remote source.
func WithMirror(mirror string) SourceOption {
	return func(s *source) {
		if mirror != "" {
			s.baseURL = strings.TrimRight(mirror, "/")
		}
	}
}

// WithDistTag selects the npm dist-tag treated as the latest release.
func WithDistTag(tag string) SourceOption {
	return func(s *source) {
		if tag != "" {
			s.distTag = tag
		}
	}
}

// WithUserAgent sets the User-Agent header sent with lookups.
func WithUserAgent(ua string) SourceOption {
	return func(s *source) {
		if ua != "" {
			s.userAgent = ua
		}
	}
}

func newSource(baseURL string, opts []SourceOption) source {
	s := source{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		distTag:    "latest",
		userAgent:  "update-check",
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// getJSON performs a GET bound to ctx and decodes a 200 response into v.
func (s *source) getJSON(ctx context.Context, url string, header http.Header, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	for k, vals := range header {
		for _, val := range vals {
			req.Header.Add(k, val)
		}
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrPackageNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return &StatusError{StatusCode: resp.StatusCode, URL: url}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("parsing response JSON: %w", err)
	}
	return nil
}

// StatusError is returned for unexpected HTTP status codes.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.URL, e.StatusCode)
}
