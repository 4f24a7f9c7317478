// Package http provides an HTTP-based implementation of wordshelf.Fetcher
// for downloading plain-text and HTML documents.
package http

import (
	"context"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/wordshelf"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements wordshelf.Fetcher at compile time.
var _ wordshelf.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves document text from URLs using HTTP requests.
// Unreachable hosts, non-200 responses, and bodies that are not valid
// UTF-8 all surface as EUNAVAILABLE; callers don't distinguish the
// sub-cases.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the document at the given URL as UTF-8 text.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", wordshelf.Errorf(wordshelf.EINVALID, "invalid URL %q: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", wordshelf.Errorf(wordshelf.EUNAVAILABLE, "failed to fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", wordshelf.Errorf(wordshelf.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", wordshelf.Errorf(wordshelf.EUNAVAILABLE, "failed to read %s: %v", url, err)
	}

	if !utf8.Valid(body) {
		return "", wordshelf.Errorf(wordshelf.EUNAVAILABLE, "response from %s is not valid UTF-8", url)
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
