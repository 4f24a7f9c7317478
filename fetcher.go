package wordshelf

import "context"

// Fetcher retrieves a document from a URL as UTF-8 text.
type Fetcher interface {
	// Fetch downloads the document at the URL and returns its body
	// decoded as UTF-8. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (text string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
