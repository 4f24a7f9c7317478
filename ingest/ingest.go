// Package ingest provides fetch-and-analyze orchestration.
// It coordinates fetching a document, ranking its words, resolving the
// book title, and saving the result.
package ingest

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"net/url"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/wordshelf"
)

// Ingestor orchestrates fetching, analysis, and storage of one document.
type Ingestor struct {
	Fetcher wordshelf.Fetcher
	Books   wordshelf.BookService

	// Limiter, if set, paces requests per domain. Useful when a single
	// invocation ingests several URLs from the same host.
	Limiter wordshelf.DomainLimiter
}

// Result holds the outcome of an ingest operation. The ranking is always
// the freshly computed one, even when the title was already saved.
type Result struct {
	Title   string
	Ranking wordshelf.Ranking

	// Stored reports whether a new book record was created.
	Stored bool

	// Conflict reports that the title was already saved; the stored
	// ranking was left untouched.
	Conflict bool
}

// IngestURL fetches the document at rawURL, ranks its words, and saves the
// ranking under a resolved title. Title resolution priority: the caller's
// hint, then the Gutenberg title line for HTML documents, then the final
// path segment of the URL.
//
// A duplicate title does not fail the operation: the freshly computed
// ranking is returned with Conflict set so the caller can warn.
func (ing *Ingestor) IngestURL(ctx context.Context, rawURL, titleHint string) (*Result, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, wordshelf.Errorf(wordshelf.EINVALID, "URL required")
	}

	if ing.Limiter != nil {
		if err := ing.Limiter.Wait(ctx, domainOf(rawURL)); err != nil {
			return nil, err
		}
	}

	text, err := ing.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	// The title line must be read from the unmodified HTML, before
	// Normalize strips the markup.
	title := strings.TrimSpace(titleHint)
	if title == "" && wordshelf.IsHTML(text) {
		if extracted, ok := wordshelf.ExtractTitle(text); ok {
			title = extracted
		}
	}

	ranking := wordshelf.Rank(wordshelf.Normalize(text))

	if title == "" {
		title = wordshelf.TitleFromURL(rawURL)
	}
	if title == "" {
		return nil, wordshelf.Errorf(wordshelf.EINVALID, "could not resolve a title for %q; provide one with --title", rawURL)
	}

	result := &Result{Title: title, Ranking: ranking}

	book := &wordshelf.Book{
		Title:       title,
		SourceURL:   rawURL,
		ContentHash: hashContent(text),
		Ranking:     ranking,
	}

	if err := ing.Books.CreateBook(ctx, book); err != nil {
		if wordshelf.ErrorCode(err) == wordshelf.ECONFLICT {
			result.Conflict = true
			return result, nil
		}
		return nil, err
	}

	result.Stored = true
	return result, nil
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// domainOf extracts the host for rate limiting. Unparseable URLs fall
// back to the raw string; the fetcher will reject them properly.
func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
