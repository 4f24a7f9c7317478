package wordshelf

import (
	"context"
	"time"
)

// WordCount pairs a lowercase word with its occurrence count in a book.
type WordCount struct {
	Word      string `json:"word"`
	Frequency int    `json:"frequency"`
}

// Ranking is an ordered word frequency ranking: up to RankingSize entries,
// frequency descending, ties in first-occurrence order. Each word appears
// at most once.
type Ranking []WordCount

// Book represents one analyzed document and its word ranking.
// A book is created by a successful fetch-and-analyze and is immutable
// thereafter; it is removed only by administrative deletion.
type Book struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	SourceURL   string    `json:"sourceUrl"`
	ContentHash string    `json:"contentHash"`
	Ranking     Ranking   `json:"ranking"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the book contains invalid fields.
func (b *Book) Validate() error {
	if b.Title == "" {
		return Errorf(EINVALID, "book title required")
	}
	return nil
}

// BookService represents a service for managing saved books.
type BookService interface {
	// CreateBook persists a new book and its ranking.
	// Returns ECONFLICT if a book with the same title already exists
	// (titles compare case-insensitively). The existing ranking is
	// never overwritten.
	CreateBook(ctx context.Context, book *Book) error

	// FindRankingByTitle retrieves the stored ranking for a title.
	// Lookup is case-insensitive. Entries are ordered by frequency
	// descending. Returns ENOTFOUND if no book matches; a saved book
	// with no qualifying words yields an empty ranking, not ENOTFOUND.
	FindRankingByTitle(ctx context.Context, title string) (Ranking, error)

	// FindBooks retrieves books matching the filter.
	FindBooks(ctx context.Context, filter BookFilter) ([]*Book, error)

	// DeleteBook permanently removes a book and its word rows.
	// Returns ENOTFOUND if no book matches the title.
	DeleteBook(ctx context.Context, title string) error
}

// BookFilter represents a filter for FindBooks.
type BookFilter struct {
	Title *string `json:"title"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
