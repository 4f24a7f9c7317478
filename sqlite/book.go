package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/wordshelf"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ wordshelf.BookService = (*BookService)(nil)

// BookService implements wordshelf.BookService using SQLite.
type BookService struct {
	db *DB
}

// NewBookService creates a new BookService.
func NewBookService(db *DB) *BookService {
	return &BookService{db: db}
}

// CreateBook persists a new book and its ranking. Returns ECONFLICT if a
// book with the same title already exists; the title column collates
// NOCASE, so "Hamlet" conflicts with "hamlet".
func (s *BookService) CreateBook(ctx context.Context, book *wordshelf.Book) error {
	if err := book.Validate(); err != nil {
		return err
	}

	var exists int
	err := s.db.QueryRowContext(ctx, `
		SELECT 1 FROM books WHERE title = ?
	`, book.Title).Scan(&exists)
	if err == nil {
		return wordshelf.Errorf(wordshelf.ECONFLICT, "book %q already saved", book.Title)
	}
	if err != sql.ErrNoRows {
		return err
	}

	book.ID = uuid.New().String()
	book.CreatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO books (id, title, source_url, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, book.ID, book.Title, book.SourceURL, book.ContentHash,
		book.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	for i, wc := range book.Ranking {
		_, err = s.db.ExecContext(ctx, `
			INSERT INTO words (title, word, frequency, position)
			VALUES (?, ?, ?, ?)
		`, book.Title, wc.Word, wc.Frequency, i)
		if err != nil {
			return err
		}
	}

	return nil
}

// FindRankingByTitle retrieves the stored ranking for a title,
// case-insensitively. Entries come back ordered by frequency descending;
// equal frequencies keep their original ranking position.
func (s *BookService) FindRankingByTitle(ctx context.Context, title string) (wordshelf.Ranking, error) {
	// Check the book row first so a missing title is distinguishable
	// from a saved book whose document had no qualifying words.
	var id string
	err := s.db.QueryRowContext(ctx, `
		SELECT id FROM books WHERE title = ?
	`, title).Scan(&id)
	if err == sql.ErrNoRows {
		return nil, wordshelf.Errorf(wordshelf.ENOTFOUND, "book %q not found", title)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT word, frequency FROM words
		WHERE title = ?
		ORDER BY frequency DESC, position ASC
	`, title)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ranking := wordshelf.Ranking{}
	for rows.Next() {
		var wc wordshelf.WordCount
		if err := rows.Scan(&wc.Word, &wc.Frequency); err != nil {
			return nil, err
		}
		ranking = append(ranking, wc)
	}

	return ranking, rows.Err()
}

// FindBooks retrieves books matching the filter, most recent first.
// Rankings are not populated; use FindRankingByTitle for the word rows.
func (s *BookService) FindBooks(ctx context.Context, filter wordshelf.BookFilter) ([]*wordshelf.Book, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, title, source_url, content_hash, created_at FROM books WHERE 1=1")

	if filter.Title != nil {
		query.WriteString(" AND title = ?")
		args = append(args, *filter.Title)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []*wordshelf.Book
	for rows.Next() {
		var book wordshelf.Book
		var createdAt string

		if err := rows.Scan(&book.ID, &book.Title, &book.SourceURL, &book.ContentHash, &createdAt); err != nil {
			return nil, err
		}

		book.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		books = append(books, &book)
	}

	return books, rows.Err()
}

// DeleteBook permanently removes a book; its word rows cascade.
func (s *BookService) DeleteBook(ctx context.Context, title string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM books WHERE title = ?", title)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return wordshelf.Errorf(wordshelf.ENOTFOUND, "book %q not found", title)
	}

	return nil
}
