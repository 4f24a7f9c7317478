package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wordshelf"
)

// Ensure LoggingBookService implements wordshelf.BookService.
var _ wordshelf.BookService = (*LoggingBookService)(nil)

// LoggingBookService wraps a BookService with operation logging.
type LoggingBookService struct {
	next   wordshelf.BookService
	logger *slog.Logger
}

// NewLoggingBookService creates a new LoggingBookService.
func NewLoggingBookService(next wordshelf.BookService, logger *slog.Logger) *LoggingBookService {
	return &LoggingBookService{next: next, logger: logger}
}

// CreateBook delegates to the wrapped service and logs the operation.
func (s *LoggingBookService) CreateBook(ctx context.Context, book *wordshelf.Book) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create book",
			"title", book.Title,
			"words", len(book.Ranking),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateBook(ctx, book)
}

// FindRankingByTitle delegates to the wrapped service and logs the operation.
func (s *LoggingBookService) FindRankingByTitle(ctx context.Context, title string) (ranking wordshelf.Ranking, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find ranking",
			"title", title,
			"words", len(ranking),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRankingByTitle(ctx, title)
}

// FindBooks delegates to the wrapped service.
func (s *LoggingBookService) FindBooks(ctx context.Context, filter wordshelf.BookFilter) ([]*wordshelf.Book, error) {
	return s.next.FindBooks(ctx, filter)
}

// DeleteBook delegates to the wrapped service and logs the operation.
func (s *LoggingBookService) DeleteBook(ctx context.Context, title string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete book",
			"title", title,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteBook(ctx, title)
}
