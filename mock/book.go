package mock

import (
	"context"

	"github.com/fwojciec/wordshelf"
)

var _ wordshelf.BookService = (*BookService)(nil)

// BookService is a mock implementation of wordshelf.BookService.
type BookService struct {
	CreateBookFn         func(ctx context.Context, book *wordshelf.Book) error
	FindRankingByTitleFn func(ctx context.Context, title string) (wordshelf.Ranking, error)
	FindBooksFn          func(ctx context.Context, filter wordshelf.BookFilter) ([]*wordshelf.Book, error)
	DeleteBookFn         func(ctx context.Context, title string) error
}

func (s *BookService) CreateBook(ctx context.Context, book *wordshelf.Book) error {
	return s.CreateBookFn(ctx, book)
}

func (s *BookService) FindRankingByTitle(ctx context.Context, title string) (wordshelf.Ranking, error) {
	return s.FindRankingByTitleFn(ctx, title)
}

func (s *BookService) FindBooks(ctx context.Context, filter wordshelf.BookFilter) ([]*wordshelf.Book, error) {
	return s.FindBooksFn(ctx, filter)
}

func (s *BookService) DeleteBook(ctx context.Context, title string) error {
	return s.DeleteBookFn(ctx, title)
}
