package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/wordshelf"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	books, err := deps.Books.FindBooks(deps.Ctx, wordshelf.BookFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordshelf.ErrorMessage(err))
		return err
	}

	if len(books) == 0 {
		fmt.Fprintln(deps.Stdout, "No books saved. Use 'wordshelf fetch' to add one.")
		return nil
	}

	for _, b := range books {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", b.CreatedAt.Format(time.DateOnly), b.Title, b.SourceURL)
	}

	return nil
}
