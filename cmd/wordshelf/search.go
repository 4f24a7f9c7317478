package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/wordshelf"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	title := strings.TrimSpace(c.Title)
	if title == "" {
		fmt.Fprintf(deps.Stderr, "error: book title required\n")
		return wordshelf.Errorf(wordshelf.EINVALID, "book title required")
	}

	ranking, err := deps.Books.FindRankingByTitle(deps.Ctx, title)
	if err != nil {
		// A missing book is an expected outcome, not a failure.
		if wordshelf.ErrorCode(err) == wordshelf.ENOTFOUND {
			fmt.Fprintf(deps.Stdout, "Book %q not found. Use 'wordshelf fetch <url>' to add it.\n", title)
			return nil
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordshelf.ErrorMessage(err))
		return err
	}

	printRanking(deps, title, ranking)
	return nil
}
