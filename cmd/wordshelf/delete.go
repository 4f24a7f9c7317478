package main

import (
	"fmt"

	"github.com/fwojciec/wordshelf"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return wordshelf.Errorf(wordshelf.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Books.DeleteBook(deps.Ctx, c.Title); err != nil {
		if wordshelf.ErrorCode(err) == wordshelf.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: book %q not found. Use 'wordshelf list' to see saved books.\n", c.Title)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordshelf.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted book %q\n", c.Title)
	return nil
}
