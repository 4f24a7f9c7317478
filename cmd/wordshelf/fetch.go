package main

import (
	"fmt"

	"github.com/fwojciec/wordshelf"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	if c.Title != "" && len(c.URLs) > 1 {
		fmt.Fprintf(deps.Stderr, "error: --title applies to a single URL\n")
		return wordshelf.Errorf(wordshelf.EINVALID, "--title applies to a single URL")
	}

	for _, url := range c.URLs {
		result, err := deps.Ingestor.IngestURL(deps.Ctx, url, c.Title)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wordshelf.ErrorMessage(err))
			return err
		}

		if result.Conflict {
			fmt.Fprintf(deps.Stderr, "warning: %q is already saved; its stored ranking was kept\n", result.Title)
		}

		printRanking(deps, result.Title, result.Ranking)
	}

	return nil
}

// printRanking writes a ranking in the original tool's output format.
func printRanking(deps *Dependencies, title string, ranking wordshelf.Ranking) {
	fmt.Fprintf(deps.Stdout, "Top %d words for %q:\n", wordshelf.RankingSize, title)
	if len(ranking) == 0 {
		fmt.Fprintln(deps.Stdout, "  (no words of four or more letters)")
		return
	}
	for _, wc := range ranking {
		fmt.Fprintf(deps.Stdout, "  %s: %d\n", wc.Word, wc.Frequency)
	}
}
