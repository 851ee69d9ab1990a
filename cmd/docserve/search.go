package main

import (
	"fmt"

	"github.com/fwojciec/docserve"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	results, err := deps.Searcher.Search(deps.Ctx, c.Query, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docserve.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintf(deps.Stdout, "No results for %q.\n", c.Query)
		return nil
	}

	for _, r := range results {
		fmt.Fprintf(deps.Stdout, "%6.1f  %s  %s\n", r.Score, r.Document.RelPath, r.Document.Title)
		if r.Excerpt != "" {
			fmt.Fprintf(deps.Stdout, "        %s\n", r.Excerpt)
		}
	}

	return nil
}
