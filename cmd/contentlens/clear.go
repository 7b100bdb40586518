package main

import (
	"fmt"

	"github.com/jswierad/contentlens"
)

// Run executes the clear command.
func (c *ClearCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return contentlens.Errorf(contentlens.EINVALID, "use --force to confirm deletion")
	}

	n, err := deps.Store.DeleteAnalysesByURL(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", contentlens.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %d stored analyses for %s\n", n, c.URL)
	return nil
}
