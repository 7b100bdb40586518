package main

import (
	"fmt"

	"github.com/jswierad/contentlens"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := contentlens.AnalysisFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.URL = &c.URL
	}
	if c.Status != "" {
		filter.Status = &c.Status
	}

	recs, err := deps.Store.FindAnalyses(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", contentlens.ErrorMessage(err))
		return err
	}

	if len(recs) == 0 {
		fmt.Fprintln(deps.Stdout, "No stored analyses. Use 'contentlens analyze' to create one.")
		return nil
	}

	for _, rec := range recs {
		if c.Full {
			fmt.Fprintln(deps.Stdout, rec.Result)
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s  %-13s  %-12s  %.2f  %s\n",
			rec.CreatedAt.Format("2006-01-02 15:04"), rec.Status, rec.PrimaryCategory, rec.QualityScore, rec.URL)
	}

	return nil
}
