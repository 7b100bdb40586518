package main

import (
	"encoding/json"
	"fmt"

	"github.com/jswierad/contentlens"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	depth, err := contentlens.ParseDepth(c.Depth)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", contentlens.ErrorMessage(err))
		return err
	}

	if len(c.URLs) == 0 {
		fmt.Fprintf(deps.Stderr, "error: at least one URL required\n")
		return contentlens.Errorf(contentlens.EINVALID, "at least one URL required")
	}
	if max := deps.Config.MaxBatchSize; max > 0 && len(c.URLs) > max {
		fmt.Fprintf(deps.Stderr, "error: batch limited to %d URLs, got %d\n", max, len(c.URLs))
		return contentlens.Errorf(contentlens.EINVALID, "batch limited to %d URLs, got %d", max, len(c.URLs))
	}

	batch := &contentlens.BatchRequest{
		URLs:             c.URLs,
		Depth:            depth,
		IncludeMetadata:  c.Metadata,
		CustomCategories: c.Categories,
		Parallel:         !c.Sequential,
		MaxConcurrent:    c.Workers,
	}

	results := deps.Engine.AnalyzeBatch(deps.Ctx, batch)
	report := contentlens.BuildBatchReport(results)

	encoded, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(encoded))

	fmt.Fprintf(deps.Stderr, "%d/%d succeeded in %.1fs\n",
		report.Succeeded, report.TotalURLs, report.TotalProcessingTimeSeconds)
	return nil
}
