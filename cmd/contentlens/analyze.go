package main

import (
	"encoding/json"
	"fmt"

	"github.com/jswierad/contentlens"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	depth, err := contentlens.ParseDepth(c.Depth)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", contentlens.ErrorMessage(err))
		return err
	}

	req := &contentlens.AnalysisRequest{
		URL:              c.URL,
		Depth:            depth,
		IncludeMetadata:  c.Metadata,
		CustomCategories: c.Categories,
	}
	if err := req.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", contentlens.ErrorMessage(err))
		return err
	}

	result := deps.Engine.AnalyzeURL(deps.Ctx, req)

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(encoded))

	if result.Status == contentlens.StatusError {
		return contentlens.Errorf(contentlens.EINTERNAL, "analysis failed for %s", c.URL)
	}
	return nil
}
