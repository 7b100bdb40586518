package main

import (
	"context"
	"io"

	"github.com/jswierad/contentlens"
	"github.com/jswierad/contentlens/analysis"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Config contentlens.Config
	Engine *analysis.Engine
	Store  contentlens.AnalysisStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Analyze AnalyzeCmd `cmd:"" help:"Analyze a single URL"`
	Batch   BatchCmd   `cmd:"" help:"Analyze multiple URLs concurrently"`
	History HistoryCmd `cmd:"" help:"List stored analysis results"`
	Clear   ClearCmd   `cmd:"" help:"Delete stored analysis results for a URL"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URL        string   `arg:"" help:"URL to analyze"`
	Depth      string   `short:"d" default:"comprehensive" enum:"basic,detailed,comprehensive" help:"Analysis depth"`
	Metadata   bool     `short:"m" help:"Include content metadata in the result"`
	Categories []string `short:"c" name:"category" help:"Custom category (repeatable)"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	URLs       []string `arg:"" help:"URLs to analyze"`
	Depth      string   `short:"d" default:"comprehensive" enum:"basic,detailed,comprehensive" help:"Analysis depth"`
	Metadata   bool     `short:"m" help:"Include content metadata in the results"`
	Categories []string `short:"c" name:"category" help:"Custom category (repeatable)"`
	Sequential bool     `help:"Process URLs one at a time"`
	Workers    int      `short:"w" name:"max-concurrent" help:"Concurrent pipeline limit (1-10, default 5)"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	URL    string `short:"u" help:"Filter by URL"`
	Status string `short:"s" enum:",success,error,partial_error" default:"" help:"Filter by status"`
	Limit  int    `short:"n" default:"20" help:"Maximum records to show"`
	Full   bool   `help:"Show the full stored result JSON"`
}

// ClearCmd is the "clear" subcommand.
type ClearCmd struct {
	URL   string `arg:"" help:"URL whose records to delete"`
	Force bool   `help:"Confirm deletion"`
}
