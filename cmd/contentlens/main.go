package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"

	"github.com/jswierad/contentlens"
	"github.com/jswierad/contentlens/analysis"
	"github.com/jswierad/contentlens/goquery"
	lenshttp "github.com/jswierad/contentlens/http"
	"github.com/jswierad/contentlens/openai"
	lensslog "github.com/jswierad/contentlens/slog"
	"github.com/jswierad/contentlens/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Runtime configuration assembled from the environment.
	Config contentlens.Config

	// SQLite database used by the analysis store.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Config: configFromEnv(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Config: m.Config,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("contentlens"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'contentlens --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set CONTENTLENS_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	deps.Store = sqlite.NewAnalysisStore(m.DB)

	// Commands that run the analysis pipeline need the full engine.
	if cmd == "analyze" || cmd == "batch" {
		if m.Config.Endpoint == "" || m.Config.APIKey == "" || m.Config.Model == "" {
			fmt.Fprintln(stderr, "Hint: Set CONTENTLENS_ENDPOINT, CONTENTLENS_API_KEY and CONTENTLENS_MODEL")
			return contentlens.Errorf(contentlens.EINVALID, "analysis endpoint not configured")
		}

		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel()}))

		fetchOpts := []lenshttp.Option{lenshttp.WithTimeout(m.Config.FetchTimeout)}
		if m.Config.ProxyURL != "" {
			fetchOpts = append(fetchOpts, lenshttp.WithProxy(lenshttp.NewProxyClient(m.Config.ProxyURL, m.Config.FetchTimeout)))
		}

		deps.Engine = &analysis.Engine{
			Fetcher:     lensslog.NewLoggingFetcher(lenshttp.NewFetcher(fetchOpts...), logger),
			Extractor:   goquery.NewExtractor(),
			Analyzer:    lensslog.NewLoggingAnalyzer(openai.NewAnalyzer(m.Config), logger),
			RateLimiter: analysis.NewDomainLimiter(1.0),
			Store:       deps.Store,
			Logger:      logger,
			Config:      m.Config,
		}
	}

	return kongCtx.Run(deps)
}

// configFromEnv assembles the runtime configuration from CONTENTLENS_*
// environment variables on top of the defaults.
func configFromEnv() contentlens.Config {
	cfg := contentlens.DefaultConfig()
	cfg.Endpoint = os.Getenv("CONTENTLENS_ENDPOINT")
	cfg.APIKey = os.Getenv("CONTENTLENS_API_KEY")
	cfg.Model = os.Getenv("CONTENTLENS_MODEL")
	cfg.ProxyURL = os.Getenv("CONTENTLENS_PROXY_URL")
	if v := os.Getenv("CONTENTLENS_FETCH_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.FetchTimeout = d
		}
	}
	return cfg
}

func logLevel() slog.Level {
	if os.Getenv("CONTENTLENS_DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func defaultDBPath() string {
	if path := os.Getenv("CONTENTLENS_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "contentlens.db"
	}
	dir := filepath.Join(home, ".contentlens")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "contentlens.db")
}
