package mock

import (
	"context"

	"github.com/jswierad/contentlens"
)

var _ contentlens.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of contentlens.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) *contentlens.FetchResult
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) *contentlens.FetchResult {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
