package mock

import (
	"context"

	"github.com/jswierad/contentlens"
)

var _ contentlens.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of contentlens.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.WaitFn(ctx, domain)
}
