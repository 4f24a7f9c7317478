package mock

import (
	"context"

	"github.com/fwojciec/wordshelf"
)

var _ wordshelf.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of wordshelf.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.WaitFn(ctx, domain)
}
