package service

import (
	"context"

	"oms-client/internal/pkg/pool"
)

// Warm prefetches all three collections concurrently. Errors are already
// logged by the individual services and otherwise ignored: a cold cache is
// a valid state, the next read simply refetches.
func (s *Services) Warm(ctx context.Context) {
	p := pool.New(3)
	p.Submit(func() { _, _ = s.Orders.List(ctx) })
	p.Submit(func() { _, _ = s.Products.List(ctx) })
	p.Submit(func() { _, _ = s.Sales.List(ctx) })
	p.Close()
	p.Wait()
}
