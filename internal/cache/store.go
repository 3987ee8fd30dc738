package cache

import (
	"time"

	"oms-client/internal/domain"
)

// Kind names one of the three cached collections.
type Kind string

const (
	KindOrders   Kind = "orders"
	KindProducts Kind = "products"
	KindSales    Kind = "sales"
)

// Store aggregates the per-kind snapshots. One Store is created per process
// and handed to each service; nothing here is a package-level singleton.
type Store struct {
	Orders   *Snapshot[domain.Order]
	Products *Snapshot[domain.Product]
	Sales    *Snapshot[domain.Sale]
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		Orders:   NewSnapshot[domain.Order](ttl),
		Products: NewSnapshot[domain.Product](ttl),
		Sales:    NewSnapshot[domain.Sale](ttl),
	}
}

// Invalidate clears a single kind. Unknown kinds are ignored.
func (s *Store) Invalidate(kind Kind) {
	switch kind {
	case KindOrders:
		s.Orders.Invalidate()
	case KindProducts:
		s.Products.Invalidate()
	case KindSales:
		s.Sales.Invalidate()
	}
}

// Reset clears every kind.
func (s *Store) Reset() {
	s.Orders.Invalidate()
	s.Products.Invalidate()
	s.Sales.Invalidate()
}
