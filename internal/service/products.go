package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"oms-client/internal/cache"
	"oms-client/internal/domain"
	"oms-client/internal/observability"
	"oms-client/internal/transport"
)

const kindProducts = string(cache.KindProducts)

type Products struct {
	api     api
	store   *cache.Store
	logger  *zap.Logger
	metrics observability.Metrics
}

func NewProducts(api api, store *cache.Store, logger *zap.Logger, metrics observability.Metrics) *Products {
	return &Products{
		api:     api,
		store:   store,
		logger:  logger,
		metrics: metrics,
	}
}

// productForm enumerates the exact multipart encoding of a product payload:
// four text fields plus the optional image attachment.
func productForm(in domain.ProductInput) *transport.Form {
	f := &transport.Form{}
	f.Text("productName", in.Name)
	f.Float("width", in.Width)
	f.Float("height", in.Height)
	f.Float("weight", in.Weight)
	if in.Image != nil {
		f.File("images", in.Image.Filename, in.Image.ContentType, in.Image.Data)
	}
	return f
}

func (s *Products) List(ctx context.Context) ([]domain.Product, error) {
	if s.store.Products.Valid() {
		s.metrics.IncCacheHit(kindProducts)
		return s.store.Products.Records(), nil
	}
	s.metrics.IncCacheMiss(kindProducts)
	return s.refresh(ctx)
}

// refresh performs the full-collection fetch and replaces the snapshot.
func (s *Products) refresh(ctx context.Context) ([]domain.Product, error) {
	start := time.Now()
	var products []domain.Product
	if err := s.api.GetJSON(ctx, "/products", &products); err != nil {
		s.metrics.ObserveRequest(kindProducts, "list", convertToMs(start), false)
		s.logger.Error("listing products failed", zap.Error(err))
		return nil, err
	}
	s.metrics.ObserveRequest(kindProducts, "list", convertToMs(start), true)

	s.store.Products.Put(products)
	s.logger.Info("products refreshed",
		zap.Int("count", len(products)),
	)
	return products, nil
}

// GetByID serves from the valid snapshot when possible. The remote service
// has no single-product endpoint, so any miss falls back to a fresh
// full-collection fetch — warming the snapshot as a side effect — followed
// by a linear search.
func (s *Products) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	tCache := time.Now()
	if s.store.Products.Valid() {
		if p, ok := s.store.Products.Find(func(p domain.Product) bool { return p.ID == id }); ok {
			s.metrics.IncCacheHit(kindProducts)
			s.metrics.ObserveLookup(kindProducts, observability.SourceCache, convertToMs(tCache))
			return &p, nil
		}
	}
	s.metrics.IncCacheMiss(kindProducts)

	products, err := s.refresh(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			s.metrics.ObserveLookup(kindProducts, observability.SourceRemote, convertToMs(tCache))
			return &products[i], nil
		}
	}
	return nil, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
}

// Create submits a new product as a multipart form and clears the products
// snapshot on success.
func (s *Products) Create(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	start := time.Now()
	var created domain.Product
	if err := s.api.PostForm(ctx, "/products/add", productForm(in), &created); err != nil {
		s.metrics.ObserveRequest(kindProducts, "create", convertToMs(start), false)
		s.logger.Error("creating product failed", zap.Error(err))
		return nil, err
	}
	s.metrics.ObserveRequest(kindProducts, "create", convertToMs(start), true)

	s.store.Invalidate(cache.KindProducts)
	s.logger.Info("product created",
		zap.String("product_id", created.ID),
	)
	return &created, nil
}

// Update submits a multipart update. On success only the affected record is
// evicted from the snapshot; the rest of the collection, and its validity,
// stay as they were.
func (s *Products) Update(ctx context.Context, id string, in domain.ProductInput) (*domain.Product, error) {
	start := time.Now()
	var updated domain.Product
	if err := s.api.PutForm(ctx, "/products/update/"+id, productForm(in), &updated); err != nil {
		s.metrics.ObserveRequest(kindProducts, "update", convertToMs(start), false)
		s.logger.Error("updating product failed",
			zap.String("product_id", id),
			zap.Error(err),
		)
		return nil, err
	}
	s.metrics.ObserveRequest(kindProducts, "update", convertToMs(start), true)

	s.store.Products.Evict(func(p domain.Product) bool { return p.ID == id })
	s.logger.Info("product updated",
		zap.String("product_id", id),
	)
	return &updated, nil
}

func (s *Products) Delete(ctx context.Context, id string) error {
	start := time.Now()
	if err := s.api.Delete(ctx, "/products/delete/"+id); err != nil {
		s.metrics.ObserveRequest(kindProducts, "delete", convertToMs(start), false)
		s.logger.Error("deleting product failed",
			zap.String("product_id", id),
			zap.Error(err),
		)
		return err
	}
	s.metrics.ObserveRequest(kindProducts, "delete", convertToMs(start), true)

	s.store.Invalidate(cache.KindProducts)
	s.logger.Info("product deleted",
		zap.String("product_id", id),
	)
	return nil
}

// ClearCache drops the products snapshot so the next read refetches.
func (s *Products) ClearCache() {
	s.store.Invalidate(cache.KindProducts)
}
