package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"oms-client/internal/cache"
	"oms-client/internal/domain"
	"oms-client/internal/observability"
	"oms-client/internal/transport"
)

const kindSales = string(cache.KindSales)

type Sales struct {
	api     api
	store   *cache.Store
	logger  *zap.Logger
	metrics observability.Metrics
}

func NewSales(api api, store *cache.Store, logger *zap.Logger, metrics observability.Metrics) *Sales {
	return &Sales{
		api:     api,
		store:   store,
		logger:  logger,
		metrics: metrics,
	}
}

func (s *Sales) List(ctx context.Context) ([]domain.Sale, error) {
	if s.store.Sales.Valid() {
		s.metrics.IncCacheHit(kindSales)
		return s.store.Sales.Records(), nil
	}
	s.metrics.IncCacheMiss(kindSales)

	start := time.Now()
	var sales []domain.Sale
	if err := s.api.GetJSON(ctx, "/sales", &sales); err != nil {
		s.metrics.ObserveRequest(kindSales, "list", convertToMs(start), false)
		s.logger.Error("listing sales failed", zap.Error(err))
		return nil, err
	}
	s.metrics.ObserveRequest(kindSales, "list", convertToMs(start), true)

	s.store.Sales.Put(sales)
	s.logger.Info("sales refreshed",
		zap.Int("count", len(sales)),
	)
	return sales, nil
}

// GetByID serves from the valid snapshot when possible; a miss issues a
// dedicated single-record fetch, same shape as the orders lookup.
func (s *Sales) GetByID(ctx context.Context, id string) (*domain.Sale, error) {
	tCache := time.Now()
	if s.store.Sales.Valid() {
		if sale, ok := s.store.Sales.Find(func(sl domain.Sale) bool { return sl.ID == id }); ok {
			s.metrics.IncCacheHit(kindSales)
			s.metrics.ObserveLookup(kindSales, observability.SourceCache, convertToMs(tCache))
			return &sale, nil
		}
	}
	s.metrics.IncCacheMiss(kindSales)

	start := time.Now()
	var sale domain.Sale
	if err := s.api.GetJSON(ctx, "/sales/"+id, &sale); err != nil {
		s.metrics.ObserveRequest(kindSales, "get", convertToMs(start), false)
		if transport.IsStatus(err, http.StatusNotFound) {
			return nil, fmt.Errorf("sale %s: %w", id, domain.ErrNotFound)
		}
		s.logger.Error("fetching sale failed",
			zap.String("sale_id", id),
			zap.Error(err),
		)
		return nil, err
	}
	s.metrics.ObserveRequest(kindSales, "get", convertToMs(start), true)
	s.metrics.ObserveLookup(kindSales, observability.SourceRemote, convertToMs(tCache))
	return &sale, nil
}

func (s *Sales) Create(ctx context.Context, in domain.SaleInput) (*domain.Sale, error) {
	start := time.Now()
	var created domain.Sale
	if err := s.api.PostJSON(ctx, "/sales/add", in, &created); err != nil {
		s.metrics.ObserveRequest(kindSales, "create", convertToMs(start), false)
		s.logger.Error("creating sale failed", zap.Error(err))
		return nil, err
	}
	s.metrics.ObserveRequest(kindSales, "create", convertToMs(start), true)

	s.store.Invalidate(cache.KindSales)
	s.logger.Info("sale created",
		zap.String("sale_id", created.ID),
	)
	return &created, nil
}

func (s *Sales) Update(ctx context.Context, id string, in domain.SaleInput) (*domain.Sale, error) {
	start := time.Now()
	var updated domain.Sale
	if err := s.api.PutJSON(ctx, "/sales/update/"+id, in, &updated); err != nil {
		s.metrics.ObserveRequest(kindSales, "update", convertToMs(start), false)
		s.logger.Error("updating sale failed",
			zap.String("sale_id", id),
			zap.Error(err),
		)
		return nil, err
	}
	s.metrics.ObserveRequest(kindSales, "update", convertToMs(start), true)

	s.store.Invalidate(cache.KindSales)
	s.logger.Info("sale updated",
		zap.String("sale_id", id),
	)
	return &updated, nil
}

func (s *Sales) Delete(ctx context.Context, id string) error {
	start := time.Now()
	if err := s.api.Delete(ctx, "/sales/delete/"+id); err != nil {
		s.metrics.ObserveRequest(kindSales, "delete", convertToMs(start), false)
		s.logger.Error("deleting sale failed",
			zap.String("sale_id", id),
			zap.Error(err),
		)
		return err
	}
	s.metrics.ObserveRequest(kindSales, "delete", convertToMs(start), true)

	s.store.Invalidate(cache.KindSales)
	s.logger.Info("sale deleted",
		zap.String("sale_id", id),
	)
	return nil
}

// Stats fetches the remote aggregate; it never touches the cache.
func (s *Sales) Stats(ctx context.Context) (*domain.SalesStats, error) {
	start := time.Now()
	var stats domain.SalesStats
	if err := s.api.GetJSON(ctx, "/sales/stats", &stats); err != nil {
		s.metrics.ObserveRequest(kindSales, "stats", convertToMs(start), false)
		s.logger.Error("fetching sales stats failed", zap.Error(err))
		return nil, err
	}
	s.metrics.ObserveRequest(kindSales, "stats", convertToMs(start), true)
	return &stats, nil
}
