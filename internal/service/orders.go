package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"oms-client/internal/cache"
	"oms-client/internal/domain"
	"oms-client/internal/observability"
	"oms-client/internal/transport"
)

const kindOrders = string(cache.KindOrders)

type Orders struct {
	api     api
	store   *cache.Store
	logger  *zap.Logger
	metrics observability.Metrics
}

func NewOrders(api api, store *cache.Store, logger *zap.Logger, metrics observability.Metrics) *Orders {
	return &Orders{
		api:     api,
		store:   store,
		logger:  logger,
		metrics: metrics,
	}
}

// List returns the full order collection, served from the snapshot while it
// is valid. A failed refetch leaves the cache untouched.
func (s *Orders) List(ctx context.Context) ([]domain.Order, error) {
	if s.store.Orders.Valid() {
		s.metrics.IncCacheHit(kindOrders)
		return s.store.Orders.Records(), nil
	}
	s.metrics.IncCacheMiss(kindOrders)

	start := time.Now()
	var orders []domain.Order
	if err := s.api.GetJSON(ctx, "/orders", &orders); err != nil {
		s.metrics.ObserveRequest(kindOrders, "list", convertToMs(start), false)
		s.logger.Error("listing orders failed", zap.Error(err))
		return nil, err
	}
	s.metrics.ObserveRequest(kindOrders, "list", convertToMs(start), true)

	s.store.Orders.Put(orders)
	s.logger.Info("orders refreshed",
		zap.Int("count", len(orders)),
	)
	return orders, nil
}

// GetByID serves from the valid snapshot when possible; on a miss it issues
// a dedicated single-record fetch.
func (s *Orders) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	tCache := time.Now()
	if s.store.Orders.Valid() {
		if o, ok := s.store.Orders.Find(func(o domain.Order) bool { return o.ID == id }); ok {
			s.metrics.IncCacheHit(kindOrders)
			s.metrics.ObserveLookup(kindOrders, observability.SourceCache, convertToMs(tCache))
			return &o, nil
		}
	}
	s.metrics.IncCacheMiss(kindOrders)

	start := time.Now()
	var order domain.Order
	if err := s.api.GetJSON(ctx, "/orders/"+id, &order); err != nil {
		s.metrics.ObserveRequest(kindOrders, "get", convertToMs(start), false)
		if transport.IsStatus(err, http.StatusNotFound) {
			return nil, fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
		}
		s.logger.Error("fetching order failed",
			zap.String("order_id", id),
			zap.Error(err),
		)
		return nil, err
	}
	s.metrics.ObserveRequest(kindOrders, "get", convertToMs(start), true)
	s.metrics.ObserveLookup(kindOrders, observability.SourceRemote, convertToMs(tCache))
	return &order, nil
}

// Create submits a new order. An empty item list fails fast before any
// network call.
func (s *Orders) Create(ctx context.Context, in domain.OrderInput) (*domain.Order, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: order has no items", domain.ErrValidation)
	}

	start := time.Now()
	var created domain.Order
	if err := s.api.PostJSON(ctx, "/orders/add", in, &created); err != nil {
		s.metrics.ObserveRequest(kindOrders, "create", convertToMs(start), false)
		s.logger.Error("creating order failed", zap.Error(err))
		return nil, err
	}
	s.metrics.ObserveRequest(kindOrders, "create", convertToMs(start), true)

	s.store.Invalidate(cache.KindOrders)
	s.logger.Info("order created",
		zap.String("order_id", created.ID),
	)
	return &created, nil
}

// Update submits a partial or full update and clears the whole orders
// snapshot on success.
func (s *Orders) Update(ctx context.Context, id string, in domain.OrderInput) (*domain.Order, error) {
	start := time.Now()
	var updated domain.Order
	if err := s.api.PutJSON(ctx, "/orders/update/"+id, in, &updated); err != nil {
		s.metrics.ObserveRequest(kindOrders, "update", convertToMs(start), false)
		s.logger.Error("updating order failed",
			zap.String("order_id", id),
			zap.Error(err),
		)
		return nil, err
	}
	s.metrics.ObserveRequest(kindOrders, "update", convertToMs(start), true)

	s.store.Invalidate(cache.KindOrders)
	s.logger.Info("order updated",
		zap.String("order_id", id),
	)
	return &updated, nil
}

// UpdateStatus is a convenience wrapper around Update carrying only the
// status field.
func (s *Orders) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	return s.Update(ctx, id, domain.OrderInput{Status: status})
}

func (s *Orders) Delete(ctx context.Context, id string) error {
	start := time.Now()
	if err := s.api.Delete(ctx, "/orders/delete/"+id); err != nil {
		s.metrics.ObserveRequest(kindOrders, "delete", convertToMs(start), false)
		s.logger.Error("deleting order failed",
			zap.String("order_id", id),
			zap.Error(err),
		)
		return err
	}
	s.metrics.ObserveRequest(kindOrders, "delete", convertToMs(start), true)

	s.store.Invalidate(cache.KindOrders)
	s.logger.Info("order deleted",
		zap.String("order_id", id),
	)
	return nil
}

// OrderQuery narrows a Search call. Zero-valued fields are left out of the
// query string.
type OrderQuery struct {
	Status domain.OrderStatus
	Search string
	Page   int
	Limit  int
}

// Search queries the remote service directly; results never enter the cache.
func (s *Orders) Search(ctx context.Context, q OrderQuery) ([]domain.Order, error) {
	v := url.Values{}
	if q.Status != "" {
		v.Set("status", string(q.Status))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	path := "/orders/search"
	if enc := v.Encode(); enc != "" {
		path += "?" + enc
	}

	start := time.Now()
	var orders []domain.Order
	if err := s.api.GetJSON(ctx, path, &orders); err != nil {
		s.metrics.ObserveRequest(kindOrders, "search", convertToMs(start), false)
		s.logger.Error("searching orders failed", zap.Error(err))
		return nil, err
	}
	s.metrics.ObserveRequest(kindOrders, "search", convertToMs(start), true)
	return orders, nil
}
