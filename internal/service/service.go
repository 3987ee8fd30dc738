package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"oms-client/internal/cache"
	"oms-client/internal/observability"
	"oms-client/internal/transport"
)

//go:generate mockgen -source internal/service/service.go -destination=internal/service/api_mock_test.go -package=service

// api is the slice of the transport client the services consume.
type api interface {
	GetJSON(ctx context.Context, path string, out any) error
	PostJSON(ctx context.Context, path string, in, out any) error
	PutJSON(ctx context.Context, path string, in, out any) error
	PostForm(ctx context.Context, path string, form *transport.Form, out any) error
	PutForm(ctx context.Context, path string, form *transport.Form, out any) error
	Delete(ctx context.Context, path string) error
}

// Services bundles the three per-kind access layers over one shared store.
type Services struct {
	Orders   *Orders
	Products *Products
	Sales    *Sales
	Store    *cache.Store
}

func New(client api, store *cache.Store, logger *zap.Logger, metrics observability.Metrics) *Services {
	if metrics == nil {
		metrics = observability.NewNoop()
	}
	return &Services{
		Orders:   NewOrders(client, store, logger, metrics),
		Products: NewProducts(client, store, logger, metrics),
		Sales:    NewSales(client, store, logger, metrics),
		Store:    store,
	}
}

func convertToMs(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000.0
}
