package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"oms-client/internal/cache"
	"oms-client/internal/domain"
	"oms-client/internal/observability"
)

func TestWarmPrefetchesAllKinds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewMockapi(ctrl)
	store := cache.NewStore(time.Minute)
	svcs := New(api, store, zap.NewNop(), observability.NewNoop())
	ctx := context.Background()

	api.EXPECT().
		GetJSON(ctx, "/orders", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, out any) error {
			*(out.(*[]domain.Order)) = []domain.Order{{ID: "o1"}}
			return nil
		})
	api.EXPECT().
		GetJSON(ctx, "/products", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, out any) error {
			*(out.(*[]domain.Product)) = []domain.Product{{ID: "p1"}}
			return nil
		})
	api.EXPECT().
		GetJSON(ctx, "/sales", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, out any) error {
			*(out.(*[]domain.Sale)) = []domain.Sale{{ID: "s1"}}
			return nil
		})

	svcs.Warm(ctx)

	require.True(t, store.Orders.Valid())
	require.True(t, store.Products.Valid())
	require.True(t, store.Sales.Valid())
}

func TestWarmToleratesFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewMockapi(ctrl)
	store := cache.NewStore(time.Minute)
	svcs := New(api, store, zap.NewNop(), observability.NewNoop())
	ctx := context.Background()

	api.EXPECT().GetJSON(ctx, "/orders", gomock.Any()).Return(errTransport)
	api.EXPECT().
		GetJSON(ctx, "/products", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, out any) error {
			*(out.(*[]domain.Product)) = []domain.Product{{ID: "p1"}}
			return nil
		})
	api.EXPECT().GetJSON(ctx, "/sales", gomock.Any()).Return(errTransport)

	svcs.Warm(ctx)

	require.False(t, store.Orders.Valid())
	require.True(t, store.Products.Valid())
	require.False(t, store.Sales.Valid())
}
