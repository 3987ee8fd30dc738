package stub

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"oms-client/internal/cache"
	"oms-client/internal/domain"
	"oms-client/internal/observability"
	"oms-client/internal/service"
	"oms-client/internal/transport"
)

// newTestServices wires the real client and services against an httptest
// instance of the stub, so the full round trip is exercised.
func newTestServices(t *testing.T) (*service.Services, *cache.Store) {
	t.Helper()

	logger := zaptest.NewLogger(t)
	srv := httptest.NewServer(NewServer(logger).Router())
	t.Cleanup(srv.Close)

	client := transport.New(srv.URL, 5*time.Second, logger)
	store := cache.NewStore(cache.DefaultTTL)
	return service.New(client, store, logger, observability.NewNoop()), store
}

func TestStubOrderRoundTrip(t *testing.T) {
	svc, store := newTestServices(t)
	ctx := context.Background()

	seeded, err := svc.Orders.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, seeded)
	assert.True(t, store.Orders.Valid())

	created, err := svc.Orders.Create(ctx, domain.OrderInput{
		CustomerName: "Integration Customer",
		MobileNum:    "01898765432",
		Address:      "99 Roundtrip Road, Test Town",
		Items: []domain.OrderItem{
			{Product: "prod-000001", ProductName: "Oak Chair", Quantity: 3, Price: 100},
		},
	})
	require.NoError(t, err)
	assert.InDelta(t, 300.0, created.TotalPrice, 1e-9)
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.False(t, store.Orders.Valid(), "creation must drop the snapshot")

	updated, err := svc.Orders.UpdateStatus(ctx, created.ID, domain.StatusShipped)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusShipped, updated.Status)

	got, err := svc.Orders.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusShipped, got.Status)

	require.NoError(t, svc.Orders.Delete(ctx, created.ID))
	_, err = svc.Orders.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStubOrderSearch(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	hits, err := svc.Orders.Search(ctx, service.OrderQuery{Status: domain.StatusPending})
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	for _, o := range hits {
		assert.Equal(t, domain.StatusPending, o.Status)
	}

	none, err := svc.Orders.Search(ctx, service.OrderQuery{Search: "nobody-by-that-name"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStubProductMultipartRoundTrip(t *testing.T) {
	svc, store := newTestServices(t)
	ctx := context.Background()

	created, err := svc.Products.Create(ctx, domain.ProductInput{
		Name:   "Walnut Desk",
		Width:  140,
		Height: 76,
		Weight: 31.5,
		Image: &domain.ImageAttachment{
			Filename:    "walnut-desk.png",
			ContentType: "image/png",
			Data:        []byte{0x89, 0x50, 0x4e, 0x47},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Walnut Desk", created.Name)
	require.Len(t, created.Images, 1)
	assert.Equal(t, "uploads/walnut-desk.png", created.Images[0])

	updated, err := svc.Products.Update(ctx, created.ID, domain.ProductInput{Name: "Walnut Desk XL"})
	require.NoError(t, err)
	assert.Equal(t, "Walnut Desk XL", updated.Name)
	assert.InDelta(t, 140.0, updated.Width, 1e-9, "unset form fields keep old values")

	require.NoError(t, svc.Products.Delete(ctx, created.ID))
	assert.False(t, store.Products.Valid())
}

func TestStubSalesStats(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	_, err := svc.Sales.Create(ctx, domain.SaleInput{
		Product:     "prod-000001",
		ProductName: "Oak Chair",
		Quantity:    4,
		Price:       25,
	})
	require.NoError(t, err)

	stats, err := svc.Sales.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalSales)
	assert.InDelta(t, 600.0, stats.TotalRevenue, 1e-9)
}
