package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"oms-client/internal/domain"
)

func TestSummarizeOrders(t *testing.T) {
	orders := []domain.Order{
		{Status: domain.StatusPending, TotalPrice: 100},
		{Status: domain.StatusPending, TotalPrice: 50},
		{Status: domain.StatusShipped, TotalPrice: 200},
		{Status: domain.StatusDelivered, TotalPrice: 30},
		{Status: domain.StatusCancelled, TotalPrice: 20},
	}

	s := SummarizeOrders(orders)

	assert.Equal(t, 5, s.TotalOrders)
	assert.Equal(t, 2, s.Pending)
	assert.Equal(t, 1, s.Shipped)
	assert.Equal(t, 1, s.Delivered)
	assert.InDelta(t, 400.0, s.TotalRevenue, 1e-9)
	assert.InDelta(t, 80.0, s.AverageOrderValue, 1e-9)
}

func TestSummarizeOrdersEmpty(t *testing.T) {
	s := SummarizeOrders(nil)
	assert.Equal(t, 0, s.TotalOrders)
	assert.Zero(t, s.AverageOrderValue)
}

func TestTopProducts(t *testing.T) {
	sales := []domain.Sale{
		{Product: "p1", ProductName: "Chair", Quantity: 2, TotalPrice: 200},
		{Product: "p2", ProductName: "Table", Quantity: 1, TotalPrice: 600},
		{Product: "p1", ProductName: "Chair", Quantity: 3, TotalPrice: 300},
		{Product: "p3", ProductName: "Lamp", Quantity: 10, TotalPrice: 100},
	}

	top := TopProducts(sales, 2)

	assert.Len(t, top, 2)
	assert.Equal(t, "p2", top[0].Product)
	assert.InDelta(t, 600.0, top[0].Revenue, 1e-9)
	assert.Equal(t, "p1", top[1].Product)
	assert.Equal(t, 5, top[1].Quantity)
	assert.InDelta(t, 500.0, top[1].Revenue, 1e-9)
}

func TestTopProductsStableTieBreak(t *testing.T) {
	sales := []domain.Sale{
		{Product: "b", TotalPrice: 100},
		{Product: "a", TotalPrice: 100},
	}

	top := TopProducts(sales, 0)

	assert.Equal(t, "a", top[0].Product)
	assert.Equal(t, "b", top[1].Product)
}
