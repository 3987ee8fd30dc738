// Package report computes the dashboard aggregates locally, over whatever
// records the caller already fetched. It never touches the network: callers
// hand it cached collections and it folds them.
package report

import (
	"sort"

	"oms-client/internal/domain"
)

// OrderSummary holds the headline numbers shown on the dashboard.
type OrderSummary struct {
	TotalOrders       int
	Pending           int
	Shipped           int
	Delivered         int
	TotalRevenue      float64
	AverageOrderValue float64
}

// ProductRevenue ranks a product by the revenue its sales generated.
type ProductRevenue struct {
	Product  string
	Name     string
	Quantity int
	Revenue  float64
}

// SummarizeOrders folds an order collection into the dashboard counters.
// Revenue counts every order regardless of status, matching what the remote
// reports in its own stats endpoint.
func SummarizeOrders(orders []domain.Order) OrderSummary {
	s := OrderSummary{TotalOrders: len(orders)}
	for _, o := range orders {
		switch o.Status {
		case domain.StatusPending:
			s.Pending++
		case domain.StatusShipped:
			s.Shipped++
		case domain.StatusDelivered:
			s.Delivered++
		}
		s.TotalRevenue += o.TotalPrice
	}
	if s.TotalOrders > 0 {
		s.AverageOrderValue = s.TotalRevenue / float64(s.TotalOrders)
	}
	return s
}

// TopProducts returns the best-selling products by revenue, at most limit
// entries. Ties are broken by product id so the order is stable.
func TopProducts(sales []domain.Sale, limit int) []ProductRevenue {
	byProduct := make(map[string]*ProductRevenue)
	for _, sl := range sales {
		pr, ok := byProduct[sl.Product]
		if !ok {
			pr = &ProductRevenue{Product: sl.Product, Name: sl.ProductName}
			byProduct[sl.Product] = pr
		}
		pr.Quantity += sl.Quantity
		pr.Revenue += sl.TotalPrice
	}

	ranked := make([]ProductRevenue, 0, len(byProduct))
	for _, pr := range byProduct {
		ranked = append(ranked, *pr)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Revenue != ranked[j].Revenue {
			return ranked[i].Revenue > ranked[j].Revenue
		}
		return ranked[i].Product < ranked[j].Product
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
