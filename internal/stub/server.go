// Package stub is an in-memory stand-in for the remote data service, used by
// the CLI during development and by integration-style tests. It speaks the
// same routes and payloads as the real backend but keeps everything in maps.
package stub

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"oms-client/internal/domain"
)

type Server struct {
	mu       sync.Mutex
	orders   map[string]domain.Order
	products map[string]domain.Product
	sales    map[string]domain.Sale
	seq      int
	zlogger  *zap.Logger
}

func NewServer(logger *zap.Logger) *Server {
	s := &Server{
		orders:   make(map[string]domain.Order),
		products: make(map[string]domain.Product),
		sales:    make(map[string]domain.Sale),
		zlogger:  logger,
	}
	s.seed()
	return s
}

func (s *Server) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%06d", prefix, s.seq)
}

// seed loads a small fixture set so a freshly started stub has something to
// list straight away.
func (s *Server) seed() {
	now := time.Now().UTC()

	p1 := domain.Product{ID: s.nextID("prod"), Name: "Oak Chair", Width: 45, Height: 90, Weight: 7.5, Images: []string{"uploads/oak-chair.png"}, CreatedAt: now}
	p2 := domain.Product{ID: s.nextID("prod"), Name: "Pine Table", Width: 120, Height: 75, Weight: 22, Images: []string{"uploads/pine-table.png"}, CreatedAt: now}
	s.products[p1.ID] = p1
	s.products[p2.ID] = p2

	o := domain.Order{
		ID:           s.nextID("ord"),
		CustomerName: "Seed Customer",
		MobileNum:    "01712345678",
		Address:      "12 Fixture Street, Dev City",
		Items: []domain.OrderItem{
			{Product: p1.ID, ProductName: p1.Name, Quantity: 2, Price: 120},
		},
		TotalPrice: 240,
		Status:     domain.StatusPending,
		CreatedAt:  now,
	}
	s.orders[o.ID] = o

	sl := domain.Sale{
		ID:          s.nextID("sale"),
		Product:     p2.ID,
		ProductName: p2.Name,
		Quantity:    1,
		Price:       500,
		TotalPrice:  500,
		CreatedAt:   now,
	}
	s.sales[sl.ID] = sl
}
