package stub

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (s *Server) Router() http.Handler {
	router := chi.NewRouter()

	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
	)

	router.Get("/healtz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Get("/orders", s.listOrders)
	router.Get("/orders/search", s.searchOrders)
	router.Get("/orders/{id}", s.getOrder)
	router.Post("/orders/add", s.addOrder)
	router.Put("/orders/update/{id}", s.updateOrder)
	router.Delete("/orders/delete/{id}", s.deleteOrder)

	router.Get("/products", s.listProducts)
	router.Post("/products/add", s.addProduct)
	router.Put("/products/update/{id}", s.updateProduct)
	router.Delete("/products/delete/{id}", s.deleteProduct)

	router.Get("/sales", s.listSales)
	router.Get("/sales/stats", s.salesStats)
	router.Get("/sales/{id}", s.getSale)
	router.Post("/sales/add", s.addSale)
	router.Put("/sales/update/{id}", s.updateSale)
	router.Delete("/sales/delete/{id}", s.deleteSale)

	return router
}
