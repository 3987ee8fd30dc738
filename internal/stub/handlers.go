package stub

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"oms-client/internal/domain"
)

const maxUploadBytes = 8 << 20

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.zlogger.Error("encoding response failed", zap.Error(err))
	}
}

func (s *Server) orderList() []domain.Order {
	out := make([]domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Server) listOrders(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	out := s.orderList()
	s.mu.Unlock()
	s.writeJSON(w, out)
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	o, ok := s.orders[id]
	s.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	s.writeJSON(w, o)
}

func (s *Server) addOrder(w http.ResponseWriter, r *http.Request) {
	var in domain.OrderInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if len(in.Items) == 0 {
		http.Error(w, "order has no items", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	o := domain.Order{
		ID:           s.nextID("ord"),
		CustomerName: in.CustomerName,
		MobileNum:    in.MobileNum,
		Address:      in.Address,
		Email:        in.Email,
		Items:        in.Items,
		TotalPrice:   in.Total(),
		Status:       domain.StatusPending,
		Notes:        in.Notes,
		CreatedAt:    time.Now().UTC(),
	}
	if in.Status != "" {
		o.Status = in.Status
	}
	s.orders[o.ID] = o
	s.mu.Unlock()

	s.writeJSON(w, o)
}

func (s *Server) updateOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var in domain.OrderInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	o, ok := s.orders[id]
	if !ok {
		s.mu.Unlock()
		http.NotFound(w, r)
		return
	}
	if in.CustomerName != "" {
		o.CustomerName = in.CustomerName
	}
	if in.MobileNum != "" {
		o.MobileNum = in.MobileNum
	}
	if in.Address != "" {
		o.Address = in.Address
	}
	if in.Email != "" {
		o.Email = in.Email
	}
	if in.Notes != "" {
		o.Notes = in.Notes
	}
	if in.Status != "" {
		if !in.Status.Known() {
			s.mu.Unlock()
			http.Error(w, "unknown status", http.StatusBadRequest)
			return
		}
		o.Status = in.Status
	}
	if len(in.Items) > 0 {
		o.Items = in.Items
		o.TotalPrice = in.Total()
	}
	s.orders[id] = o
	s.mu.Unlock()

	s.writeJSON(w, o)
}

func (s *Server) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	_, ok := s.orders[id]
	delete(s.orders, id)
	s.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) searchOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	status := q.Get("status")
	search := strings.ToLower(q.Get("search"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	s.mu.Lock()
	all := s.orderList()
	s.mu.Unlock()

	out := make([]domain.Order, 0, len(all))
	for _, o := range all {
		if status != "" && string(o.Status) != status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(o.CustomerName), search) &&
			!strings.Contains(strings.ToLower(o.MobileNum), search) {
			continue
		}
		out = append(out, o)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	s.writeJSON(w, out)
}

func (s *Server) listProducts(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	s.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	s.writeJSON(w, out)
}

// parseProductForm reads the multipart product payload. The binary part is
// not stored; only its filename survives as an uploads/ path.
func (s *Server) parseProductForm(r *http.Request) (domain.Product, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return domain.Product{}, err
	}
	width, _ := strconv.ParseFloat(r.FormValue("width"), 64)
	height, _ := strconv.ParseFloat(r.FormValue("height"), 64)
	weight, _ := strconv.ParseFloat(r.FormValue("weight"), 64)
	p := domain.Product{
		Name:   r.FormValue("productName"),
		Width:  width,
		Height: height,
		Weight: weight,
	}
	if _, hdr, err := r.FormFile("images"); err == nil {
		p.Images = []string{"uploads/" + hdr.Filename}
	}
	return p, nil
}

func (s *Server) addProduct(w http.ResponseWriter, r *http.Request) {
	p, err := s.parseProductForm(r)
	if err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	if p.Name == "" {
		http.Error(w, "missing productName", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	p.ID = s.nextID("prod")
	p.CreatedAt = time.Now().UTC()
	s.products[p.ID] = p
	s.mu.Unlock()

	s.writeJSON(w, p)
}

func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	in, err := s.parseProductForm(r)
	if err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	p, ok := s.products[id]
	if !ok {
		s.mu.Unlock()
		http.NotFound(w, r)
		return
	}
	if in.Name != "" {
		p.Name = in.Name
	}
	if in.Width != 0 {
		p.Width = in.Width
	}
	if in.Height != 0 {
		p.Height = in.Height
	}
	if in.Weight != 0 {
		p.Weight = in.Weight
	}
	if len(in.Images) > 0 {
		p.Images = in.Images
	}
	s.products[id] = p
	s.mu.Unlock()

	s.writeJSON(w, p)
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	_, ok := s.products[id]
	delete(s.products, id)
	s.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) listSales(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	out := make([]domain.Sale, 0, len(s.sales))
	for _, sl := range s.sales {
		out = append(out, sl)
	}
	s.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	s.writeJSON(w, out)
}

func (s *Server) getSale(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	sl, ok := s.sales[id]
	s.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	s.writeJSON(w, sl)
}

func (s *Server) addSale(w http.ResponseWriter, r *http.Request) {
	var in domain.SaleInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	sl := domain.Sale{
		ID:          s.nextID("sale"),
		Product:     in.Product,
		ProductName: in.ProductName,
		Quantity:    in.Quantity,
		Price:       in.Price,
		TotalPrice:  in.TotalPrice,
		CreatedAt:   time.Now().UTC(),
	}
	if sl.TotalPrice == 0 {
		sl.TotalPrice = float64(sl.Quantity) * sl.Price
	}
	s.sales[sl.ID] = sl
	s.mu.Unlock()

	s.writeJSON(w, sl)
}

func (s *Server) updateSale(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var in domain.SaleInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	sl, ok := s.sales[id]
	if !ok {
		s.mu.Unlock()
		http.NotFound(w, r)
		return
	}
	if in.Product != "" {
		sl.Product = in.Product
	}
	if in.ProductName != "" {
		sl.ProductName = in.ProductName
	}
	if in.Quantity != 0 {
		sl.Quantity = in.Quantity
	}
	if in.Price != 0 {
		sl.Price = in.Price
	}
	if in.TotalPrice != 0 {
		sl.TotalPrice = in.TotalPrice
	} else if in.Quantity != 0 || in.Price != 0 {
		sl.TotalPrice = float64(sl.Quantity) * sl.Price
	}
	s.sales[id] = sl
	s.mu.Unlock()

	s.writeJSON(w, sl)
}

func (s *Server) deleteSale(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	_, ok := s.sales[id]
	delete(s.sales, id)
	s.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) salesStats(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	stats := domain.SalesStats{TotalSales: len(s.sales)}
	for _, sl := range s.sales {
		stats.TotalRevenue += sl.TotalPrice
	}
	s.mu.Unlock()
	s.writeJSON(w, stats)
}
