package handlers

import (
	"fulfillment-advisor-service/internal/api/dto"
	"fulfillment-advisor-service/internal/domain"
	"fulfillment-advisor-service/internal/ports"
	"log"
	"net/http"
)

// CatalogHandler exposes the choices available to the order simulator.
type CatalogHandler struct {
	Orders ports.OrderRepository
}

// Options returns the distinct product categories and destinations
// seen in the order history, in first-seen order, plus the fixed
// priority levels.
func (h *CatalogHandler) Options(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	orders, err := h.Orders.ListOrders(r.Context())
	if err != nil {
		log.Printf("list orders failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.CatalogOptionsResponse{
		ProductCategories: distinct(orders, func(o domain.Order) string { return o.ProductCategory }),
		Destinations:      distinct(orders, func(o domain.Order) string { return o.Destination }),
		Priorities:        domain.PriorityLevels,
	}

	writeJSON(w, r, http.StatusOK, res)
}

func distinct(orders []domain.Order, field func(domain.Order) string) []string {
	seen := make(map[string]struct{}, len(orders))
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		v := field(o)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
