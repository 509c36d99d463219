package api

import (
	"fulfillment-advisor-service/internal/api/handlers"
	"fulfillment-advisor-service/internal/platform/metrics"
	"fulfillment-advisor-service/internal/ports"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Catalogs groups the repository ports the handlers read from.
type Catalogs struct {
	Orders     ports.OrderRepository
	Warehouses ports.WarehouseRepository
	Fleet      ports.FleetRepository
	Routes     ports.RouteRepository
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(cats Catalogs) http.Handler {
	metrics.RegisterDefault()

	mux := http.NewServeMux()

	catalogHandler := &handlers.CatalogHandler{Orders: cats.Orders}
	recommendHandler := &handlers.RecommendHandler{
		Warehouses: cats.Warehouses,
		Fleet:      cats.Fleet,
		Routes:     cats.Routes,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/catalog/options", catalogHandler.Options)
	mux.HandleFunc("/recommendations", recommendHandler.Recommend)
	mux.HandleFunc("/recommendations/export", recommendHandler.Export)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return loggingMiddleware(mux)
}
