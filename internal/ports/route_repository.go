package ports

import (
	"context"
	"fulfillment-advisor-service/internal/domain"
)

// Port: a boundary for retrieving the enriched route-cost-risk view.
type RouteRepository interface {
	// Retrieve every enriched route row.
	ListRoutes(ctx context.Context) ([]domain.Route, error)
}
