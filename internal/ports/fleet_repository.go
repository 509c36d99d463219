package ports

import (
	"context"
	"fulfillment-advisor-service/internal/domain"
)

// Port: a boundary for retrieving the vehicle fleet.
type FleetRepository interface {
	// Retrieve every vehicle class in catalog order.
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
}
