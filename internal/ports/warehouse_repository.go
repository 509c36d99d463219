package ports

import (
	"context"
	"fulfillment-advisor-service/internal/domain"
)

// Port: a boundary for retrieving warehouse stock positions.
type WarehouseRepository interface {
	// Retrieve every warehouse stock position in catalog order.
	ListWarehouses(ctx context.Context) ([]domain.WarehouseStock, error)
}
