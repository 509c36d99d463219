package ports

import (
	"context"
	"fulfillment-advisor-service/internal/domain"
)

// Port: a boundary for retrieving historical orders.
type OrderRepository interface {
	// Retrieve every historical order in catalog order.
	ListOrders(ctx context.Context) ([]domain.Order, error)
}
