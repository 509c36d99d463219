package repositories

import (
	"context"
	"fulfillment-advisor-service/internal/domain"
)

// In-memory implementation of the catalog repository ports, used by
// tests and local experiments. Slices are returned as-is; callers must
// not mutate them.
type MemoryCatalogStore struct {
	Orders     []domain.Order
	Warehouses []domain.WarehouseStock
	Fleet      []domain.Vehicle
	Routes     []domain.Route
}

func (s *MemoryCatalogStore) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.Orders, nil
}

func (s *MemoryCatalogStore) ListWarehouses(ctx context.Context) ([]domain.WarehouseStock, error) {
	return s.Warehouses, nil
}

func (s *MemoryCatalogStore) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return s.Fleet, nil
}

func (s *MemoryCatalogStore) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	return s.Routes, nil
}
