package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"fulfillment-advisor-service/internal/domain"
)

// SQLite-backed implementation of the catalog repository ports.
// One store serves orders, warehouses, vehicles, and enriched routes.
type SqliteCatalogStore struct{ DB *sql.DB }

func NewSqliteCatalogStore(db *sql.DB) *SqliteCatalogStore {
	return &SqliteCatalogStore{DB: db}
}

// Return all historical orders in insertion order.
func (s *SqliteCatalogStore) ListOrders(ctx context.Context) ([]domain.Order, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite catalog store: DB is nil")
	}

	query := `
	SELECT
		order_id,
		product_category,
		destination,
		priority
	FROM orders
	ORDER BY rowid;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list orders: query orders table: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0, 64)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.OrderID, &o.ProductCategory, &o.Destination, &o.Priority); err != nil {
			return nil, fmt.Errorf("list orders: scan row: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: row iteration: %w", err)
	}

	return orders, nil
}

// Return all warehouse stock positions in insertion order.
func (s *SqliteCatalogStore) ListWarehouses(ctx context.Context) ([]domain.WarehouseStock, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite catalog store: DB is nil")
	}

	query := `
	SELECT
		location,
		product_category,
		current_stock_units,
		reorder_level
	FROM warehouses
	ORDER BY rowid;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: query warehouses table: %w", err)
	}
	defer rows.Close()

	warehouses := make([]domain.WarehouseStock, 0, 16)
	for rows.Next() {
		var w domain.WarehouseStock
		if err := rows.Scan(&w.Location, &w.ProductCategory, &w.CurrentStockUnits, &w.ReorderLevel); err != nil {
			return nil, fmt.Errorf("list warehouses: scan row: %w", err)
		}
		warehouses = append(warehouses, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list warehouses: row iteration: %w", err)
	}

	return warehouses, nil
}

// Return the full vehicle fleet in insertion order.
func (s *SqliteCatalogStore) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite catalog store: DB is nil")
	}

	query := `
	SELECT
		vehicle_type,
		fuel_efficiency_km_per_l,
		co2_emissions_kg_per_km
	FROM vehicles
	ORDER BY rowid;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: query vehicles table: %w", err)
	}
	defer rows.Close()

	fleet := make([]domain.Vehicle, 0, 8)
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.Type, &v.FuelEfficiencyKMPerL, &v.CO2KgPerKM); err != nil {
			return nil, fmt.Errorf("list vehicles: scan row: %w", err)
		}
		fleet = append(fleet, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list vehicles: row iteration: %w", err)
	}

	return fleet, nil
}

// Return every enriched route row in insertion order.
func (s *SqliteCatalogStore) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite catalog store: DB is nil")
	}

	query := `
	SELECT
		order_id,
		route,
		distance_km,
		traffic_delay_minutes,
		weather_impact,
		delivery_status,
		promised_delivery_days,
		actual_delivery_days,
		delivery_cost,
		total_cost
	FROM routes
	ORDER BY rowid;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list routes: query routes table: %w", err)
	}
	defer rows.Close()

	routes := make([]domain.Route, 0, 128)
	for rows.Next() {
		var r domain.Route
		if err := rows.Scan(
			&r.OrderID, &r.Label, &r.DistanceKM, &r.TrafficDelayMinutes, &r.WeatherImpact,
			&r.DeliveryStatus, &r.PromisedDeliveryDays, &r.ActualDeliveryDays, &r.DeliveryCost, &r.TotalCost,
		); err != nil {
			return nil, fmt.Errorf("list routes: scan row: %w", err)
		}
		routes = append(routes, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list routes: row iteration: %w", err)
	}

	return routes, nil
}
