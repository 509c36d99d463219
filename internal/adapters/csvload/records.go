package csvload

import (
	"fmt"
	"fulfillment-advisor-service/internal/domain"
	"path/filepath"
	"strconv"
	"strings"
)

// Every catalog the engine consumes, parsed from one data directory.
type Datasets struct {
	Orders     []domain.Order
	Warehouses []domain.WarehouseStock
	Routes     []domain.RouteRecord
	Fleet      []domain.Vehicle
	Deliveries []domain.DeliveryRecord
	Costs      []domain.CostRecord
}

// Coerce a cell to a non-negative float. Unparseable or negative
// values become 0 rather than failing the load.
func coerceFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func coerceInt(s string) int {
	return int(coerceFloat(s))
}

// ParseOrders converts a cleaned table into Order records.
func ParseOrders(t *Table) ([]domain.Order, error) {
	if err := t.Require("order_id", "product_category", "destination"); err != nil {
		return nil, fmt.Errorf("parse orders: %w", err)
	}

	orders := make([]domain.Order, 0, len(t.Rows))
	for _, row := range t.Rows {
		orders = append(orders, domain.Order{
			OrderID:         t.Field(row, "order_id"),
			ProductCategory: t.Field(row, "product_category"),
			Destination:     t.Field(row, "destination"),
			Priority:        t.Field(row, "priority"),
		})
	}
	return orders, nil
}

// ParseWarehouses converts a cleaned table into WarehouseStock records.
func ParseWarehouses(t *Table) ([]domain.WarehouseStock, error) {
	if err := t.Require("location", "product_category", "current_stock_units", "reorder_level"); err != nil {
		return nil, fmt.Errorf("parse warehouses: %w", err)
	}

	warehouses := make([]domain.WarehouseStock, 0, len(t.Rows))
	for _, row := range t.Rows {
		warehouses = append(warehouses, domain.WarehouseStock{
			Location:          t.Field(row, "location"),
			ProductCategory:   t.Field(row, "product_category"),
			CurrentStockUnits: coerceInt(t.Field(row, "current_stock_units")),
			ReorderLevel:      coerceInt(t.Field(row, "reorder_level")),
		})
	}
	return warehouses, nil
}

// ParseRoutes converts a cleaned table into raw RouteRecords.
// Traffic delay is coerced to numeric here (non-numeric becomes 0);
// the weather label is kept raw for the enrichment stage to map.
func ParseRoutes(t *Table) ([]domain.RouteRecord, error) {
	if err := t.Require("order_id", "route", "distance_km"); err != nil {
		return nil, fmt.Errorf("parse routes: %w", err)
	}

	routes := make([]domain.RouteRecord, 0, len(t.Rows))
	for _, row := range t.Rows {
		routes = append(routes, domain.RouteRecord{
			OrderID:             t.Field(row, "order_id"),
			Label:               t.Field(row, "route"),
			DistanceKM:          coerceFloat(t.Field(row, "distance_km")),
			TrafficDelayMinutes: coerceFloat(t.Field(row, "traffic_delay_minutes")),
			WeatherLabel:        t.Field(row, "weather_impact"),
		})
	}
	return routes, nil
}

// ParseVehicles converts a cleaned table into Vehicle records.
func ParseVehicles(t *Table) ([]domain.Vehicle, error) {
	if err := t.Require("vehicle_type", "fuel_efficiency_km_per_l", "co2_emissions_kg_per_km"); err != nil {
		return nil, fmt.Errorf("parse vehicles: %w", err)
	}

	fleet := make([]domain.Vehicle, 0, len(t.Rows))
	for _, row := range t.Rows {
		fleet = append(fleet, domain.Vehicle{
			Type:                 t.Field(row, "vehicle_type"),
			FuelEfficiencyKMPerL: coerceFloat(t.Field(row, "fuel_efficiency_km_per_l")),
			CO2KgPerKM:           coerceFloat(t.Field(row, "co2_emissions_kg_per_km")),
		})
	}
	return fleet, nil
}

// ParseDeliveries converts a cleaned table into DeliveryRecords.
func ParseDeliveries(t *Table) ([]domain.DeliveryRecord, error) {
	if err := t.Require("order_id", "delivery_status"); err != nil {
		return nil, fmt.Errorf("parse deliveries: %w", err)
	}

	deliveries := make([]domain.DeliveryRecord, 0, len(t.Rows))
	for _, row := range t.Rows {
		deliveries = append(deliveries, domain.DeliveryRecord{
			OrderID:      t.Field(row, "order_id"),
			Status:       t.Field(row, "delivery_status"),
			PromisedDays: coerceFloat(t.Field(row, "promised_delivery_days")),
			ActualDays:   coerceFloat(t.Field(row, "actual_delivery_days")),
			Cost:         coerceFloat(t.Field(row, "delivery_cost_inr")),
		})
	}
	return deliveries, nil
}

// Currency suffix shared by every cost-component column.
const costColumnSuffix = "_inr"

// ParseCosts converts a cleaned cost-breakdown table into CostRecords.
// The total is the sum of every currency-suffixed column; the order
// identifier column is excluded even if it carries the suffix.
func ParseCosts(t *Table) ([]domain.CostRecord, error) {
	if err := t.Require("order_id"); err != nil {
		return nil, fmt.Errorf("parse costs: %w", err)
	}

	componentCols := make([]string, 0, len(t.Columns))
	for _, col := range t.Columns {
		if strings.HasSuffix(col, costColumnSuffix) && col != "order_id" {
			componentCols = append(componentCols, col)
		}
	}

	costs := make([]domain.CostRecord, 0, len(t.Rows))
	for _, row := range t.Rows {
		var total float64
		for _, col := range componentCols {
			total += coerceFloat(t.Field(row, col))
		}
		costs = append(costs, domain.CostRecord{
			OrderID:   t.Field(row, "order_id"),
			TotalCost: total,
		})
	}
	return costs, nil
}

// LoadDir reads and parses every catalog CSV from dir.
// Any missing or malformed file is a fatal load error for the caller;
// no partial Datasets value is returned.
func LoadDir(dir string) (*Datasets, error) {
	ds := &Datasets{}

	tables := make(map[string]*Table, 6)
	for _, name := range []string{
		"orders.csv",
		"warehouse_inventory.csv",
		"routes_distance.csv",
		"vehicle_fleet.csv",
		"delivery_performance.csv",
		"cost_breakdown.csv",
	} {
		t, err := ReadTableFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("load datasets: %w", err)
		}
		tables[name] = t
	}

	var err error
	if ds.Orders, err = ParseOrders(tables["orders.csv"]); err != nil {
		return nil, fmt.Errorf("load datasets: %w", err)
	}
	if ds.Warehouses, err = ParseWarehouses(tables["warehouse_inventory.csv"]); err != nil {
		return nil, fmt.Errorf("load datasets: %w", err)
	}
	if ds.Routes, err = ParseRoutes(tables["routes_distance.csv"]); err != nil {
		return nil, fmt.Errorf("load datasets: %w", err)
	}
	if ds.Fleet, err = ParseVehicles(tables["vehicle_fleet.csv"]); err != nil {
		return nil, fmt.Errorf("load datasets: %w", err)
	}
	if ds.Deliveries, err = ParseDeliveries(tables["delivery_performance.csv"]); err != nil {
		return nil, fmt.Errorf("load datasets: %w", err)
	}
	if ds.Costs, err = ParseCosts(tables["cost_breakdown.csv"]); err != nil {
		return nil, fmt.Errorf("load datasets: %w", err)
	}

	return ds, nil
}
