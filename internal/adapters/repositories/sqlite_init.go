package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"fulfillment-advisor-service/internal/domain"
)

// Initialize the SQLite catalog schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createOrdersQuery := `
	CREATE TABLE IF NOT EXISTS orders (
		order_id TEXT PRIMARY KEY,
		product_category TEXT NOT NULL,
		destination TEXT NOT NULL,
		priority TEXT NOT NULL
	);
	`

	createWarehousesQuery := `
	CREATE TABLE IF NOT EXISTS warehouses (
		location TEXT NOT NULL,
		product_category TEXT NOT NULL,
		current_stock_units INTEGER NOT NULL,
		reorder_level INTEGER NOT NULL,
		PRIMARY KEY (location, product_category)
	);
	`

	createVehiclesQuery := `
	CREATE TABLE IF NOT EXISTS vehicles (
		vehicle_type TEXT PRIMARY KEY,
		fuel_efficiency_km_per_l REAL NOT NULL,
		co2_emissions_kg_per_km REAL NOT NULL
	);
	`

	createRoutesQuery := `
	CREATE TABLE IF NOT EXISTS routes (
		order_id TEXT PRIMARY KEY,
		route TEXT NOT NULL,
		distance_km REAL NOT NULL,
		traffic_delay_minutes REAL NOT NULL,
		weather_impact REAL NOT NULL,
		delivery_status TEXT NOT NULL,
		promised_delivery_days REAL NOT NULL,
		actual_delivery_days REAL NOT NULL,
		delivery_cost REAL NOT NULL,
		total_cost REAL NOT NULL
	);
	`

	createRouteIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_routes_route ON routes(route);
	`

	statements := []string{
		createOrdersQuery,
		createWarehousesQuery,
		createVehiclesQuery,
		createRoutesQuery,
		createRouteIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Catalogs is everything the seed step writes: the four input catalogs
// with routes already enriched by the join stage.
type Catalogs struct {
	Orders     []domain.Order
	Warehouses []domain.WarehouseStock
	Fleet      []domain.Vehicle
	Routes     []domain.Route
}

// Seed writes the loaded catalogs into the SQLite store in one
// transaction. Existing rows are replaced, so re-seeding on restart is
// idempotent.
func Seed(db *sql.DB, cats Catalogs) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed catalogs: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	orderStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO orders (order_id, product_category, destination, priority)
	VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed catalogs: prepare orders insert: %w", err)
	}
	defer orderStmt.Close()

	for _, o := range cats.Orders {
		if _, err := orderStmt.Exec(o.OrderID, o.ProductCategory, o.Destination, o.Priority); err != nil {
			return fmt.Errorf("seed catalogs: insert order_id=%s: %w", o.OrderID, err)
		}
	}

	warehouseStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO warehouses (location, product_category, current_stock_units, reorder_level)
	VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed catalogs: prepare warehouses insert: %w", err)
	}
	defer warehouseStmt.Close()

	for _, w := range cats.Warehouses {
		if _, err := warehouseStmt.Exec(w.Location, w.ProductCategory, w.CurrentStockUnits, w.ReorderLevel); err != nil {
			return fmt.Errorf("seed catalogs: insert warehouse location=%s: %w", w.Location, err)
		}
	}

	vehicleStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO vehicles (vehicle_type, fuel_efficiency_km_per_l, co2_emissions_kg_per_km)
	VALUES (?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed catalogs: prepare vehicles insert: %w", err)
	}
	defer vehicleStmt.Close()

	for _, v := range cats.Fleet {
		if _, err := vehicleStmt.Exec(v.Type, v.FuelEfficiencyKMPerL, v.CO2KgPerKM); err != nil {
			return fmt.Errorf("seed catalogs: insert vehicle_type=%s: %w", v.Type, err)
		}
	}

	routeStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO routes (
		order_id, route, distance_km, traffic_delay_minutes, weather_impact,
		delivery_status, promised_delivery_days, actual_delivery_days, delivery_cost, total_cost
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed catalogs: prepare routes insert: %w", err)
	}
	defer routeStmt.Close()

	for _, r := range cats.Routes {
		if _, err := routeStmt.Exec(
			r.OrderID, r.Label, r.DistanceKM, r.TrafficDelayMinutes, r.WeatherImpact,
			r.DeliveryStatus, r.PromisedDeliveryDays, r.ActualDeliveryDays, r.DeliveryCost, r.TotalCost,
		); err != nil {
			return fmt.Errorf("seed catalogs: insert route order_id=%s: %w", r.OrderID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed catalogs: commit tx: %w", err)
	}

	return nil
}
