package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Postgres export used by cmd/dbtool to publish the enriched catalogs
// for offline analytics. The server never reads from Postgres; its
// request path stays on the local SQLite store.

// Initialize the Postgres catalog schema.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init postgres schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
			order_id TEXT PRIMARY KEY,
			product_category TEXT NOT NULL,
			destination TEXT NOT NULL,
			priority TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS warehouses (
			location TEXT NOT NULL,
			product_category TEXT NOT NULL,
			current_stock_units INTEGER NOT NULL,
			reorder_level INTEGER NOT NULL,
			PRIMARY KEY (location, product_category)
		);`,
		`CREATE TABLE IF NOT EXISTS vehicles (
			vehicle_type TEXT PRIMARY KEY,
			fuel_efficiency_km_per_l DOUBLE PRECISION NOT NULL,
			co2_emissions_kg_per_km DOUBLE PRECISION NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS routes (
			order_id TEXT PRIMARY KEY,
			route TEXT NOT NULL,
			distance_km DOUBLE PRECISION NOT NULL,
			traffic_delay_minutes DOUBLE PRECISION NOT NULL,
			weather_impact DOUBLE PRECISION NOT NULL,
			delivery_status TEXT NOT NULL,
			promised_delivery_days DOUBLE PRECISION NOT NULL,
			actual_delivery_days DOUBLE PRECISION NOT NULL,
			delivery_cost DOUBLE PRECISION NOT NULL,
			total_cost DOUBLE PRECISION NOT NULL
		);`,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init postgres schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init postgres schema: commit tx: %w", err)
	}

	return nil
}

// ExportCatalogs upserts the loaded catalogs into Postgres.
func ExportCatalogs(db *sql.DB, cats Catalogs) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("export catalogs: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	orderStmt, err := tx.Prepare(`
	INSERT INTO orders (order_id, product_category, destination, priority)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (order_id) DO UPDATE SET
		product_category = EXCLUDED.product_category,
		destination = EXCLUDED.destination,
		priority = EXCLUDED.priority;
	`)
	if err != nil {
		return fmt.Errorf("export catalogs: prepare orders upsert: %w", err)
	}
	defer orderStmt.Close()

	for _, o := range cats.Orders {
		if _, err := orderStmt.Exec(o.OrderID, o.ProductCategory, o.Destination, o.Priority); err != nil {
			return fmt.Errorf("export catalogs: upsert order_id=%s: %w", o.OrderID, err)
		}
	}

	warehouseStmt, err := tx.Prepare(`
	INSERT INTO warehouses (location, product_category, current_stock_units, reorder_level)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (location, product_category) DO UPDATE SET
		current_stock_units = EXCLUDED.current_stock_units,
		reorder_level = EXCLUDED.reorder_level;
	`)
	if err != nil {
		return fmt.Errorf("export catalogs: prepare warehouses upsert: %w", err)
	}
	defer warehouseStmt.Close()

	for _, w := range cats.Warehouses {
		if _, err := warehouseStmt.Exec(w.Location, w.ProductCategory, w.CurrentStockUnits, w.ReorderLevel); err != nil {
			return fmt.Errorf("export catalogs: upsert warehouse location=%s: %w", w.Location, err)
		}
	}

	vehicleStmt, err := tx.Prepare(`
	INSERT INTO vehicles (vehicle_type, fuel_efficiency_km_per_l, co2_emissions_kg_per_km)
	VALUES ($1, $2, $3)
	ON CONFLICT (vehicle_type) DO UPDATE SET
		fuel_efficiency_km_per_l = EXCLUDED.fuel_efficiency_km_per_l,
		co2_emissions_kg_per_km = EXCLUDED.co2_emissions_kg_per_km;
	`)
	if err != nil {
		return fmt.Errorf("export catalogs: prepare vehicles upsert: %w", err)
	}
	defer vehicleStmt.Close()

	for _, v := range cats.Fleet {
		if _, err := vehicleStmt.Exec(v.Type, v.FuelEfficiencyKMPerL, v.CO2KgPerKM); err != nil {
			return fmt.Errorf("export catalogs: upsert vehicle_type=%s: %w", v.Type, err)
		}
	}

	routeStmt, err := tx.Prepare(`
	INSERT INTO routes (
		order_id, route, distance_km, traffic_delay_minutes, weather_impact,
		delivery_status, promised_delivery_days, actual_delivery_days, delivery_cost, total_cost
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (order_id) DO UPDATE SET
		route = EXCLUDED.route,
		distance_km = EXCLUDED.distance_km,
		traffic_delay_minutes = EXCLUDED.traffic_delay_minutes,
		weather_impact = EXCLUDED.weather_impact,
		delivery_status = EXCLUDED.delivery_status,
		promised_delivery_days = EXCLUDED.promised_delivery_days,
		actual_delivery_days = EXCLUDED.actual_delivery_days,
		delivery_cost = EXCLUDED.delivery_cost,
		total_cost = EXCLUDED.total_cost;
	`)
	if err != nil {
		return fmt.Errorf("export catalogs: prepare routes upsert: %w", err)
	}
	defer routeStmt.Close()

	for _, r := range cats.Routes {
		if _, err := routeStmt.Exec(
			r.OrderID, r.Label, r.DistanceKM, r.TrafficDelayMinutes, r.WeatherImpact,
			r.DeliveryStatus, r.PromisedDeliveryDays, r.ActualDeliveryDays, r.DeliveryCost, r.TotalCost,
		); err != nil {
			return fmt.Errorf("export catalogs: upsert route order_id=%s: %w", r.OrderID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("export catalogs: commit tx: %w", err)
	}

	return nil
}
