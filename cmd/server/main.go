package main

import (
	"database/sql"
	"fmt"
	"fulfillment-advisor-service/internal/adapters/csvload"
	"fulfillment-advisor-service/internal/adapters/repositories"
	"fulfillment-advisor-service/internal/api"
	"fulfillment-advisor-service/internal/config"
	"fulfillment-advisor-service/internal/services"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It loads and enriches the catalog CSVs exactly once, seeds them into
// the SQLite catalog store, and starts the HTTP server. A load failure
// of any source table is fatal; re-loading requires a restart.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dataDir := config.Get("DATA_DIR", "data")
	dbPath := config.Get("DB_PATH", "data/catalog.db")
	port := config.Get("PORT", "8080")

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// One-time load: parse, enrich, and seed the catalogs.
	if err := initAndSeed(db, dataDir); err != nil {
		log.Fatal(err)
	}

	store := repositories.NewSqliteCatalogStore(db)
	router := api.NewRouter(api.Catalogs{
		Orders:     store,
		Warehouses: store,
		Fleet:      store,
		Routes:     store,
	})

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, dataDir string) error {
	ds, err := csvload.LoadDir(dataDir)
	if err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	enriched := services.EnrichRoutes(ds.Routes, ds.Deliveries, ds.Costs)

	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	cats := repositories.Catalogs{
		Orders:     ds.Orders,
		Warehouses: ds.Warehouses,
		Fleet:      ds.Fleet,
		Routes:     enriched,
	}
	if err := repositories.Seed(db, cats); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	log.Printf(
		"catalogs loaded orders=%d warehouses=%d vehicles=%d routes=%d",
		len(ds.Orders), len(ds.Warehouses), len(ds.Fleet), len(enriched),
	)

	return nil
}
