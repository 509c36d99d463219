package main

import (
	"fulfillment-advisor-service/internal/adapters/csvload"
	"fulfillment-advisor-service/internal/adapters/repositories"
	"fulfillment-advisor-service/internal/config"
	"fulfillment-advisor-service/internal/platform/db"
	"fulfillment-advisor-service/internal/services"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// dbtool loads and enriches the catalog CSVs and exports them to
// Postgres for offline analytics. The HTTP server does not depend on
// this export.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	dataDir := config.Get("DATA_DIR", "data")

	log.Println("Loading catalog CSVs...")
	ds, err := csvload.LoadDir(dataDir)
	if err != nil {
		log.Fatalf("load failed: %v", err)
	}

	enriched := services.EnrichRoutes(ds.Routes, ds.Deliveries, ds.Costs)

	log.Println("Initializing Postgres schema...")
	if err := repositories.InitPostgresSchema(pg); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Exporting catalogs...")
	cats := repositories.Catalogs{
		Orders:     ds.Orders,
		Warehouses: ds.Warehouses,
		Fleet:      ds.Fleet,
		Routes:     enriched,
	}
	if err := repositories.ExportCatalogs(pg, cats); err != nil {
		log.Fatalf("export failed: %v", err)
	}
	log.Println("Export complete.")
}
