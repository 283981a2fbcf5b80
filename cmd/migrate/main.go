package main

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/lib/pq"

	"github.com/qu18354531302/product-analytics-api/internal/config"
)

// Schema statements are ordered by dependency. The unique keys matter:
// product upserts rely on products.product_name and metric re-uploads on
// daily_metrics (product_id, record_date).
var schema = []string{
	`CREATE TABLE IF NOT EXISTS products (
		product_id   BIGSERIAL PRIMARY KEY,
		product_name TEXT NOT NULL UNIQUE,
		category     TEXT,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS daily_metrics (
		id                BIGSERIAL PRIMARY KEY,
		product_id        BIGINT NOT NULL REFERENCES products (product_id),
		record_date       DATE NOT NULL,
		production_volume DOUBLE PRECISION,
		sales_volume      DOUBLE PRECISION,
		inventory_level   DOUBLE PRECISION,
		average_price     DOUBLE PRECISION,
		sales_amount      DOUBLE PRECISION,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (product_id, record_date)
	)`,

	`CREATE TABLE IF NOT EXISTS price_adjustments (
		id               BIGSERIAL PRIMARY KEY,
		adjustment_date  DATE NOT NULL,
		product_id       BIGINT NOT NULL REFERENCES products (product_id),
		product_name     TEXT NOT NULL,
		specification    TEXT,
		adjustment_count INTEGER NOT NULL DEFAULT 1,
		previous_price   DOUBLE PRECISION,
		current_price    DOUBLE PRECISION NOT NULL,
		price_difference DOUBLE PRECISION NOT NULL DEFAULT 0,
		category         TEXT,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_daily_metrics_record_date
		ON daily_metrics (record_date)`,

	`CREATE INDEX IF NOT EXISTS idx_price_adjustments_date
		ON price_adjustments (adjustment_date)`,

	`CREATE TABLE IF NOT EXISTS users (
		id            SERIAL PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("starting schema migration...")

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("ERROR loading configuration: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatalf("ERROR opening database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("ERROR reaching database: %v", err)
	}

	startTime := time.Now()
	for i, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatalf("ERROR on statement %d: %v", i+1, err)
		}
		log.Printf("progress: %d/%d statements applied", i+1, len(schema))
	}

	log.Printf("schema migration finished in %v", time.Since(startTime))
}
