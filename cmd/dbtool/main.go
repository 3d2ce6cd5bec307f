package main

import (
	"coffee-finder-service/internal/adapters/repositories"
	"coffee-finder-service/internal/config"
	"coffee-finder-service/internal/platform/db"
	"coffee-finder-service/internal/platform/logger"
	"context"
	"log"

	"go.uber.org/zap"
)

// dbtool creates the catalog schema and loads seed shops.
// It targets Postgres when DATABASE_URL is set and SQLite (DB_PATH) otherwise.
func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal(err)
	}

	logr, cleanup, err := logger.New(config.Get("LOG_LEVEL", "info"))
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	databaseURL := config.Get("DATABASE_URL", "")
	dbPath := config.Get("DB_PATH", "data/catalog.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/coffee_shops.json")

	conn, store, err := repositories.OpenStore(databaseURL, dbPath, db.OpenPostgres, db.OpenSqlite)
	if err != nil {
		logr.Fatal("open store", zap.Error(err))
	}
	defer conn.Close()

	logr.Info("initializing schema and seeding", zap.String("seed", seedPath))
	n, err := repositories.InitAndSeed(context.Background(), conn, store, seedPath)
	if err != nil {
		logr.Fatal("seeding failed", zap.Error(err))
	}
	logr.Info("seeding complete", zap.Int("shops", n))
}
