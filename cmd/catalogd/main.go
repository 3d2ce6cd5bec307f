package main

import (
	"coffee-finder-service/internal/adapters/repositories"
	"coffee-finder-service/internal/catalogapi"
	"coffee-finder-service/internal/config"
	"coffee-finder-service/internal/platform/db"
	"coffee-finder-service/internal/platform/logger"
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// catalogd serves a local copy of the coffee shop catalog API.
// Shops live in SQLite by default, or in Postgres when DATABASE_URL is set.
func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal(err)
	}

	cfg, err := config.LoadCatalog()
	if err != nil {
		log.Fatal(err)
	}

	logr, cleanup, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()
	zap.ReplaceGlobals(logr)

	conn, store, err := repositories.OpenStore(cfg.DatabaseURL, cfg.DBPath, db.OpenPostgres, db.OpenSqlite)
	if err != nil {
		logr.Fatal("open store", zap.Error(err))
	}
	defer conn.Close()

	// Local SQLite runs get the schema and demo data on startup; Postgres is seeded with dbtool.
	if cfg.DatabaseURL == "" {
		n, err := repositories.PrepareLocal(context.Background(), conn, store, cfg.SeedPath)
		if err != nil {
			logr.Fatal("prepare catalog", zap.Error(err))
		}
		logr.Info("catalog ready", zap.Int("seeded", n), zap.String("seed_path", cfg.SeedPath))
	}

	server, err := catalogapi.NewServer(store, cfg.SigningKey, cfg.TokenTTL, logr)
	if err != nil {
		logr.Fatal("new catalog server", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logr.Info("catalog listening", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logr.Fatal("listen", zap.Error(err))
	}
}
