package main

import (
	"coffee-finder-service/internal/adapters/bluebottle"
	"coffee-finder-service/internal/api"
	"coffee-finder-service/internal/config"
	"coffee-finder-service/internal/platform/logger"
	"coffee-finder-service/internal/services"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// main is the application composition root.
// It wires the catalog client behind the finder's ports and starts the HTTP server.
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logr, cleanup, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer cleanup()
	zap.ReplaceGlobals(logr)

	client, err := bluebottle.NewClient(cfg.TokenURL, cfg.CatalogURL, &http.Client{Timeout: cfg.HTTPTimeout})
	if err != nil {
		return err
	}

	finder, err := services.NewFinder(client, client,
		services.WithResultCount(cfg.ResultCount),
		services.WithLogger(logr),
	)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(finder, logr),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// Two sequential upstream calls, each bounded by HTTPTimeout.
		WriteTimeout: 2*cfg.HTTPTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logr.Info("server listening", zap.String("addr", srv.Addr), zap.String("catalog", cfg.CatalogURL))
	return serve(srv, logr)
}

// serve runs srv until SIGINT/SIGTERM, then drains in-flight requests.
func serve(srv *http.Server, logr *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
