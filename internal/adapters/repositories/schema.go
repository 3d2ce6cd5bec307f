package repositories

import (
	"coffee-finder-service/internal/domain"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the catalog schema. The DDL is valid for both SQLite and Postgres.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createShopsQuery := `
	CREATE TABLE IF NOT EXISTS coffee_shops (
		shop_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		x DOUBLE PRECISION NOT NULL,
		y DOUBLE PRECISION NOT NULL,
		seq INTEGER NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_coffee_shops_seq
    ON coffee_shops(seq);
	`

	statements := []string{
		createShopsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// ShopSeed is one record of the seed file. Coordinates are pointers so a
// missing x or y is rejected rather than read as 0.
type ShopSeed struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	X    *float64 `json:"x"`
	Y    *float64 `json:"y"`
}

// Read and validate shop seed data from a JSON file.
func LoadSeeds(jsonPath string) ([]domain.CoffeeShop, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("load seeds: read %q: %w", jsonPath, err)
	}

	var data []ShopSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("load seeds: parse json: %w", err)
	}

	seen := make(map[string]struct{}, len(data))
	shops := make([]domain.CoffeeShop, 0, len(data))
	for i, item := range data {
		id := strings.TrimSpace(item.ID)
		if id == "" {
			return nil, fmt.Errorf("load seeds: item at index %d: id cannot be empty", i+1)
		}
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("load seeds: item at index %d: duplicate id %q", i+1, id)
		}
		seen[id] = struct{}{}

		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, fmt.Errorf("load seeds: item %q: name cannot be empty", id)
		}

		if item.X == nil || item.Y == nil {
			return nil, fmt.Errorf("load seeds: item %q: x and y are required", id)
		}

		shops = append(shops, domain.CoffeeShop{
			ID:       id,
			Name:     name,
			Position: domain.Position{X: *item.X, Y: *item.Y},
		})
	}

	return shops, nil
}

// ShopStore is a ShopRepository that can also be seeded.
type ShopStore interface {
	ListShops(ctx context.Context) ([]domain.CoffeeShop, error)
	PutMany(ctx context.Context, shops []domain.CoffeeShop) error
}

var (
	_ ShopStore = (*SqliteShopRepository)(nil)
	_ ShopStore = (*SQLShopRepository)(nil)
)

// Open a shop store: Postgres when databaseURL is set, otherwise SQLite at dbPath.
// The caller owns the returned *sql.DB.
func OpenStore(databaseURL, dbPath string, openPostgres, openSqlite func(string) (*sql.DB, error)) (*sql.DB, ShopStore, error) {
	if strings.TrimSpace(databaseURL) != "" {
		conn, err := openPostgres(databaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open store: %w", err)
		}
		return conn, NewSQLShopRepository(conn), nil
	}

	conn, err := openSqlite(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	return conn, NewSqliteShopRepository(conn), nil
}

// PrepareLocal readies a local SQLite catalog: the schema is always created,
// and shops are seeded only when seedPath names an existing file.
// It returns the number of shops seeded.
func PrepareLocal(ctx context.Context, conn *sql.DB, store ShopStore, seedPath string) (int, error) {
	if strings.TrimSpace(seedPath) != "" {
		if _, err := os.Stat(seedPath); err == nil {
			return InitAndSeed(ctx, conn, store, seedPath)
		}
	}

	if err := InitSchema(ctx, conn); err != nil {
		return 0, fmt.Errorf("prepare local: %w", err)
	}
	return 0, nil
}

// Create the schema and load seeds from seedPath into store.
func InitAndSeed(ctx context.Context, conn *sql.DB, store ShopStore, seedPath string) (int, error) {
	if err := InitSchema(ctx, conn); err != nil {
		return 0, fmt.Errorf("init and seed: %w", err)
	}

	shops, err := LoadSeeds(seedPath)
	if err != nil {
		return 0, fmt.Errorf("init and seed: %w", err)
	}

	if err := store.PutMany(ctx, shops); err != nil {
		return 0, fmt.Errorf("init and seed: %w", err)
	}

	return len(shops), nil
}
