package repositories

import (
	"coffee-finder-service/internal/domain"
	"coffee-finder-service/internal/platform/obs"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SQLite-backed implementation of the ShopRepository port.
type SqliteShopRepository struct{ DB *sql.DB }

func NewSqliteShopRepository(db *sql.DB) *SqliteShopRepository {
	return &SqliteShopRepository{DB: db}
}

// Return all shops in catalog order.
func (s *SqliteShopRepository) ListShops(ctx context.Context) (_ []domain.CoffeeShop, err error) {
	defer obs.Time(ctx, "sqlite.ListShops")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite shop repository: DB is nil")
	}

	return listShops(ctx, s.DB)
}

// Replace the stored catalog with shops. Slice order becomes catalog order.
func (s *SqliteShopRepository) PutMany(ctx context.Context, shops []domain.CoffeeShop) error {
	if s.DB == nil {
		return errors.New("sqlite shop repository: DB is nil")
	}

	return putMany(ctx, s.DB, `
	INSERT INTO coffee_shops (
		shop_id,
		name,
		x,
		y,
		seq
	)
	VALUES (?, ?, ?, ?, ?);
	`, shops)
}

// listShops is shared by both repositories; the query takes no parameters.
func listShops(ctx context.Context, db *sql.DB) ([]domain.CoffeeShop, error) {
	query := `
	SELECT
		shop_id,
		name,
		x,
		y
	FROM coffee_shops
	ORDER BY seq, shop_id;
	`
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list shops: query coffee_shops table: %w", err)
	}
	defer rows.Close()

	shops := make([]domain.CoffeeShop, 0, 64)
	for rows.Next() {
		var shop domain.CoffeeShop
		if err := rows.Scan(&shop.ID, &shop.Name, &shop.X, &shop.Y); err != nil {
			return nil, fmt.Errorf("list shops: scan row: %w", err)
		}
		shops = append(shops, shop)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list shops: row iteration: %w", err)
	}

	return shops, nil
}

// putMany swaps the whole table for shops in one transaction, so shops
// missing from a reseed disappear and seq stays dense.
func putMany(ctx context.Context, db *sql.DB, insert string, shops []domain.CoffeeShop) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert shops: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM coffee_shops;`); err != nil {
		return fmt.Errorf("insert shops: clear table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("insert shops: db prepare: %w", err)
	}
	defer stmt.Close()

	for i, shop := range shops {
		if strings.TrimSpace(shop.ID) == "" {
			return fmt.Errorf("insert shops: empty id at index %d", i)
		}
		if !shop.IsFinite() {
			return fmt.Errorf("insert shops: shop %q has non-finite coordinates", shop.ID)
		}

		if _, err := stmt.ExecContext(ctx, shop.ID, shop.Name, shop.X, shop.Y, i); err != nil {
			return fmt.Errorf("insert shops id=%q: %w", shop.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert shops commit: %w", err)
	}

	return nil
}
