package repositories

import (
	"coffee-finder-service/internal/domain"
	"coffee-finder-service/internal/platform/obs"
	"context"
	"database/sql"
	"errors"
)

// SQLShopRepository is the Postgres-backed ShopRepository, used through the pgx stdlib driver.
type SQLShopRepository struct {
	DB *sql.DB
}

func NewSQLShopRepository(db *sql.DB) *SQLShopRepository {
	return &SQLShopRepository{DB: db}
}

func (s *SQLShopRepository) ListShops(ctx context.Context) (_ []domain.CoffeeShop, err error) {
	defer obs.Time(ctx, "postgres.ListShops")(&err)

	if s.DB == nil {
		return nil, errors.New("sql shop repository: DB is nil")
	}

	return listShops(ctx, s.DB)
}

// Replace the stored catalog with shops. Slice order becomes catalog order.
func (s *SQLShopRepository) PutMany(ctx context.Context, shops []domain.CoffeeShop) error {
	if s.DB == nil {
		return errors.New("sql shop repository: DB is nil")
	}

	return putMany(ctx, s.DB, `
	INSERT INTO coffee_shops (shop_id, name, x, y, seq)
    VALUES ($1, $2, $3, $4, $5);
	`, shops)
}
