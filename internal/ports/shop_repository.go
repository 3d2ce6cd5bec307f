package ports

import (
	"coffee-finder-service/internal/domain"
	"context"
)

// Port: a boundary for reading shops from the catalog's own data store.
// Only the local catalog stand-in uses it; the finder talks to ShopCatalog.
type ShopRepository interface {
	ListShops(ctx context.Context) ([]domain.CoffeeShop, error)
}
