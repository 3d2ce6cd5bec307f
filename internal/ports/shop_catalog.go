package ports

import (
	"coffee-finder-service/internal/domain"
	"context"
)

// Port: the remote catalog listing coffee shops.
type ShopCatalog interface {
	// Retrieve every shop, in catalog order, authorized by token.
	ListShops(ctx context.Context, token string) ([]domain.CoffeeShop, error)
}
