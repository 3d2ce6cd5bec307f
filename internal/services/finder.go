package services

import (
	"coffee-finder-service/internal/domain"
	"coffee-finder-service/internal/platform/obs"
	"coffee-finder-service/internal/ports"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Number of shops returned when no result count is configured.
const DefaultResultCount = 3

// Finder answers "which coffee shops are nearest to me?".
//
// It validates the query, acquires a token, lists the catalog and ranks the
// shops. The token call always completes before the catalog call starts
// because the token is a parameter of the catalog request.
// A Finder holds no per-query state and is safe for concurrent use.
type Finder struct {
	tokens  ports.TokenProvider
	catalog ports.ShopCatalog
	count   int
	log     *zap.Logger
}

type FinderOption func(*Finder)

// WithResultCount sets how many shops FindNearest returns.
func WithResultCount(n int) FinderOption {
	return func(f *Finder) { f.count = n }
}

func WithLogger(log *zap.Logger) FinderOption {
	return func(f *Finder) { f.log = log }
}

func NewFinder(tokens ports.TokenProvider, catalog ports.ShopCatalog, opts ...FinderOption) (*Finder, error) {
	if tokens == nil {
		return nil, errors.New("new finder: token provider must be non-nil")
	}
	if catalog == nil {
		return nil, errors.New("new finder: shop catalog must be non-nil")
	}

	f := &Finder{
		tokens:  tokens,
		catalog: catalog,
		count:   DefaultResultCount,
		log:     zap.L(),
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.count <= 0 {
		return nil, fmt.Errorf("new finder: result count must be positive, got %d", f.count)
	}

	return f, nil
}

// FindNearest returns the closest shops to query, nearest first.
// Failures carry a *domain.Error; a result and an error are never both returned.
func (f *Finder) FindNearest(ctx context.Context, query domain.Position) (_ []domain.CoffeeShop, err error) {
	defer obs.Time(ctx, "finder.FindNearest")(&err)

	// Bad input never reaches the network.
	if err := query.Validate(); err != nil {
		return nil, err
	}

	token, err := f.tokens.Token(ctx)
	if err != nil {
		if domain.KindOf(err) == "" {
			err = domain.WrapError(domain.KindNetworkFailure, "fetch token", err)
		}
		return nil, fmt.Errorf("find nearest: %w", err)
	}

	shops, err := f.catalog.ListShops(ctx, token)
	if err != nil {
		if domain.KindOf(err) == "" {
			err = domain.WrapError(domain.KindGenericError, "list coffee shops", err)
		}
		return nil, fmt.Errorf("find nearest: %w", err)
	}

	if skipped := countMalformed(shops); skipped > 0 {
		f.log.Warn("excluding shops with malformed coordinates",
			zap.Int("skipped", skipped),
			zap.Int("total", len(shops)),
		)
	}

	nearest, err := NearestShops(shops, query, f.count)
	if err != nil {
		return nil, fmt.Errorf("find nearest: %w", err)
	}

	return nearest, nil
}
