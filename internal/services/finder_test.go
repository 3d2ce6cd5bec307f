package services

import (
	"coffee-finder-service/internal/adapters/mock"
	"coffee-finder-service/internal/domain"
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func catalogShops() []domain.CoffeeShop {
	return []domain.CoffeeShop{
		shop("A", 0, 0),
		shop("B", 10, 0),
		shop("C", 1, 1),
		shop("D", 5, 5),
	}
}

func TestFinderFindNearest(t *testing.T) {
	tokens := mock.NewMockTokenProvider("tok-123", nil)
	catalog := mock.NewMockShopCatalog(catalogShops(), nil).ExpectToken("tok-123")

	finder, err := NewFinder(tokens, catalog)
	require.NoError(t, err)

	got, err := finder.FindNearest(context.Background(), domain.Position{X: 0, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D"}, ids(got))
	assert.Equal(t, "tok-123", catalog.LastToken())
	assert.Equal(t, 1, tokens.Calls())
	assert.Equal(t, 1, catalog.Calls())
}

func TestFinderInvalidQueryShortCircuits(t *testing.T) {
	for _, q := range []domain.Position{{X: math.NaN(), Y: 1}, {X: 1, Y: math.NaN()}} {
		tokens := mock.NewMockTokenProvider("tok", nil)
		catalog := mock.NewMockShopCatalog(catalogShops(), nil)

		finder, err := NewFinder(tokens, catalog)
		require.NoError(t, err)

		got, err := finder.FindNearest(context.Background(), q)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		assert.Zero(t, tokens.Calls(), "token must not be fetched for invalid input")
		assert.Zero(t, catalog.Calls(), "catalog must not be fetched for invalid input")
	}
}

func TestFinderUnauthorizedCatalog(t *testing.T) {
	tokens := mock.NewMockTokenProvider("stale", nil)
	catalog := mock.NewMockShopCatalog(nil, domain.NewError(domain.KindUnauthorized, "catalog returned 401"))

	finder, err := NewFinder(tokens, catalog)
	require.NoError(t, err)

	got, err := finder.FindNearest(context.Background(), domain.Position{})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
}

func TestFinderTokenFailureIsNetworkFailure(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	tokens := mock.NewMockTokenProvider("", cause)
	catalog := mock.NewMockShopCatalog(catalogShops(), nil)

	finder, err := NewFinder(tokens, catalog)
	require.NoError(t, err)

	_, err = finder.FindNearest(context.Background(), domain.Position{})
	assert.ErrorIs(t, err, domain.ErrNetworkFailure)
	assert.ErrorIs(t, err, cause)
	assert.Zero(t, catalog.Calls(), "catalog must not be called without a token")
}

func TestFinderUnclassifiedCatalogError(t *testing.T) {
	tokens := mock.NewMockTokenProvider("tok", nil)
	catalog := mock.NewMockShopCatalog(nil, errors.New("boom"))

	finder, err := NewFinder(tokens, catalog)
	require.NoError(t, err)

	_, err = finder.FindNearest(context.Background(), domain.Position{})
	assert.ErrorIs(t, err, domain.ErrGenericError)
}

func TestFinderResultCountAndMalformedShops(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)

	shops := append(catalogShops(), shop("broken", math.NaN(), 0))
	finder, err := NewFinder(
		mock.NewMockTokenProvider("tok", nil),
		mock.NewMockShopCatalog(shops, nil),
		WithResultCount(5),
		WithLogger(zap.New(core)),
	)
	require.NoError(t, err)

	got, err := finder.FindNearest(context.Background(), domain.Position{})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D", "B"}, ids(got))

	entries := logs.FilterMessage("excluding shops with malformed coordinates").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, 1, entries[0].ContextMap()["skipped"])
}

func TestNewFinderValidation(t *testing.T) {
	tokens := mock.NewMockTokenProvider("tok", nil)
	catalog := mock.NewMockShopCatalog(nil, nil)

	_, err := NewFinder(nil, catalog)
	assert.Error(t, err)

	_, err = NewFinder(tokens, nil)
	assert.Error(t, err)

	_, err = NewFinder(tokens, catalog, WithResultCount(0))
	assert.Error(t, err)
}
