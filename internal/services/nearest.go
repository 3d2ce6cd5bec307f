package services

import (
	"cmp"
	"coffee-finder-service/internal/domain"
	"slices"
)

// Nearest returns the n entities closest to query, nearest first.
//
// Entities at exactly equal distance keep their input order, so the same input
// always ranks the same way. Entities whose position is not finite are left out
// of the ranking instead of failing the call. Fewer than n rankable entities is
// not an error; the result is simply shorter. The input slice is not modified.
func Nearest[T domain.Locatable](entities []T, query domain.Position, n int) ([]T, error) {
	if n <= 0 {
		return nil, domain.NewError(domain.KindInvalidArgument, "non-positive selection count")
	}

	if err := query.Validate(); err != nil {
		return nil, err
	}

	type candidate struct {
		entity T
		dist   float64
	}

	candidates := make([]candidate, 0, len(entities))
	for _, e := range entities {
		p := e.Pos()
		if !p.IsFinite() {
			continue
		}
		// Squared distance orders the same as Euclidean distance.
		candidates = append(candidates, candidate{entity: e, dist: domain.SquaredDistance(p, query)})
	}

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return cmp.Compare(a.dist, b.dist)
	})

	if len(candidates) > n {
		candidates = candidates[:n]
	}

	out := make([]T, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.entity)
	}

	return out, nil
}

// NearestShops ranks coffee shops by distance to query.
func NearestShops(shops []domain.CoffeeShop, query domain.Position, n int) ([]domain.CoffeeShop, error) {
	return Nearest(shops, query, n)
}

// countMalformed reports how many shops carry a non-finite position.
func countMalformed(shops []domain.CoffeeShop) int {
	n := 0
	for _, s := range shops {
		if !s.IsFinite() {
			n++
		}
	}
	return n
}
