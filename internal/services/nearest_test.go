package services

import (
	"coffee-finder-service/internal/domain"
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shop(id string, x, y float64) domain.CoffeeShop {
	return domain.CoffeeShop{ID: id, Name: "Shop " + id, Position: domain.Position{X: x, Y: y}}
}

func ids(shops []domain.CoffeeShop) []string {
	out := make([]string, 0, len(shops))
	for _, s := range shops {
		out = append(out, s.ID)
	}
	return out
}

func TestNearestShopsScenario(t *testing.T) {
	shops := []domain.CoffeeShop{
		shop("A", 0, 0),
		shop("B", 10, 0),
		shop("C", 1, 1),
		shop("D", 5, 5),
	}

	got, err := NearestShops(shops, domain.Position{X: 0, Y: 0}, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D"}, ids(got))

	origin := domain.Position{}
	assert.InDelta(t, 0, domain.Distance(got[0].Position, origin), 1e-9)
	assert.InDelta(t, math.Sqrt2, domain.Distance(got[1].Position, origin), 1e-9)
	assert.InDelta(t, math.Sqrt(50), domain.Distance(got[2].Position, origin), 1e-9)
}

func TestNearestShopsEmptyInput(t *testing.T) {
	got, err := NearestShops(nil, domain.Position{}, 3)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNearestShopsFewerThanN(t *testing.T) {
	shops := []domain.CoffeeShop{shop("far", 9, 9), shop("near", 1, 0)}

	got, err := NearestShops(shops, domain.Position{}, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"near", "far"}, ids(got))
}

func TestNearestRejectsNonPositiveN(t *testing.T) {
	shops := []domain.CoffeeShop{shop("A", 0, 0)}

	for _, n := range []int{0, -1} {
		got, err := NearestShops(shops, domain.Position{}, n)
		require.Error(t, err, "n=%d", n)
		assert.Nil(t, got)
		assert.True(t, errors.Is(err, domain.ErrInvalidArgument), "n=%d: %v", n, err)

		var de *domain.Error
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "non-positive selection count", de.Message)
	}
}

func TestNearestRejectsNaNQuery(t *testing.T) {
	shops := []domain.CoffeeShop{shop("A", 0, 0)}

	for _, q := range []domain.Position{{X: math.NaN(), Y: 0}, {X: 0, Y: math.NaN()}} {
		_, err := NearestShops(shops, q, 3)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	}
}

func TestNearestStableForEqualDistance(t *testing.T) {
	// Same position, and same distance from different positions.
	shops := []domain.CoffeeShop{
		shop("first", 2, 2),
		shop("mirror", -2, -2),
		shop("second", 2, 2),
		shop("third", 2, 2),
		shop("close", 0, 1),
	}

	got, err := NearestShops(shops, domain.Position{}, 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"close", "first", "mirror", "second"}, ids(got))
}

func TestNearestExcludesMalformedPositions(t *testing.T) {
	shops := []domain.CoffeeShop{
		shop("nan", math.NaN(), 0),
		shop("ok-far", 3, 0),
		shop("inf", 0, math.Inf(1)),
		shop("ok-near", 1, 0),
	}

	got, err := NearestShops(shops, domain.Position{}, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"ok-near", "ok-far"}, ids(got))
	assert.Equal(t, 2, countMalformed(shops))
}

func TestNearestDoesNotMutateInput(t *testing.T) {
	shops := []domain.CoffeeShop{shop("B", 5, 0), shop("A", 1, 0), shop("C", 9, 0)}
	before := ids(shops)

	_, err := NearestShops(shops, domain.Position{}, 2)
	require.NoError(t, err)
	assert.Equal(t, before, ids(shops))
}

func TestNearestProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for iter := 0; iter < 200; iter++ {
		m := rng.IntN(40)
		shops := make([]domain.CoffeeShop, 0, m)
		for i := 0; i < m; i++ {
			// A coarse grid makes ties common.
			x := float64(rng.IntN(11)-5) * 0.5
			y := float64(rng.IntN(11)-5) * 0.5
			shops = append(shops, domain.CoffeeShop{ID: string(rune('a' + i)), Position: domain.Position{X: x, Y: y}})
		}
		query := domain.Position{X: rng.Float64()*4 - 2, Y: rng.Float64()*4 - 2}
		n := rng.IntN(6) + 1

		got, err := NearestShops(shops, query, n)
		require.NoError(t, err)
		require.Len(t, got, min(n, m))

		index := make(map[string]int, m)
		for i, s := range shops {
			index[s.ID] = i
		}

		for i := 0; i+1 < len(got); i++ {
			di := domain.Distance(got[i].Position, query)
			dj := domain.Distance(got[i+1].Position, query)
			require.LessOrEqual(t, di, dj)
			if got[i].Position == got[i+1].Position {
				require.Less(t, index[got[i].ID], index[got[i+1].ID], "identical positions must keep input order")
			}
		}

		// Nothing left out is closer than the last selected shop.
		if len(got) > 0 {
			last := domain.Distance(got[len(got)-1].Position, query)
			selected := make(map[string]bool, len(got))
			for _, s := range got {
				selected[s.ID] = true
			}
			for _, s := range shops {
				if !selected[s.ID] {
					require.GreaterOrEqual(t, domain.Distance(s.Position, query), last)
				}
			}
		}
	}
}

type landmark struct {
	label string
	at    domain.Position
}

func (l landmark) Pos() domain.Position { return l.at }

func TestNearestGenericPayloadPassesThrough(t *testing.T) {
	items := []landmark{
		{label: "pier", at: domain.Position{X: 4, Y: 0}},
		{label: "ferry", at: domain.Position{X: 0, Y: 2}},
	}

	got, err := Nearest(items, domain.Position{}, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ferry", got[0].label)
}
