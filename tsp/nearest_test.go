package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nntour/tsp"
)

// TestNearestNeighborAlpha_Validity checks the Hamiltonian-cycle invariants on
// random instances across the whole alpha range.
func TestNearestNeighborAlpha_Validity(t *testing.T) {
	sizes := []int{1, 2, 3, 10, 57}
	alphas := []float64{0, 0.1, 0.25, 0.4, nearHalf}

	for _, n := range sizes {
		m := euclid(t, randomPoints(n, int64(n)))
		for _, alpha := range alphas {
			tour, err := tsp.NearestNeighborAlpha(m, alpha)
			require.NoError(t, err, "n=%d alpha=%g", n, alpha)
			require.Len(t, tour, n+1)
			require.NoError(t, tsp.ValidateTour(tour, n, tsp.Origin), "n=%d alpha=%g tour=%v", n, alpha, tour)
		}
	}
}

// TestNearestNeighborAlpha_SingleCity returns the trivial closed tour.
func TestNearestNeighborAlpha_SingleCity(t *testing.T) {
	m := euclid(t, [][2]float64{{4, 2}})

	tour, err := tsp.NearestNeighborAlpha(m, 0.3)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0}, tour)
}

// TestNearestNeighborAlpha_Empty rejects n == 0 instead of returning a malformed tour.
func TestNearestNeighborAlpha_Empty(t *testing.T) {
	m, err := tsp.DistanceMatrix(nil)
	require.NoError(t, err)

	_, err = tsp.NearestNeighborAlpha(m, 0)
	require.ErrorIs(t, err, tsp.ErrEmptyInstance)

	_, err = tsp.NearestNeighborAlpha(nil, 0)
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
}

// TestNearestNeighborAlpha_AlphaRange rejects weights outside [0, 0.5).
func TestNearestNeighborAlpha_AlphaRange(t *testing.T) {
	m := unitSquare(t)

	for _, alpha := range []float64{-0.01, tsp.MaxAlpha, 0.75, math.NaN(), math.Inf(1)} {
		_, err := tsp.NearestNeighborAlpha(m, alpha)
		require.ErrorIs(t, err, tsp.ErrAlphaOutOfRange, "alpha=%g", alpha)
	}
}

// TestNearestNeighborAlpha_ZeroIsPlainNearest compares alpha=0 against an
// independent nearest-neighbor reference.
func TestNearestNeighborAlpha_ZeroIsPlainNearest(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 4, 5} {
		m := euclid(t, randomPoints(30, seed))

		got, err := tsp.NearestNeighborAlpha(m, 0)
		require.NoError(t, err)
		require.Equal(t, plainNearest(t, m), got, "seed=%d", seed)
	}
}

// TestNearestNeighborAlpha_Limits verifies both limiting selections on a
// hand-computed instance:
//
//	0=(0,0)  1=(1,0)  2=(3,0)  3=(0,2.1)
//
// Step 1 always picks 1 (both terms equal d(0,j)). At city 1:
//
//	alpha=0    : d(1,2)=2 < d(1,3)≈2.326                     ⇒ 2
//	alpha=0.49 : 0.51·2+0.49·3=2.49 > 0.51·2.326+0.49·2.1≈2.215 ⇒ 3
//
// The switch happens near alpha≈0.266.
func TestNearestNeighborAlpha_Limits(t *testing.T) {
	m := euclid(t, [][2]float64{{0, 0}, {1, 0}, {3, 0}, {0, 2.1}})

	cases := []struct {
		alpha float64
		want  []int
	}{
		{0, []int{0, 1, 2, 3, 0}},
		{0.25, []int{0, 1, 2, 3, 0}},
		{0.3, []int{0, 1, 3, 2, 0}},
		{0.49, []int{0, 1, 3, 2, 0}},
		{nearHalf, []int{0, 1, 3, 2, 0}},
	}
	for _, tc := range cases {
		got, err := tsp.NearestNeighborAlpha(m, tc.alpha)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "alpha=%g", tc.alpha)
	}
}

// TestNearestNeighborAlpha_UnitSquare walks the perimeter for both limits.
func TestNearestNeighborAlpha_UnitSquare(t *testing.T) {
	m := unitSquare(t)

	for _, alpha := range []float64{0, nearHalf} {
		tour, err := tsp.NearestNeighborAlpha(m, alpha)
		require.NoError(t, err)
		require.Equal(t, []int{0, 1, 2, 3, 0}, tour)

		cost, err := tsp.BottleneckCost(m, tour)
		require.NoError(t, err)
		require.Equal(t, 1.0, cost)
	}
}

// TestNearestNeighborAlpha_TieBreakLowestIndex: cities 1, 2 and 3 are all at
// distance 1 from the origin, so the first step is an exact three-way tie.
func TestNearestNeighborAlpha_TieBreakLowestIndex(t *testing.T) {
	m := euclid(t, [][2]float64{{0, 0}, {1, 0}, {0, 1}, {-1, 0}})

	for _, alpha := range []float64{0, 0.3} {
		tour, err := tsp.NearestNeighborAlpha(m, alpha)
		require.NoError(t, err)
		require.Equal(t, []int{0, 1, 2, 3, 0}, tour, "alpha=%g", alpha)
	}
}

// TestNearestNeighborAlpha_Deterministic: same matrix and alpha ⇒ same tour,
// and the matrix is left untouched.
func TestNearestNeighborAlpha_Deterministic(t *testing.T) {
	m := euclid(t, randomPoints(40, 11))
	before := m.Clone()

	var first []int
	Repeat(t, 3, func(t *testing.T) {
		tour, err := tsp.NearestNeighborAlpha(m, 0.37)
		require.NoError(t, err)
		if first == nil {
			first = tour
			return
		}
		require.Equal(t, first, tour)
	})

	require.Equal(t, before, m.Clone())
}

// TestNearestNeighborAlpha_BadEntries surfaces invalid distances as sentinels.
func TestNearestNeighborAlpha_BadEntries(t *testing.T) {
	cases := []struct {
		name string
		a    [][]float64
		want error
	}{
		{"non-square", [][]float64{{0, 1}}, tsp.ErrNonSquare},
		{"inf", [][]float64{{0, math.Inf(1)}, {math.Inf(1), 0}}, tsp.ErrIncompleteGraph},
		{"negative", [][]float64{{0, -1}, {-1, 0}}, tsp.ErrNegativeWeight},
		{"nan", [][]float64{{0, math.NaN()}, {math.NaN(), 0}}, tsp.ErrDimensionMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tsp.NearestNeighborAlpha(testDense{a: tc.a}, 0.2)
			require.ErrorIs(t, err, tc.want)
		})
	}
}
