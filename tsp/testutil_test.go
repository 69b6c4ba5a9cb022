// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nntour/matrix"
	"github.com/katalvlaran/nntour/tsp"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsTiny is the absolute tolerance for float comparisons of rounded costs.
	epsTiny = 1e-9

	// seedDet is a deterministic seed (0 => internal default seed).
	seedDet = int64(0)

	// nearHalf is the largest alpha used to probe the upper limit of [0, 0.5).
	nearHalf = 0.4999
)

// -----------------------------------------------------------------------------
// Minimal matrix implementation for tests (bounds-checked, with Clone).
// It lets tests feed hand-written, possibly invalid, distance tables.
// -----------------------------------------------------------------------------

// testDense is a simple dense matrix with bounds-checked At/Set and deep Clone.
type testDense struct{ a [][]float64 }

var _ matrix.Matrix = testDense{}

func (m testDense) Rows() int { return len(m.a) }
func (m testDense) Cols() int {
	if len(m.a) == 0 {
		return 0
	}

	return len(m.a[0])
}
func (m testDense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, matrix.ErrOutOfRange
	}

	return m.a[i][j], nil
}
func (m testDense) Set(i, j int, v float64) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return matrix.ErrOutOfRange
	}
	m.a[i][j] = v

	return nil
}
func (m testDense) Clone() matrix.Matrix {
	cp := make([][]float64, len(m.a))
	var i int
	for i = range m.a {
		cp[i] = append([]float64(nil), m.a[i]...)
	}

	return testDense{a: cp}
}

// -----------------------------------------------------------------------------
// Instance generators
// -----------------------------------------------------------------------------

// citiesOf turns coordinates into cities with ids 1..n, the usual TSPLIB numbering.
func citiesOf(pts [][2]float64) []tsp.City {
	out := make([]tsp.City, len(pts))
	for i, p := range pts {
		out[i] = tsp.City{ID: i + 1, X: p[0], Y: p[1]}
	}

	return out
}

// euclid builds the Euclidean distance matrix of pts through the package API.
func euclid(t testing.TB, pts [][2]float64) *matrix.Dense {
	t.Helper()
	m, err := tsp.DistanceMatrix(citiesOf(pts))
	require.NoError(t, err)

	return m
}

// unitSquare is the 4-city instance (0,0),(0,1),(1,1),(1,0).
func unitSquare(t testing.TB) *matrix.Dense {
	return euclid(t, [][2]float64{{0, 0}, {0, 1}, {1, 1}, {1, 0}})
}

// randomPoints returns n uniformly scattered points in [0,100)², seeded.
func randomPoints(n int, seed int64) [][2]float64 {
	r := rand.New(rand.NewSource(seed))
	pts := make([][2]float64, n)
	for i := range pts {
		pts[i] = [2]float64{100 * r.Float64(), 100 * r.Float64()}
	}

	return pts
}

// plainNearest is an independent reference for alpha == 0: classic nearest
// neighbor from 0, lowest index on exact ties.
func plainNearest(t *testing.T, m matrix.Matrix) []int {
	t.Helper()
	n := m.Rows()
	visited := make([]bool, n)
	visited[0] = true
	tour := []int{0}
	cur := 0
	for step := 1; step < n; step++ {
		next, best := -1, math.Inf(1)
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			d, err := m.At(cur, j)
			require.NoError(t, err)
			if d < best {
				next, best = j, d
			}
		}
		visited[next] = true
		tour = append(tour, next)
		cur = next
	}

	return append(tour, 0)
}

// Repeat runs fn N times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}
