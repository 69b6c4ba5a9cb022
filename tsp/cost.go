// Package tsp - cost utilities.
//
// This file provides small, allocation-free helpers to score a closed tour
// represented by position indices:
//   - BottleneckCost: the largest single edge (the objective of this package).
//   - TourLength: the sum of edges (reported alongside, never optimized).
//
// Design:
//   - Strict sentinels from types.go on any invalid input.
//   - Inf/NaN/negative checks per edge even if validateDistMatrix ran earlier.
//   - Results rounded to 1e-9 to avoid cross-platform FP noise.
//
// Complexity:
//   - O(n) time for a tour of length n+1, O(1) extra space.
package tsp

import (
	"math"

	"github.com/katalvlaran/nntour/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// BottleneckCost returns max_i dist(tour[i], tour[i+1]) over consecutive
// positions, the closing edge included when the tour is closed.
//
// Contract:
//   - len(tour) >= 2 and every index within [0..n-1].
//   - Returns ErrNonSquare, ErrDimensionMismatch, ErrIncompleteGraph or ErrNegativeWeight.
//
// Complexity: O(len(tour)).
func BottleneckCost(dist matrix.Matrix, tour []int) (float64, error) {
	if dist == nil || len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}

	var (
		worst float64
		w     float64
		err   error
		i     int
	)
	for i = 0; i+1 < len(tour); i++ {
		if w, err = edgeCost(dist, tour[i], tour[i+1]); err != nil {
			return 0, err
		}
		if w > worst {
			worst = w
		}
	}

	return round1e9(worst), nil
}

// TourLength sums dist(tour[i], tour[i+1]) along the tour.
// Same contract and sentinels as BottleneckCost.
//
// Complexity: O(len(tour)).
func TourLength(dist matrix.Matrix, tour []int) (float64, error) {
	if dist == nil || len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}

	var (
		sum float64
		w   float64
		err error
		i   int
	)
	for i = 0; i+1 < len(tour); i++ {
		if w, err = edgeCost(dist, tour[i], tour[i+1]); err != nil {
			return 0, err
		}
		sum += w
	}

	return round1e9(sum), nil
}

// edgeCost fetches the weight for a single edge u→v with strict validation,
// keeping sentinel semantics centralized for costs and construction.
//
// Complexity: O(1).
func edgeCost(m matrix.Matrix, u, v int) (float64, error) {
	var (
		nr = m.Rows()
		nc = m.Cols()
	)
	if nr != nc || nr <= 0 {
		return 0, ErrNonSquare
	}
	if u < 0 || u >= nr || v < 0 || v >= nr {
		return 0, ErrDimensionMismatch
	}

	w, err := m.At(u, v)
	if err != nil {
		return 0, ErrDimensionMismatch
	}
	if math.IsNaN(w) {
		return 0, ErrDimensionMismatch
	}
	if math.IsInf(w, 0) {
		return 0, ErrIncompleteGraph
	}
	if w < 0 {
		return 0, ErrNegativeWeight
	}

	return w, nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
