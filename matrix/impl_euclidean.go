// SPDX-License-Identifier: MIT

// Package matrix - Euclidean distance matrices from planar coordinates.
//
// Purpose:
//   - Build the full pairwise distance table consumed by tour heuristics.
//   - Compute each unordered pair once (upper triangle) and mirror it, so the
//     result is bitwise symmetric and the arithmetic is halved.
//
// Complexity:
//   - Time O(n²), Space O(n²).

package matrix

import (
	"fmt"
	"math"
)

const ctxEuclid = "NewEuclidean"

// NewEuclidean returns the n×n matrix D with D[i][j] = sqrt((xj-xi)² + (yj-yi)²)
// and D[i][i] = 0, where coords[i] = {x, y}.
//
// Behavior highlights:
//   - n == 0 yields a legal 0×0 matrix; n == 1 yields [[0]].
//   - Non-finite coordinates are rejected with ErrNaNInf (wrapped with the index).
//   - A pair whose coordinate difference overflows float64 is rejected with
//     ErrNaNInf (wrapped with the pair), so every stored entry is finite.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewEuclidean(coords [][2]float64) (*Dense, error) {
	var n = len(coords)

	// Reject non-finite input before any allocation.
	var i, j int
	for i = 0; i < n; i++ {
		if !isFinite(coords[i][0]) || !isFinite(coords[i][1]) {
			return nil, fmt.Errorf("%s: point %d: %w", ctxEuclid, i, ErrNaNInf)
		}
	}

	if n == 0 {
		return newDenseZeroOK(0, 0)
	}
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	// Fill the strict upper triangle and mirror; the diagonal stays zero from make().
	var d float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = math.Hypot(coords[j][0]-coords[i][0], coords[j][1]-coords[i][1])
			if !isFinite(d) {
				return nil, fmt.Errorf("%s: pair (%d,%d): %w", ctxEuclid, i, j, ErrNaNInf)
			}
			m.data[i*n+j] = d
			m.data[j*n+i] = d
		}
	}

	return m, nil
}

func isFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
