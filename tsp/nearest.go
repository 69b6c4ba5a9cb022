// Package tsp - alpha-weighted nearest-neighbor construction.
//
// Starting at the origin, the builder repeatedly moves to the unvisited city j
// minimizing
//
//	score(j) = (1-alpha)·d(current, j) + alpha·d(j, origin)
//
// so a larger alpha favors candidates that keep the way home short, which
// tends to lower the largest edge of the closed tour. alpha == 0 is plain
// nearest neighbor.
//
// Determinism:
//   - Candidates are scanned in increasing position order and only a strictly
//     smaller score replaces the incumbent, so exact ties go to the lowest position.
//   - No randomness inside: the caller supplies alpha (see DrawAlpha).
package tsp

import "github.com/katalvlaran/nntour/matrix"

// NearestNeighborAlpha builds one closed tour [0, …, 0] over all n positions
// of dist using the alpha-weighted selection rule.
//
// Contracts:
//   - dist is square with n ≥ 1; it is only read, never written.
//   - 0 ≤ alpha < MaxAlpha.
//
// Errors: ErrEmptyInstance, ErrNonSquare, ErrDimensionMismatch (nil matrix, NaN),
// ErrIncompleteGraph (±Inf), ErrNegativeWeight, ErrAlphaOutOfRange.
//
// Complexity: O(n²) time (n-1 steps, each an O(n) scan plus an O(n) removal),
// O(n) space.
func NearestNeighborAlpha(dist matrix.Matrix, alpha float64) ([]int, error) {
	if err := validateAlpha(alpha); err != nil {
		return nil, err
	}
	n, err := validateShape(dist)
	if err != nil {
		return nil, err
	}

	tour := make([]int, 0, n+1)
	tour = append(tour, Origin)
	if n == 1 {
		return append(tour, Origin), nil
	}

	// Distances back to the origin never change; read them once.
	home := make([]float64, n)
	// Unvisited positions, kept ascending so exact ties resolve to the lowest index.
	unvisited := make([]int, 0, n-1)

	var j int
	for j = 1; j < n; j++ {
		if home[j], err = edgeCost(dist, j, Origin); err != nil {
			return nil, err
		}
		unvisited = append(unvisited, j)
	}

	var (
		current = Origin
		keep    = 1 - alpha
		k       int     // slot of the incumbent in unvisited
		best    float64 // incumbent score
		score   float64
		d       float64
		s       int
	)
	for len(unvisited) > 0 {
		k = -1
		for s, j = range unvisited {
			if d, err = edgeCost(dist, current, j); err != nil {
				return nil, err
			}
			score = keep*d + alpha*home[j]
			if k < 0 || score < best {
				k, best = s, score
			}
		}

		current = unvisited[k]
		tour = append(tour, current)
		// Order-preserving removal.
		copy(unvisited[k:], unvisited[k+1:])
		unvisited = unvisited[:len(unvisited)-1]
	}

	return append(tour, Origin), nil
}
