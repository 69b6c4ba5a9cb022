// Package tsp - tour utilities.
//
// Helpers that operate purely on tour structure (index sequences):
//   - ValidateTour: enforce Hamiltonian cycle invariants.
//   - TourIDs: translate positions to city identifiers for reporting.
package tsp

// ValidateTour enforces Hamiltonian-cycle invariants:
//
//	len(tour) == n+1, tour[0]==tour[n]==start,
//	each vertex v∈[0..n-1] appears exactly once in positions [0..n-1].
//
// Returns nil if valid.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 {
		return ErrDimensionMismatch
	}
	if len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if tour[0] != start || tour[n] != start {
		return ErrDimensionMismatch
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// TourIDs maps every position of tour to cities[pos].ID.
// Returns ErrDimensionMismatch when a position is outside cities.
//
// Complexity: O(len(tour)).
func TourIDs(tour []int, cities []City) ([]int, error) {
	out := make([]int, len(tour))

	var i, p int
	for i, p = range tour {
		if p < 0 || p >= len(cities) {
			return nil, ErrDimensionMismatch
		}
		out[i] = cities[p].ID
	}

	return out, nil
}
