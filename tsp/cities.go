package tsp

import "github.com/katalvlaran/nntour/matrix"

// DistanceMatrix builds the n×n Euclidean distance matrix of cities indexed by
// position. An empty slice yields a 0×0 matrix, which the tour builder and
// the driver reject with ErrEmptyInstance.
//
// Errors: matrix.ErrNaNInf for non-finite coordinates.
//
// Complexity: O(n²) time and space.
func DistanceMatrix(cities []City) (*matrix.Dense, error) {
	coords := make([][2]float64, len(cities))
	for i, c := range cities {
		coords[i] = [2]float64{c.X, c.Y}
	}

	return matrix.NewEuclidean(coords)
}
