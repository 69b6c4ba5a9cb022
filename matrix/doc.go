// Package matrix offers dense float64 matrices for distance-based heuristics.
//
// The matrix package provides:
//
//   - Matrix, a minimal interface (Rows, Cols, At, Set, Clone) that solvers
//     read distances through.
//   - Dense, a row-major implementation with bounds-checked accessors and a
//     finite-only numeric policy.
//   - NewEuclidean, which turns planar coordinates into a symmetric,
//     zero-diagonal distance matrix in O(n²).
//   - Validators (ValidateSquareNonNil, ValidateSymmetric, ValidateZeroDiagonal)
//     returning sentinel errors for errors.Is matching.
//
// Dense matrices cost O(n²) memory; they suit instances up to a few
// thousand points.
package matrix
