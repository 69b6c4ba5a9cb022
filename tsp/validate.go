// Package tsp - validation utilities shared by the tour builder and the driver.
//
// This file contains small helpers that:
//  1. Validate Options (trial and worker counts).
//  2. Validate distance matrices (shape, diagonal, negativity, ∞, symmetry).
//  3. Validate the blending weight alpha.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
package tsp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/nntour/matrix"
)

// symTol is a structural tolerance for symmetry/diagonal checks in matrices.
const symTol = 1e-12

// validateOptions checks Options without referencing matrices.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.Trials < 1 {
		return ErrInvalidTrials
	}
	if opts.Workers < 0 {
		return ErrInvalidWorkers
	}

	return nil
}

// validateAlpha enforces 0 ≤ alpha < MaxAlpha; NaN fails every comparison
// and is therefore rejected too.
//
// Complexity: O(1).
func validateAlpha(alpha float64) error {
	if !(alpha >= 0 && alpha < MaxAlpha) {
		return ErrAlphaOutOfRange
	}

	return nil
}

// validateShape checks non-nil, square and non-empty; returns n.
//
// Complexity: O(1).
func validateShape(dist matrix.Matrix) (int, error) {
	if dist == nil {
		return 0, ErrDimensionMismatch
	}
	var (
		nr = dist.Rows()
		nc = dist.Cols()
	)
	if nr != nc {
		return 0, ErrNonSquare
	}
	if nr == 0 {
		return 0, ErrEmptyInstance
	}

	return nr, nil
}

// validateDistMatrix performs full matrix validation:
//   - non-nil, square, n ≥ 1,
//   - diagonal ≈ 0 (|a_ii| ≤ symTol) via matrix.ValidateZeroDiagonal,
//   - off-diagonal finite and non-negative (edgeCost),
//   - |a_ij − a_ji| ≤ symTol via matrix.ValidateSymmetric.
//
// Matrix-package failures are wrapped together with the matching tsp
// sentinel, so errors.Is matches either. Returns n (matrix order) on success.
//
// Complexity: O(n²).
func validateDistMatrix(dist matrix.Matrix) (int, error) {
	n, err := validateShape(dist)
	if err != nil {
		return 0, err
	}

	if err = matrix.ValidateZeroDiagonal(dist, symTol); err != nil {
		return 0, fromMatrix(err, ErrNonZeroDiagonal)
	}

	// Edge pass first: ±Inf and negatives report their own sentinels before symmetry.
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if _, err = edgeCost(dist, i, j); err != nil {
				return 0, err
			}
		}
	}

	if err = matrix.ValidateSymmetric(dist, symTol); err != nil {
		return 0, fromMatrix(err, ErrAsymmetry)
	}

	return n, nil
}

// fromMatrix pairs a matrix validator error with its tsp sentinel. Only the
// violation named by want maps to want; anything else is a malformed input.
func fromMatrix(err, want error) error {
	switch {
	case errors.Is(err, matrix.ErrNonZeroDiagonal), errors.Is(err, matrix.ErrAsymmetry):
		return fmt.Errorf("%w: %w", want, err)
	default:
		return fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
	}
}
