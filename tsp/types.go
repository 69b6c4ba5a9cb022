// Package tsp - shared types and sentinel errors.
//
// All exported functions of this package return only the sentinels below
// (possibly wrapped with %w); callers match them with errors.Is.
package tsp

import (
	"errors"
	"time"
)

// Sentinel errors.
var (
	// ErrEmptyInstance is returned when there are no cities to tour (n == 0).
	ErrEmptyInstance = errors.New("tsp: empty instance")

	// ErrNonSquare indicates a distance matrix with Rows() != Cols().
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrDimensionMismatch indicates a malformed shape: nil inputs, tours of the
	// wrong length, out-of-range or repeated positions, NaN distances.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrStartOutOfRange indicates a start position outside [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrIncompleteGraph signals a ±Inf distance (missing edge).
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix")

	// ErrNegativeWeight signals a negative distance.
	ErrNegativeWeight = errors.New("tsp: negative distance")

	// ErrAsymmetry signals d(i,j) != d(j,i) beyond tolerance.
	ErrAsymmetry = errors.New("tsp: distance matrix is not symmetric")

	// ErrNonZeroDiagonal signals d(i,i) != 0 beyond tolerance.
	ErrNonZeroDiagonal = errors.New("tsp: distance matrix diagonal is not zero")

	// ErrAlphaOutOfRange is returned for alpha outside [0, MaxAlpha) or NaN.
	ErrAlphaOutOfRange = errors.New("tsp: alpha out of range")

	// ErrInvalidTrials is returned when Options.Trials < 1.
	ErrInvalidTrials = errors.New("tsp: trial count must be positive")

	// ErrInvalidWorkers is returned when Options.Workers < 0.
	ErrInvalidWorkers = errors.New("tsp: worker count must be non-negative")
)

const (
	// MaxAlpha is the exclusive upper bound of the blending weight.
	MaxAlpha = 0.5

	// Origin is the fixed start and end position of every tour.
	Origin = 0

	// DefaultTrials is the number of independent constructions per run.
	DefaultTrials = 5
)

// City is one input point. Its position (index in load order) is what
// matrices and tours use; ID is kept only for reporting.
type City struct {
	ID int
	X  float64
	Y  float64
}

// TrialResult records one independent construction.
type TrialResult struct {
	// Trial is the zero-based execution index.
	Trial int

	// Alpha is the blending weight drawn for this trial.
	Alpha float64

	// Tour is the closed tour of positions: len == n+1, Tour[0] == Tour[n] == 0.
	Tour []int

	// Bottleneck is the largest edge of Tour (the objective).
	Bottleneck float64

	// Length is the total length of Tour; reported, never optimized.
	Length float64

	// Elapsed brackets only the tour construction call.
	Elapsed time.Duration
}

// Report summarizes a run of trials.
type Report struct {
	// Trials holds one result per trial in execution order.
	Trials []TrialResult

	// Best is the index in Trials of the first trial with the minimum bottleneck.
	Best int

	BestCost   float64
	WorstCost  float64
	MeanCost   float64
	StdDevCost float64 // population standard deviation

	MeanElapsed time.Duration
}

// BestTrial returns Trials[Best].
func (r Report) BestTrial() TrialResult { return r.Trials[r.Best] }
