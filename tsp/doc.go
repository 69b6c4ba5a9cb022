// Package tsp builds closed tours over planar point sets and scores them by
// their bottleneck: the largest single edge of the cycle.
//
// It includes:
//
//   - DistanceMatrix - Euclidean n×n matrix of cities by position (O(n²)).
//
//   - NearestNeighborAlpha - greedy construction from position 0 where the next
//     city minimizes (1-alpha)·d(current,j) + alpha·d(j,0).
//     Complexity: O(n²) per tour, memory O(n).
//
//   - RunTrials - k independent constructions with alphas drawn uniformly
//     from [0, 0.5), reporting best, worst and mean bottleneck plus mean
//     construction time.
//
//   - BottleneckCost, TourLength, ValidateTour - tour helpers.
//
// Tours are []int of length n+1 that start and end at position 0. The package
// never logs and never panics on user input; failures are sentinel errors
// from types.go.
//
// This is not a general TSP solver: there is no local search, no lower bound
// and total length is reported but never minimized.
package tsp
