// Package nntour builds closed tours over planar point sets that keep the
// largest single edge (the bottleneck) small.
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/     - Matrix interface, Dense storage, Euclidean distance builder, validators
//	tsp/        - alpha-weighted nearest-neighbor tours, bottleneck scoring, trial driver
//	tsplib/     - instance reader (5-line header, "id x y" records, EOF) and tour writer
//	cmd/nntour/ - command line front end with YAML config and structured logging
//
// Quick ASCII example:
//
//	1───2
//	│   │
//	0───3
//
// The unit square above has bottleneck 1: every perimeter edge has length 1.
//
//	go install github.com/katalvlaran/nntour/cmd/nntour@latest
package nntour
