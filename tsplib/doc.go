// Package tsplib reads planar TSPLIB-style instances and writes tours.
//
// Instance layout:
//
//	NAME : example            ┐
//	TYPE : TSP                │ HeaderLines (5) lines, skipped verbatim
//	COMMENT : ...             │
//	DIMENSION : 4             │
//	NODE_COORD_SECTION        ┘
//	1 0 0                     id x y, whitespace separated
//	2 0 1
//	...
//	EOF                       optional sentinel; end of input also terminates
//
// Tours are written as whitespace-separated integers on a single line.
package tsplib
