// Package graph holds the immutable, dense, integer-indexed graph that every
// coloring component reads.
//
// Vertices are 0..Order()-1. A Graph is built once (from a Builder, from an
// edge list, or from a DIMACS file) and never mutated afterwards, so a single
// *Graph is shared read-only by any number of concurrent search trajectories.
//
// Representation:
//   - neighbors[v]: ascending, duplicate-free neighbor ids (hot path of every
//     incremental update in package coloring).
//   - adjacency[v]: one bitset row per vertex for O(1) Adjacent tests.
//   - degrees[v]:   cached len(neighbors[v]).
//
// Invariants: the neighbor relation is symmetric and loop-free.
//
// DIMACS ingest (ReadDIMACS / LoadDIMACS):
//
//	c <comment>          comment line, ignored
//	p <format> <n> <m>   problem line: allocates n vertices (m is informative)
//	e <u> <v>            undirected edge, 1-indexed, deduplicated, order-normalized
//
// Any other "<tag> <ints...>" line is skipped. Edges before the problem line,
// out-of-range endpoints and self-loops are load errors.
package graph
