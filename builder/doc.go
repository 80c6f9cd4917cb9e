// Package builder generates deterministic coloring benchmark instances as
// *graph.Graph values.
//
// One orchestrator, BuildGraph(name, opts, cons...), resolves functional
// options into an immutable builderConfig and lays the constructors out as a
// disjoint union: constructor i owns the vertex block that follows the blocks
// of constructors 0..i-1, so a single call can assemble e.g. "a 5-cycle plus
// K4" with stable vertex numbering.
//
// Constructors:
//
//	Cycle(n)              C_n, χ = 2 or 3
//	Path(n)               P_n, χ = 2
//	Star(n)               K_{1,n-1}, χ = 2
//	Wheel(n)              C_{n-1} + hub, χ = 3 or 4
//	Complete(n)           K_n, χ = n
//	CompleteBipartite(a,b) K_{a,b}, χ = 2
//	Crown(n)              K_{n,n} minus a perfect matching, χ = 2 (hard for naive greedy)
//	Mycielski(k)          Mycielski graph M_k, triangle-free with χ = k
//	Queen(r,c)            queen graph of an r×c board (DIMACS queenR_C family)
//	RandomSparse(n,p)     Erdős–Rényi G(n,p), requires WithSeed/WithRand
//
// Determinism: same options, seed and constructor order ⇒ identical graphs.
// Safety: constructors validate parameters and return sentinel errors; only
// option constructors (WithX) panic on meaningless input.
package builder
