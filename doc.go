// Package gcol is a graph coloring toolkit: an incrementally maintained
// coloring state, greedy constructors and a family of tabu-search engines
// that shrink the number of colors under a time and turn budget.
//
// Packages:
//
//	graph/        immutable int-indexed graph, builder, DIMACS reader and writer
//	builder/      generators: cycle, path, star, wheel, complete, crown, Mycielski, queen, random
//	coloring/     Coloring with conflict matrix, penalty, move deltas and legal-color index
//	greedy/       initial colorings: random, constrained, deterministic, adaptive, DSatur
//	localsearch/  engines: partial_col, partial_ts, tabu_col, tabu_bucket and variants
//	ubqp/         UBQP reformulation over the complement line graph, bucketed flip state
//	budget/       search clock: global deadline, per-call sub-deadlines, Stop
//	progress/     per-improvement records and their CSV and klog recorders
//	config/       method configuration files
//	metrics/      Prometheus instrumentation of runs
//	ordset/       sorted int set
//	rnd/          seeded RNG and derived per-trajectory streams
//
// The gcol command (cmd/gcol) ties them together:
//
//	gcol gen queen --rows 8 --cols 8 -o queen8_8.col
//	gcol run queen8_8.col --method tabucol.yaml -k 9 --use-target
//
// A 4-cycle colored [0 0 1 1] has penalty 2:
//
//	0───1
//	│   │
//	3───2
//
// recoloring vertex 1 to color 1 and vertex 2 to color 0 gives [0 1 0 1],
// a legal 2-coloring.
package gcol
