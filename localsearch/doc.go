// Package localsearch implements the tabu-search engines that improve a
// coloring under a time and turn budget.
//
// Engines (registry names):
//
//	none                   returns the start coloring
//	partial_col            PartialCol: partial-legal colorings, grenade moves
//	partial_col_optimized  PartialCol scanning cached best colors first
//	partial_ts             six-move priority cascade on partial-legal colorings
//	tabu_col               TabuCol: complete colorings, single recolors, penalty deltas
//	tabu_col_optimized     TabuCol scanning the conflicting set and cached best colors
//	tabu_bucket            delta-bucketed tabu search on the UBQP reformulation
//
// Every coloring engine runs the same two-level loop. The outer loop shrinks
// a legal coloring by one color (minimizing mode) or stops once a legal
// coloring with at most Target colors exists (target mode). The inner loop
// applies one move per turn until its best coloring is legal or the budget
// runs out. Partial engines keep the coloring free of conflicts and minimize
// the number of uncolored vertices; tabu engines keep every vertex colored
// and minimize the penalty.
//
// Ties between equally scored candidate moves are broken uniformly at random
// with SearchContext.Rng. Result.BestLegal never regresses during a run: it
// is replaced only by a legal coloring with no more colors.
//
// Budget: SearchContext.Clock (global deadline, Stop), Params.MaxTime (per
// call), Params.MaxIterations (turns per inner loop) and ctx cancellation are
// checked at the top of every turn. A move always completes before the check.
package localsearch
