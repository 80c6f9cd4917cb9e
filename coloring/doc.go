// Package coloring implements Coloring, the incremental, mutation-tracked
// state of a (possibly partial, possibly illegal) vertex coloring over a fixed
// *graph.Graph.
//
// 🚀 What it maintains exactly after every mutation:
//
//	colors[v]          color slot of v, or Uncolored
//	colorSize[c]       members of slot c; NumColors counts non-empty slots
//	uncolored          ordered set of uncolored vertices
//	conflicting        ordered set of colored vertices with a same-color neighbor
//	penalty            number of monochromatic edges (each edge counted once)
//	conflicts[c][v]    neighbors of v currently in slot c, for EVERY slot c
//
// Because conflicts is kept for every color, evaluating "move v to c" is O(1)
// instead of O(degree). Optional derived indices are switched on by the engine
// that needs them and are then kept exact by every mutation:
//
//	EnableDeltas       delta[c][v] = conflicts[c][v] - conflicts[color(v)][v],
//	                   bestDelta[v] and bestColors[v] (argmin set over all slots)
//	EnableLegalColors  legalColors[v] = {c ≠ color(v) : conflicts[c][v] == 0}
//
// Mutations:
//
//	Assign(v, c|NewColor)   uncolored → colored, O(deg)
//	Unassign(v)             exact inverse of Assign, O(deg)
//	Recolor(v, c)           colored → colored, O(deg) plus O(k) per same-color neighbor
//	                        when deltas are maintained; returns the vacated color
//	GrenadeMove(v, c)       force uncolored v into c, evicting neighbors in c
//	GrenadeLegal(v, c, rng) same, but evicted neighbors with a legal color move there
//
// Color slots are dense ids 0..Slots()-1. Emptied slots stay allocated (and
// remain valid Recolor targets) until a reduction rebuilds the coloring.
//
// CheckInvariants recomputes every field from colors and the graph and reports
// the first mismatch; it is O(V·k + E) and meant for tests and paranoid runs.
//
// Concurrency: a Coloring is owned by one trajectory. Distinct Colorings over
// the same Graph may be mutated concurrently.
package coloring
