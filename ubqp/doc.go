// Package ubqp reformulates graph coloring as an Unconstrained Binary
// Quadratic Program over the arcs of the oriented complement graph.
//
// Construction (New, once per graph):
//
//  1. Every complement edge {u, v} becomes an arc. The endpoint with the
//     higher complement degree is the tail; on a tie the larger id is.
//     Arcs are numbered in (min, max) pair order.
//  2. Two arcs are linked when
//     - they share their tail,
//     - they share their head and their tails are adjacent in the graph, or
//     - the head of one is the tail of the other (a chain x→v→y).
//  3. Q[a][a] = -1 and Q[a][b] = 2 for linked arcs, 0 otherwise.
//
// A 0/1 vector x over arcs scores xᵀQx (each unordered pair once), which is
// -|x| + 2·(active linked pairs). A vector without active linked pairs
// (Penalty 0) describes V + Score colors.
//
// Encode maps a Coloring to a vector, Decode maps a vector back. State keeps
// a vector with its score, penalty, per-arc flip deltas and a bucket index
// ordered by delta, all exact under Flip.
package ubqp
