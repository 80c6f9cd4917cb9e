// Package ordset provides Set, an ordered set of small non-negative integers
// backed by a sorted slice.
//
// The coloring state keeps several vertex and color sets (uncolored
// vertices, conflicting vertices, per-vertex legal colors) whose iteration
// order must be deterministic for a fixed seed. Set documents that contract
// once:
//
//   - Iteration order is ascending value order, independent of the order in
//     which values were inserted.
//   - Contains is O(log n) (binary search); Insert and Erase are O(log n)
//     search plus an O(n) shift.
//   - Items returns a read-only view into the backing slice; it is valid until
//     the next mutation.
//
// Set is not safe for concurrent mutation. Each search trajectory owns its
// sets exclusively.
package ordset
