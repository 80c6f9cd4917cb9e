// Package greedy builds initial colorings. Every Strategy completes a
// (possibly partially colored) coloring: vertices that already hold a color
// keep it, and every uncolored vertex receives one without creating new
// conflicts.
//
// Strategies, by registry name:
//
//	random           uniform among the conflict-free colors plus a new color
//	constrained      uniform among the conflict-free colors, new only if none
//	deterministic    first conflict-free color, vertices in id order
//	deterministic_2  vertices by degree desc; fill one color at a time
//	adaptive         as deterministic_2, degrees shrink as neighbors get colored
//	dsatur           Brélaz DSatur: saturation desc, uncolored degree desc, id desc
//
// Use Color(c, name, opts...) for a one-shot call, or New(name) to hold a
// Strategy value.
package greedy
