// Package rnd centralizes deterministic random generation for the search
// engines and the greedy constructors.
//
// Goals:
//   - Determinism: same seed ⇒ identical trajectories on every platform.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Independence: parallel trajectories draw from derived streams, never from
//     a shared *rand.Rand.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use DeriveSeed to give every parallel trajectory its own seed.
package rnd

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// FromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func FromSeed(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = DefaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64 finalizer, so that neighbouring stream ids yield
// uncorrelated seeds.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Shuffle performs an in-place Fisher–Yates shuffle of a.
// If r==nil, the default deterministic stream is used.
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle(a []int, r *rand.Rand) {
	var n int
	n = len(a)
	if n <= 1 {
		return
	}
	if r == nil {
		r = FromSeed(0)
	}

	var i, j int
	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Perm returns a permutation of 0..n-1 (nil for n<=0).
//
// Complexity: O(n) time, O(n) space.
func Perm(n int, r *rand.Rand) []int {
	if n <= 0 {
		return nil
	}
	p := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	Shuffle(p, r)
	return p
}

// Pick returns a uniformly chosen element of a. a must be non-empty.
func Pick(a []int, r *rand.Rand) int {
	return a[r.Intn(len(a))]
}

// Between returns a uniform integer in the closed range [lo, hi].
// If hi < lo, lo is returned.
func Between(lo, hi int, r *rand.Rand) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}
