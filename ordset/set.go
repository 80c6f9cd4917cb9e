package ordset

import "slices"

// Set is an ordered set of ints. The zero value is an empty set ready to use.
type Set struct {
	items []int
}

// New returns an empty Set with room for capacity items.
func New(capacity int) Set {
	if capacity < 0 {
		capacity = 0
	}
	return Set{items: make([]int, 0, capacity)}
}

// Range returns the set {0, 1, ..., n-1}.
//
// Complexity: O(n).
func Range(n int) Set {
	s := New(n)
	var i int
	for i = 0; i < n; i++ {
		s.items = append(s.items, i)
	}
	return s
}

// Of returns a set holding the given values (duplicates collapse).
//
// Complexity: O(n log n).
func Of(values ...int) Set {
	s := Set{items: slices.Clone(values)}
	slices.Sort(s.items)
	s.items = slices.Compact(s.items)
	return s
}

// Insert adds x and reports whether it was absent.
func (s *Set) Insert(x int) bool {
	i, found := slices.BinarySearch(s.items, x)
	if found {
		return false
	}
	s.items = slices.Insert(s.items, i, x)
	return true
}

// Erase removes x and reports whether it was present.
func (s *Set) Erase(x int) bool {
	i, found := slices.BinarySearch(s.items, x)
	if !found {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

// Contains reports whether x is in the set.
func (s Set) Contains(x int) bool {
	_, found := slices.BinarySearch(s.items, x)
	return found
}

// Len returns the number of items.
func (s Set) Len() int { return len(s.items) }

// Empty reports whether the set has no items.
func (s Set) Empty() bool { return len(s.items) == 0 }

// At returns the i-th smallest item.
func (s Set) At(i int) int { return s.items[i] }

// Items returns the items in ascending order. The slice aliases the set and
// must not be modified or retained across mutations.
func (s Set) Items() []int { return s.items }

// Clear removes every item, keeping capacity.
func (s *Set) Clear() { s.items = s.items[:0] }

// Clone returns an independent copy.
func (s Set) Clone() Set { return Set{items: slices.Clone(s.items)} }

// Equal reports whether both sets hold the same items.
func (s Set) Equal(o Set) bool { return slices.Equal(s.items, o.items) }
