package ubqp

import (
	"fmt"
	"slices"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/soniakeys/bits"

	"github.com/katalvlaran/gcol/ordset"
)

// State is a 0/1 vector over the arcs of a Graph together with its score,
// penalty, flip deltas and delta buckets.
//
// delta[a] is the score change of flipping a:
//
//	x[a] = 0:  Q[a][a] + Σ_{b linked to a} Q[a][b]·x[b]
//	x[a] = 1:  the negation of the above
//
// Buckets map every delta value currently held by some arc to the ascending
// set of those arcs; empty buckets are removed.
type State struct {
	q       *Graph
	x       bits.Bits
	score   int
	penalty int
	delta   []int
	buckets *redblacktree.Tree // int → *ordset.Set
}

// NewState copies x and computes every maintained field.
//
// Errors: ErrLengthMismatch.
// Complexity: O(arcs + links + arcs·log(buckets)).
func NewState(q *Graph, x bits.Bits) (*State, error) {
	if x.Num != len(q.arcs) {
		return nil, fmt.Errorf("NewState: %d bits, %d arcs: %w", x.Num, len(q.arcs), ErrLengthMismatch)
	}
	s := &State{
		q:       q,
		x:       bits.New(x.Num),
		delta:   make([]int, len(q.arcs)),
		buckets: redblacktree.NewWithIntComparator(),
	}
	s.x.Set(x)
	s.score = q.Score(s.x)
	s.penalty = q.Penalty(s.x)
	for a := range s.delta {
		s.delta[a] = s.freshDelta(a)
		s.bucket(s.delta[a]).Insert(a)
	}
	return s, nil
}

// Graph returns the UBQP structure.
func (s *State) Graph() *Graph { return s.q }

// Score returns xᵀQx.
func (s *State) Score() int { return s.score }

// Penalty returns the number of active linked pairs.
func (s *State) Penalty() int { return s.penalty }

// Colors returns V + Score, the color count x stands for when Penalty is 0.
func (s *State) Colors() int { return s.q.source.Order() + s.score }

// Delta returns the score change of flipping a.
func (s *State) Delta(a int) int { return s.delta[a] }

// Active reports whether arc a is set.
func (s *State) Active(a int) bool { return s.x.Bit(a) == 1 }

// Vector returns a copy of x.
func (s *State) Vector() bits.Bits {
	out := bits.New(s.x.Num)
	out.Set(s.x)
	return out
}

// Flip toggles arc a and updates score, penalty, the deltas of a and of every
// arc linked to it, and their buckets.
//
// Complexity: O(links(a) · (log buckets + bucket size)).
func (s *State) Flip(a int) {
	old := s.delta[a]
	s.score += old
	s.moveDelta(a, -old)

	xa := s.x.Bit(a)
	for _, b := range s.q.links[a] {
		xb := s.x.Bit(b)
		if xa == xb {
			s.moveDelta(b, s.delta[b]+2)
		} else {
			s.moveDelta(b, s.delta[b]-2)
		}
		if xb == 1 {
			if xa == 1 {
				s.penalty--
			} else {
				s.penalty++
			}
		}
	}
	s.x.SetBit(a, 1-xa)
}

// Buckets calls fn for every non-empty bucket in ascending delta order until
// fn returns false. arcs is ascending and must not be kept or modified; fn
// must not call Flip.
func (s *State) Buckets(fn func(delta int, arcs []int) bool) {
	it := s.buckets.Iterator()
	for it.Next() {
		if !fn(it.Key().(int), it.Value().(*ordset.Set).Items()) {
			return
		}
	}
}

// NumBuckets returns the number of distinct delta values.
func (s *State) NumBuckets() int { return s.buckets.Size() }

// CheckInvariants recomputes score, penalty, every delta and every bucket
// from x and returns an ErrInvariant-wrapped description of the first
// mismatch, or nil.
//
// Complexity: O(arcs + links).
func (s *State) CheckInvariants() error {
	if score := s.q.Score(s.x); score != s.score {
		return violation("score=%d, want %d", s.score, score)
	}
	if pen := s.q.Penalty(s.x); pen != s.penalty {
		return violation("penalty=%d, want %d", s.penalty, pen)
	}
	want := make(map[int][]int)
	for a := range s.delta {
		d := s.freshDelta(a)
		if s.delta[a] != d {
			return violation("delta[%d]=%d, want %d", a, s.delta[a], d)
		}
		want[d] = append(want[d], a)
	}
	if s.buckets.Size() != len(want) {
		return violation("%d buckets, want %d", s.buckets.Size(), len(want))
	}
	var err error
	s.Buckets(func(delta int, arcs []int) bool {
		if !slices.Equal(arcs, want[delta]) {
			err = violation("bucket[%d]=%v, want %v", delta, arcs, want[delta])
			return false
		}
		return true
	})
	return err
}

func (s *State) freshDelta(a int) int {
	d := -1
	for _, b := range s.q.links[a] {
		d += 2 * s.x.Bit(b)
	}
	if s.x.Bit(a) == 1 {
		d = -d
	}
	return d
}

// moveDelta sets delta[a] to d and moves a between buckets.
func (s *State) moveDelta(a, d int) {
	old := s.delta[a]
	if old == d {
		return
	}
	set := s.bucket(old)
	set.Erase(a)
	if set.Empty() {
		s.buckets.Remove(old)
	}
	s.delta[a] = d
	s.bucket(d).Insert(a)
}

// bucket returns the set for delta d, creating it when missing.
func (s *State) bucket(d int) *ordset.Set {
	if v, found := s.buckets.Get(d); found {
		return v.(*ordset.Set)
	}
	set := &ordset.Set{}
	s.buckets.Put(d, set)
	return set
}

func violation(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...))
}
