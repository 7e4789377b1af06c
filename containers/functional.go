package containers

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/sourcegraph/conc/iter"
)

// Map returns a new sequence holding f applied to every element of s, in order.
func Map[T, U any](s *FixedSequence[T], f func(T) U) *FixedSequence[U] {
	out := &FixedSequence[U]{}
	if len(s.elems) == 0 {
		return out
	}

	out.elems = make([]U, len(s.elems))
	for i, e := range s.elems {
		out.elems[i] = f(e)
	}
	return out
}

// ParallelMap is Map with f evaluated concurrently. s is only read, so it is
// safe as long as nothing mutates s until ParallelMap returns.
func ParallelMap[T, U any](s *FixedSequence[T], f func(T) U) *FixedSequence[U] {
	if len(s.elems) == 0 {
		return &FixedSequence[U]{}
	}

	return &FixedSequence[U]{
		elems: iter.Map(s.elems, func(e *T) U { return f(*e) }),
	}
}

// Select returns the set of positions whose element satisfies pred.
func (s *FixedSequence[T]) Select(pred func(T) bool) *bitset.BitSet {
	mask := bitset.New(uint(len(s.elems)))
	for i, e := range s.elems {
		if pred(e) {
			mask.Set(uint(i))
		}
	}
	return mask
}

// Compact returns a new sequence holding, in order, the elements whose
// positions are set in mask. Positions at or beyond Len() are ignored.
func (s *FixedSequence[T]) Compact(mask *bitset.BitSet) *FixedSequence[T] {
	var selected []T
	for i, ok := mask.NextSet(0); ok && i < uint(len(s.elems)); i, ok = mask.NextSet(i + 1) {
		selected = append(selected, cloneElem(s.elems[i]))
	}
	return &FixedSequence[T]{elems: selected}
}
