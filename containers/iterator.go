package containers

import "fmt"

// Iterator is a cursor over a FixedSequence's storage. It does not own the
// storage and does not keep the sequence's elements alive past a reassignment:
// once the sequence is copied over, moved, swapped, decoded into or released,
// dereferencing the iterator panics.
//
// The zero value is unbound. Only Equal and assignment are defined on an
// unbound iterator.
type Iterator[T any] struct {
	seq *FixedSequence[T]
	pos int
	gen uint64
}

func (it Iterator[T]) Bound() bool {
	return it.seq != nil
}

// Valid reports whether it is bound to a sequence whose storage has not been
// replaced since the iterator was created.
func (it Iterator[T]) Valid() bool {
	return it.seq != nil && it.seq.gen == it.gen
}

// Pos returns the position of it within its sequence.
func (it Iterator[T]) Pos() int {
	return it.pos
}

// Add returns an iterator n positions further along. Negative n moves backwards.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.mustBeBound("add")
	it.pos += n
	return it
}

func (it Iterator[T]) Sub(n int) Iterator[T] {
	return it.Add(-n)
}

func (it Iterator[T]) Next() Iterator[T] {
	return it.Add(1)
}

func (it Iterator[T]) Prev() Iterator[T] {
	return it.Add(-1)
}

// Advance steps it forward by n in place.
func (it *Iterator[T]) Advance(n int) {
	it.mustBeBound("advance")
	it.pos += n
}

// Retreat steps it backwards by n in place.
func (it *Iterator[T]) Retreat(n int) {
	it.Advance(-n)
}

func (it *Iterator[T]) Inc() {
	it.Advance(1)
}

func (it *Iterator[T]) Dec() {
	it.Advance(-1)
}

// Ref returns a reference to the element under it. It panics with
// ErrInvalidIteratorUse when it is unbound, stale or outside [Begin, End).
func (it Iterator[T]) Ref() *T {
	it.mustBeBound("dereference")
	if it.seq.gen != it.gen {
		panic(fmt.Errorf("%w: dereference after the sequence was reassigned", ErrInvalidIteratorUse))
	}
	if it.pos < 0 || it.pos >= len(it.seq.elems) {
		panic(fmt.Errorf("%w: dereference at position %d, length %d", ErrInvalidIteratorUse, it.pos, len(it.seq.elems)))
	}
	return &it.seq.elems[it.pos]
}

func (it Iterator[T]) Value() T {
	return *it.Ref()
}

// At returns the element offset positions from it, leaving it where it is.
func (it Iterator[T]) At(offset int) T {
	return it.Add(offset).Value()
}

// Equal reports whether it and other refer to the same slot of the same
// sequence. Two unbound iterators are equal.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.seq == other.seq && (it.seq == nil || it.pos == other.pos)
}

// Compare returns -1, 0 or +1 depending on whether it is before, at or after
// other. Both must be bound to the same sequence.
func (it Iterator[T]) Compare(other Iterator[T]) int {
	d := it.Distance(other)
	switch {
	case d > 0:
		return -1
	case d < 0:
		return 1
	default:
		return 0
	}
}

func (it Iterator[T]) Less(other Iterator[T]) bool         { return it.Compare(other) < 0 }
func (it Iterator[T]) LessEqual(other Iterator[T]) bool    { return it.Compare(other) <= 0 }
func (it Iterator[T]) Greater(other Iterator[T]) bool      { return it.Compare(other) > 0 }
func (it Iterator[T]) GreaterEqual(other Iterator[T]) bool { return it.Compare(other) >= 0 }

// Distance returns the number of steps from it to other.
func (it Iterator[T]) Distance(other Iterator[T]) int {
	it.mustBeBound("compare")
	other.mustBeBound("compare")
	if it.seq != other.seq {
		panic(fmt.Errorf("%w: iterators belong to different sequences", ErrInvalidIteratorUse))
	}
	return other.pos - it.pos
}

func (it Iterator[T]) mustBeBound(op string) {
	if it.seq == nil {
		panic(fmt.Errorf("%w: %s on unbound iterator", ErrInvalidIteratorUse, op))
	}
}
