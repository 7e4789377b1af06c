package containers

import (
	"fmt"
	"iter"
	"strings"
)

// FixedSequence owns a contiguous run of exactly Len() elements of type T.
// The zero value is an empty, usable sequence.
type FixedSequence[T any] struct {
	elems []T
	// gen changes every time elems is replaced or dropped. Iterators record it on
	// creation and refuse to dereference once it moves on.
	gen uint64
}

// New returns a sequence of length zero-valued elements.
func New[T any](length int) (*FixedSequence[T], error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrInvalidSize, length)
	}

	s := new(FixedSequence[T])
	if length > 0 {
		s.elems = make([]T, length)
	}
	return s, nil
}

func MustNew[T any](length int) *FixedSequence[T] {
	s, err := New[T](length)
	if err != nil {
		panic(err)
	}
	return s
}

// FromSlice returns a sequence holding a copy of vals.
func FromSlice[T any](vals ...T) *FixedSequence[T] {
	s := new(FixedSequence[T])
	if len(vals) > 0 {
		s.elems = make([]T, len(vals))
		copy(s.elems, vals)
	}
	return s
}

func (s *FixedSequence[T]) Len() int {
	return len(s.elems)
}

func (s *FixedSequence[T]) Empty() bool {
	return len(s.elems) == 0
}

// Index returns a reference to element i without checking i against Len().
// Out-of-range indices trip the runtime bounds check.
func (s *FixedSequence[T]) Index(i int) *T {
	return &s.elems[i]
}

// Get returns element i. Like Index, i is not validated.
func (s *FixedSequence[T]) Get(i int) T {
	return s.elems[i]
}

// Set overwrites element i. Like Index, i is not validated.
func (s *FixedSequence[T]) Set(i int, v T) {
	s.elems[i] = v
}

// At returns a reference to element i, or ErrIndexOutOfRange if i is outside [0, Len()).
func (s *FixedSequence[T]) At(i int) (*T, error) {
	if err := s.checkIndex(i); err != nil {
		return nil, err
	}
	return &s.elems[i], nil
}

// Load is the checked value form of Get.
func (s *FixedSequence[T]) Load(i int) (T, error) {
	if err := s.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return s.elems[i], nil
}

// Store is the checked form of Set.
func (s *FixedSequence[T]) Store(i int, v T) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.elems[i] = v
	return nil
}

func (s *FixedSequence[T]) checkIndex(i int) error {
	if i < 0 || i >= len(s.elems) {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(s.elems))
	}
	return nil
}

// Front returns a reference to the first element. The sequence must not be empty.
func (s *FixedSequence[T]) Front() *T {
	return &s.elems[0]
}

// Back returns a reference to the last element. The sequence must not be empty.
func (s *FixedSequence[T]) Back() *T {
	return &s.elems[len(s.elems)-1]
}

// Data returns the underlying storage, or nil when the sequence is empty.
// The returned slice aliases the sequence and is invalidated by the same
// operations that invalidate iterators.
func (s *FixedSequence[T]) Data() []T {
	if len(s.elems) == 0 {
		return nil
	}
	return s.elems
}

func (s *FixedSequence[T]) Fill(v T) {
	for i := range s.elems {
		s.elems[i] = v
	}
}

// Clone returns a sequence with its own copy of every element. Elements that
// implement Cloner are duplicated through it, everything else is assigned.
func (s *FixedSequence[T]) Clone() *FixedSequence[T] {
	return &FixedSequence[T]{elems: cloneElems(s.elems)}
}

// CopyFrom replaces the contents of s with a copy of other's elements.
// Copying a sequence onto itself leaves it unchanged.
func (s *FixedSequence[T]) CopyFrom(other *FixedSequence[T]) {
	if s == other {
		return
	}
	// build the copy before dropping the old storage
	elems := cloneElems(other.elems)
	s.replace(elems)
}

// Move returns a new sequence that takes ownership of other's storage.
// other is left empty.
func Move[T any](other *FixedSequence[T]) *FixedSequence[T] {
	s := new(FixedSequence[T])
	s.MoveFrom(other)
	return s
}

// MoveFrom transfers other's storage into s without copying elements and
// leaves other empty. Moving a sequence into itself is a no-op.
func (s *FixedSequence[T]) MoveFrom(other *FixedSequence[T]) {
	if s == other {
		return
	}
	elems := other.elems
	other.replace(nil)
	s.replace(elems)
}

// Swap exchanges the storage of s and other.
func (s *FixedSequence[T]) Swap(other *FixedSequence[T]) {
	if s == other {
		return
	}
	mine, theirs := s.elems, other.elems
	s.replace(theirs)
	other.replace(mine)
}

// Release drops the storage. The sequence stays usable as an empty sequence
// and releasing it again has no further effect.
func (s *FixedSequence[T]) Release() {
	if s.elems == nil {
		return
	}
	s.replace(nil)
}

func (s *FixedSequence[T]) replace(elems []T) {
	if len(elems) == 0 {
		elems = nil
	}
	s.elems = elems
	s.gen++
}

// Begin returns an iterator positioned at the first element.
func (s *FixedSequence[T]) Begin() Iterator[T] {
	return Iterator[T]{seq: s, pos: 0, gen: s.gen}
}

// End returns an iterator positioned one past the last element.
func (s *FixedSequence[T]) End() Iterator[T] {
	return Iterator[T]{seq: s, pos: len(s.elems), gen: s.gen}
}

// IteratorAt returns an iterator at pos, which may be anywhere in [0, Len()].
func (s *FixedSequence[T]) IteratorAt(pos int) (Iterator[T], error) {
	if pos < 0 || pos > len(s.elems) {
		return Iterator[T]{}, fmt.Errorf("%w: position %d, length %d", ErrIndexOutOfRange, pos, len(s.elems))
	}
	return Iterator[T]{seq: s, pos: pos, gen: s.gen}, nil
}

// All yields index/value pairs in storage order.
func (s *FixedSequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.elems {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values yields the elements in storage order.
func (s *FixedSequence[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.elems {
			if !yield(v) {
				return
			}
		}
	}
}

func (s *FixedSequence[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range s.elems {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}
