package containers

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// Cloner is implemented by element types that know how to duplicate
// themselves. Clone and CopyFrom use it instead of plain assignment.
type Cloner[T any] interface {
	Clone() T
}

func cloneElems[T any](src []T) []T {
	if len(src) == 0 {
		return nil
	}

	dst := make([]T, len(src))
	for i := range src {
		dst[i] = cloneElem(src[i])
	}
	return dst
}

func cloneElem[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}

// DeepClone is like Clone but also duplicates whatever the elements reference
// (slices, maps, pointed-to structs), so the result shares no memory with s.
func (s *FixedSequence[T]) DeepClone() (*FixedSequence[T], error) {
	if len(s.elems) == 0 {
		return new(FixedSequence[T]), nil
	}

	dst := make([]T, len(s.elems))
	for i := range s.elems {
		if err := copier.CopyWithOption(&dst[i], &s.elems[i], copier.Option{DeepCopy: true}); err != nil {
			return nil, fmt.Errorf("deep copy element %d: %w", i, err)
		}
	}
	return &FixedSequence[T]{elems: dst}, nil
}
