package containers_test

import (
	"errors"
	"testing"

	"github.com/NethermindEth/fixedseq/containers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireIteratorPanic asserts that f panics with an error wrapping ErrInvalidIteratorUse.
func requireIteratorPanic(t *testing.T, f func()) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, containers.ErrInvalidIteratorUse), "unexpected panic: %v", err)
	}()
	f()
}

func TestIteration(t *testing.T) {
	s := containers.FromSlice(1, 2, 3, 4, 5)

	var visited []int
	for it := s.Begin(); !it.Equal(s.End()); it.Inc() {
		visited = append(visited, it.Value())
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, visited)
	assert.True(t, s.Begin().Add(5).Equal(s.End()))
	assert.Equal(t, 5, s.Begin().Distance(s.End()))

	t.Run("backwards", func(t *testing.T) {
		var reversed []int
		for it := s.End(); it.Greater(s.Begin()); {
			it.Dec()
			reversed = append(reversed, it.Value())
		}
		assert.Equal(t, []int{5, 4, 3, 2, 1}, reversed)
	})

	t.Run("empty sequence", func(t *testing.T) {
		empty := containers.MustNew[int](0)
		assert.True(t, empty.Begin().Equal(empty.End()))

		count := 0
		for it := empty.Begin(); !it.Equal(empty.End()); it.Inc() {
			count++
		}
		assert.Zero(t, count)
	})
}

func TestIteratorArithmetic(t *testing.T) {
	s := containers.FromSlice(10, 20, 30, 40)
	begin := s.Begin()

	t.Run("new iterator at offset", func(t *testing.T) {
		it := begin.Add(2)
		assert.Equal(t, 30, it.Value())
		assert.Equal(t, 0, begin.Pos())
		assert.Equal(t, 20, it.Sub(1).Value())
		assert.Equal(t, 40, it.Next().Value())
		assert.Equal(t, 20, it.Prev().Value())
	})

	t.Run("step in place", func(t *testing.T) {
		it := begin
		it.Advance(3)
		assert.Equal(t, 40, it.Value())
		it.Retreat(2)
		assert.Equal(t, 20, it.Value())
		assert.Equal(t, 0, begin.Pos())
	})

	t.Run("indexed access", func(t *testing.T) {
		it := begin.Next()
		assert.Equal(t, 40, it.At(2))
		assert.Equal(t, 10, it.At(-1))
		assert.Equal(t, 1, it.Pos())
	})

	t.Run("write through reference", func(t *testing.T) {
		*begin.Ref() = 11
		assert.Equal(t, 11, s.Get(0))
		assert.Same(t, s.Index(3), begin.Add(3).Ref())
	})
}

func TestIteratorComparisons(t *testing.T) {
	s := containers.FromSlice(1, 2, 3)
	a, b := s.Begin(), s.Begin().Next()

	assert.True(t, a.Less(b))
	assert.True(t, a.LessEqual(b))
	assert.True(t, a.LessEqual(a))
	assert.True(t, b.Greater(a))
	assert.True(t, b.GreaterEqual(a))
	assert.True(t, b.GreaterEqual(b))
	assert.False(t, a.Greater(b))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(s.Begin()))
	assert.True(t, a.Equal(s.Begin()))
	assert.False(t, a.Equal(b))

	t.Run("different sequences", func(t *testing.T) {
		other := containers.FromSlice(1, 2, 3)
		assert.False(t, s.Begin().Equal(other.Begin()))
		requireIteratorPanic(t, func() { s.Begin().Less(other.Begin()) })
		requireIteratorPanic(t, func() { s.Begin().Distance(other.End()) })
	})
}

func TestUnboundIterator(t *testing.T) {
	var it containers.Iterator[int]
	s := containers.FromSlice(1)

	assert.False(t, it.Bound())
	assert.False(t, it.Valid())
	assert.True(t, it.Equal(containers.Iterator[int]{}))
	assert.False(t, it.Equal(s.Begin()))
	assert.False(t, s.Begin().Equal(it))

	requireIteratorPanic(t, func() { it.Value() })
	requireIteratorPanic(t, func() { it.Ref() })
	requireIteratorPanic(t, func() { it.Add(1) })
	requireIteratorPanic(t, func() { it.Inc() })
	requireIteratorPanic(t, func() { it.Retreat(1) })
	requireIteratorPanic(t, func() { it.Less(s.Begin()) })

	it = s.Begin()
	assert.True(t, it.Bound())
	assert.Equal(t, 1, it.Value())
}

func TestIteratorOutOfRangeDereference(t *testing.T) {
	s := containers.FromSlice(1, 2)

	requireIteratorPanic(t, func() { s.End().Value() })
	requireIteratorPanic(t, func() { s.Begin().Sub(1).Value() })
	requireIteratorPanic(t, func() { s.Begin().At(2) })

	// stepping past the end is allowed, dereferencing there is not
	it := s.End()
	it.Advance(3)
	assert.True(t, it.Bound())
	it.Retreat(4)
	assert.Equal(t, 2, it.Value())
}

func TestStaleIterator(t *testing.T) {
	tests := map[string]func(s *containers.FixedSequence[int]){
		"copy from": func(s *containers.FixedSequence[int]) { s.CopyFrom(containers.FromSlice(7, 8, 9)) },
		"move from": func(s *containers.FixedSequence[int]) { s.MoveFrom(containers.FromSlice(7, 8, 9)) },
		"moved out": func(s *containers.FixedSequence[int]) { _ = containers.Move(s) },
		"swap":      func(s *containers.FixedSequence[int]) { s.Swap(containers.FromSlice(7)) },
		"release":   func(s *containers.FixedSequence[int]) { s.Release() },
		"decode":    func(s *containers.FixedSequence[int]) { _ = s.UnmarshalJSON([]byte("[7]")) },
	}

	for name, reassign := range tests {
		t.Run(name, func(t *testing.T) {
			s := containers.FromSlice(1, 2, 3)
			it := s.Begin()
			require.True(t, it.Valid())

			reassign(s)
			assert.False(t, it.Valid())
			assert.True(t, it.Bound())
			requireIteratorPanic(t, func() { it.Value() })

			assert.True(t, s.Begin().Valid())
		})
	}
}

func TestIteratorAt(t *testing.T) {
	s := containers.FromSlice(1, 2, 3)

	it, err := s.IteratorAt(1)
	require.NoError(t, err)
	assert.Equal(t, 2, it.Value())

	end, err := s.IteratorAt(3)
	require.NoError(t, err)
	assert.True(t, end.Equal(s.End()))

	for _, pos := range []int{-1, 4} {
		it, err := s.IteratorAt(pos)
		require.ErrorIs(t, err, containers.ErrIndexOutOfRange)
		assert.False(t, it.Bound())
	}
}
