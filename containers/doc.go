// Package containers provides FixedSequence, a fixed-length generic container with value
// semantics, and Iterator, a non-owning bidirectional cursor over its storage.
//
// The container mirrors the usual checked/unchecked accessor pair: Index, Get, Set, Front and
// Back do no validation beyond the Go runtime's own slice bounds check, while At, Load and
// Store report ErrIndexOutOfRange. Copy (Clone, CopyFrom) duplicates every element into new
// storage, move (Move, MoveFrom) transfers storage and leaves the source empty.
//
// A FixedSequence is not safe for concurrent mutation. Callers sharing one across goroutines
// must guard it externally or work on clones.
package containers
