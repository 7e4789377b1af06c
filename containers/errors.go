package containers

import "errors"

var (
	ErrInvalidSize     = errors.New("invalid sequence size")
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidIteratorUse is the panic payload (wrapped) for dereferencing or stepping an
	// unbound iterator, using an iterator after its sequence was reassigned or released, and
	// ordering iterators that belong to different sequences.
	ErrInvalidIteratorUse = errors.New("invalid iterator use")
)
