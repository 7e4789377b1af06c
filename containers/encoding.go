package containers

import (
	"encoding/json"

	"github.com/NethermindEth/fixedseq/encoder"
	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
)

// EncodingFormat tags CBOR envelopes holding a FixedSequence.
const EncodingFormat = "fixedseq"

var (
	_ cbor.Marshaler   = (*FixedSequence[int])(nil)
	_ cbor.Unmarshaler = (*FixedSequence[int])(nil)
	_ json.Marshaler   = (*FixedSequence[int])(nil)
	_ json.Unmarshaler = (*FixedSequence[int])(nil)
)

// elemsOrEmpty keeps empty sequences encoding as an empty array rather than null.
func (s *FixedSequence[T]) elemsOrEmpty() []T {
	if s.elems == nil {
		return []T{}
	}
	return s.elems
}

func (s *FixedSequence[T]) MarshalCBOR() ([]byte, error) {
	return encoder.MarshalVersioned(EncodingFormat, s.elemsOrEmpty())
}

// UnmarshalCBOR replaces the storage of s with the decoded elements.
// Iterators obtained before the call are invalidated.
func (s *FixedSequence[T]) UnmarshalCBOR(data []byte) error {
	var elems []T
	if err := encoder.UnmarshalVersioned(data, EncodingFormat, &elems); err != nil {
		return errors.Wrap(err, "decode sequence")
	}
	s.replace(elems)
	return nil
}

func (s *FixedSequence[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.elemsOrEmpty())
}

func (s *FixedSequence[T]) UnmarshalJSON(data []byte) error {
	var elems []T
	if err := json.Unmarshal(data, &elems); err != nil {
		return errors.Wrap(err, "decode sequence")
	}
	s.replace(elems)
	return nil
}
