package encoder

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/fxamacker/cbor/v2"
)

// Version is written into every envelope produced by MarshalVersioned.
const Version = "1.0.0"

// supportedVersions is the range of envelope versions UnmarshalVersioned accepts.
const supportedVersions = "^1.0.0"

var (
	ErrFormatMismatch     = errors.New("payload format mismatch")
	ErrUnsupportedVersion = errors.New("unsupported payload version")
)

var supported = mustConstraint(supportedVersions)

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraint
}

type envelope struct {
	Format  string          `cbor:"1,keyasint"`
	Version string          `cbor:"2,keyasint"`
	Payload cbor.RawMessage `cbor:"3,keyasint"`
}

// MarshalVersioned encodes v and wraps it in an envelope tagged with format
// and the current Version.
func MarshalVersioned(format string, v any) ([]byte, error) {
	return marshalVersioned(format, Version, v)
}

func marshalVersioned(format, version string, v any) ([]byte, error) {
	payload, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	return Marshal(envelope{Format: format, Version: version, Payload: payload})
}

// UnmarshalVersioned decodes an envelope produced by MarshalVersioned into v.
// The envelope must carry the given format and a version within the supported range.
func UnmarshalVersioned(b []byte, format string, v any) error {
	var env envelope
	if err := Unmarshal(b, &env); err != nil {
		return err
	}

	if env.Format != format {
		return fmt.Errorf("%w: got %q, want %q", ErrFormatMismatch, env.Format, format)
	}

	ver, err := semver.NewVersion(env.Version)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrUnsupportedVersion, env.Version, err)
	}
	if !supported.Check(ver) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedVersion, ver, supportedVersions)
	}

	return Unmarshal(env.Payload, v)
}
