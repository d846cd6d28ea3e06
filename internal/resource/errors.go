package resource

import "errors"

// Codec errors, checked with errors.Is().
var (
	// ErrBadWireFormat is returned when a CBOR payload cannot be decoded
	// into a representation.
	ErrBadWireFormat = errors.New("resource: bad wire format")

	// ErrUnknownType is returned when an entry carries a type tag outside
	// the supported set.
	ErrUnknownType = errors.New("resource: unknown value type")

	// ErrValueMismatch is returned when a decoded value does not match the
	// entry's declared type.
	ErrValueMismatch = errors.New("resource: value does not match declared type")
)
