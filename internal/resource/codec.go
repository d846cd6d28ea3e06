package resource

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Field names and constants of the light resource.
const (
	FieldState = "state"
	FieldPower = "power"
	FieldName  = "name"

	// lightName is the constant name field reported on reads.
	lightName = "Light"
)

// stateFields appends the light state fields in wire order:
// state (bool), power (int), name (string).
func stateFields(s *State) Representation {
	return Representation{
		Bool(FieldState, s.SwitchOn),
		Int(FieldPower, s.Level),
		String(FieldName, lightName),
	}
}

// wireEntry is the CBOR form of an Entry. Representations travel as an
// ordered array of these, which keeps field order stable across the wire
// (a CBOR map would not).
type wireEntry struct {
	Name  string `cbor:"n"`
	Type  uint8  `cbor:"t"`
	Value any    `cbor:"v"`
}

// EncodeCBOR serialises the representation to its CBOR wire form.
func (r Representation) EncodeCBOR() ([]byte, error) {
	entries := make([]wireEntry, len(r))
	for i, e := range r {
		if e.Type < TypeBool || e.Type > TypeString {
			return nil, fmt.Errorf("%w: entry %q", ErrUnknownType, e.Name)
		}
		entries[i] = wireEntry{
			Name:  e.Name,
			Type:  uint8(e.Type),
			Value: e.Value,
		}
	}
	data, err := cbor.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("encoding representation: %w", err)
	}
	return data, nil
}

// DecodeCBOR parses a CBOR wire payload into a representation.
//
// Each entry's value is coerced to the Go type implied by its declared
// type tag; a payload whose value contradicts its tag is rejected.
func DecodeCBOR(data []byte) (Representation, error) {
	var entries []wireEntry
	if err := cbor.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadWireFormat, err)
	}

	rep := make(Representation, 0, len(entries))
	for _, we := range entries {
		e := Entry{Name: we.Name, Type: Type(we.Type)}
		switch e.Type {
		case TypeBool:
			v, ok := we.Value.(bool)
			if !ok {
				return nil, fmt.Errorf("%w: entry %q", ErrValueMismatch, we.Name)
			}
			e.Value = v
		case TypeInt:
			v, err := toInt64(we.Value)
			if err != nil {
				return nil, fmt.Errorf("%w: entry %q", ErrValueMismatch, we.Name)
			}
			e.Value = v
		case TypeString:
			v, ok := we.Value.(string)
			if !ok {
				return nil, fmt.Errorf("%w: entry %q", ErrValueMismatch, we.Name)
			}
			e.Value = v
		default:
			return nil, fmt.Errorf("%w: entry %q has tag %d", ErrUnknownType, we.Name, we.Type)
		}
		rep = append(rep, e)
	}
	return rep, nil
}

// toInt64 normalises the integer types the CBOR decoder produces.
func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case uint64:
		if n > 1<<62 {
			return 0, fmt.Errorf("integer overflow")
		}
		return int64(n), nil
	case int:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("not an integer: %T", v)
	}
}
