package resource

import "fmt"

// Interface selects which subset of a resource's fields is visible in a
// request. The names follow the OCF interface identifiers.
type Interface string

const (
	// InterfaceBaseline exposes introspection metadata plus the state fields.
	InterfaceBaseline Interface = "oic.if.baseline"

	// InterfaceRW exposes the writable state fields only.
	InterfaceRW Interface = "oic.if.rw"
)

// Type identifies the value type carried by a representation entry.
type Type int

const (
	TypeBool Type = iota + 1
	TypeInt
	TypeString
)

// String returns a human-readable type name.
func (t Type) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeString:
		return "string"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

// Entry is one field of a representation: a name, a declared type and the
// value itself. The declared type is validated against the target field on
// write; it is not inferred from the value.
type Entry struct {
	Name  string
	Type  Type
	Value any
}

// Bool builds a boolean entry.
func Bool(name string, v bool) Entry {
	return Entry{Name: name, Type: TypeBool, Value: v}
}

// Int builds an integer entry.
func Int(name string, v int64) Entry {
	return Entry{Name: name, Type: TypeInt, Value: v}
}

// String builds a string entry.
func String(name, v string) Entry {
	return Entry{Name: name, Type: TypeString, Value: v}
}

// Representation is the ordered field list transported across the
// request/response boundary. Order matters on read (baseline metadata
// precedes state fields); matching on write is by name, not position.
type Representation []Entry

// Find returns the first entry with the given name.
func (r Representation) Find(name string) (Entry, bool) {
	for _, e := range r {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Status is the protocol outcome of a read or write operation.
type Status int

const (
	// StatusOK is the outcome of every read.
	StatusOK Status = iota
	// StatusChanged is the outcome of a fully validated write.
	StatusChanged
	// StatusBadRequest is the outcome of a write containing a type mismatch.
	StatusBadRequest
)

// String returns the protocol status name.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusChanged:
		return "Changed"
	case StatusBadRequest:
		return "Bad Request"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// State is the mutable in-memory state of one light resource. Exactly one
// instance backs each registered URI; it is created at process start, only
// the dispatcher's write operation mutates it, and it is not persisted.
//
// State is owned by the scheduler thread and needs no locking.
type State struct {
	SwitchOn bool
	Level    int64
}

// NewState returns a light state with zero defaults (off, level 0).
func NewState() *State {
	return &State{}
}
