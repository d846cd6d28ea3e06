package resource

import (
	"github.com/hongtianjun/cloudlight/internal/infrastructure/logging"
)

// BaselineSource supplies the common introspection fields (resource types,
// supported interfaces, name) that precede the state fields on a
// baseline-interface read. The protocol engine's resource object implements
// this; the dispatcher only delegates.
type BaselineSource interface {
	BaselineEntries() Representation
}

// Dispatcher binds read and write operations to a light's State.
//
// It runs exclusively on the scheduler thread: the engine invokes it
// synchronously while processing a request, so no locking is needed around
// the State it mutates.
type Dispatcher struct {
	log *logging.Logger
}

// NewDispatcher creates a dispatcher logging through log.
func NewDispatcher(log *logging.Logger) *Dispatcher {
	return &Dispatcher{log: log}
}

// Read produces the representation of s for the requested interface.
//
// Baseline reads place the introspection fields from baseline before the
// state fields; the read-write interface returns the state fields only;
// an unrecognised interface yields an empty representation. Reads cannot
// fail: the status is always OK.
func (d *Dispatcher) Read(s *State, iface Interface, baseline BaselineSource) (Representation, Status) {
	var rep Representation

	switch iface {
	case InterfaceBaseline:
		if baseline != nil {
			rep = append(rep, baseline.BaselineEntries()...)
		}
		rep = append(rep, stateFields(s)...)
	case InterfaceRW:
		rep = append(rep, stateFields(s)...)
	default:
		// Unrecognised interface: no fields.
	}

	d.log.Debug("resource read",
		"interface", string(iface),
		"fields", len(rep),
	)
	return rep, StatusOK
}

// Write applies a representation to s.
//
// Entries are processed in order. A recognised field with a matching
// declared type is applied immediately; an unrecognised name is skipped; a
// recognised field with a mismatched type aborts the whole operation with
// Bad Request. Fields applied before the abort stay applied — this
// partial-apply policy mirrors the device's established behaviour and is
// relied on by callers that treat writes as best-effort.
func (d *Dispatcher) Write(s *State, rep Representation) Status {
	for _, e := range rep {
		switch e.Name {
		case FieldState:
			v, ok := e.Value.(bool)
			if e.Type != TypeBool || !ok {
				d.log.Warn("write rejected: type mismatch",
					"field", FieldState,
					"declared", e.Type.String(),
				)
				return StatusBadRequest
			}
			s.SwitchOn = v
		case FieldPower:
			v, err := toInt64(e.Value)
			if e.Type != TypeInt || err != nil {
				d.log.Warn("write rejected: type mismatch",
					"field", FieldPower,
					"declared", e.Type.String(),
				)
				return StatusBadRequest
			}
			s.Level = v
		default:
			// Unknown fields are ignored without error.
		}
	}

	d.log.Debug("resource write applied",
		"switch_on", s.SwitchOn,
		"level", s.Level,
	)
	return StatusChanged
}
