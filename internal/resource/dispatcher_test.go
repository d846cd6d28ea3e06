package resource

import (
	"testing"

	"github.com/hongtianjun/cloudlight/internal/infrastructure/logging"
)

// fakeBaseline supplies deterministic introspection fields for tests.
type fakeBaseline struct{}

func (fakeBaseline) BaselineEntries() Representation {
	return Representation{
		String("rt", "core.light"),
		String("if", "oic.if.rw oic.if.baseline"),
	}
}

func newDispatcher() *Dispatcher {
	return NewDispatcher(logging.Default())
}

func TestRead_BaselineOrdering(t *testing.T) {
	d := newDispatcher()
	s := &State{SwitchOn: true, Level: 7}

	rep, status := d.Read(s, InterfaceBaseline, fakeBaseline{})
	if status != StatusOK {
		t.Fatalf("Read() status = %v, want OK", status)
	}

	wantNames := []string{"rt", "if", "state", "power", "name"}
	if len(rep) != len(wantNames) {
		t.Fatalf("Read() returned %d entries, want %d", len(rep), len(wantNames))
	}
	for i, name := range wantNames {
		if rep[i].Name != name {
			t.Errorf("entry[%d].Name = %q, want %q", i, rep[i].Name, name)
		}
	}
}

func TestRead_RWOmitsIntrospection(t *testing.T) {
	d := newDispatcher()
	s := &State{SwitchOn: true, Level: 42}

	rep, status := d.Read(s, InterfaceRW, fakeBaseline{})
	if status != StatusOK {
		t.Fatalf("Read() status = %v, want OK", status)
	}

	want := Representation{
		Bool("state", true),
		Int("power", 42),
		String("name", "Light"),
	}
	if len(rep) != len(want) {
		t.Fatalf("Read() returned %d entries, want %d", len(rep), len(want))
	}
	for i := range want {
		if rep[i] != want[i] {
			t.Errorf("entry[%d] = %+v, want %+v", i, rep[i], want[i])
		}
	}
}

func TestRead_UnrecognisedInterfaceIsEmpty(t *testing.T) {
	d := newDispatcher()
	rep, status := d.Read(NewState(), Interface("oic.if.ll"), fakeBaseline{})
	if status != StatusOK {
		t.Fatalf("Read() status = %v, want OK", status)
	}
	if len(rep) != 0 {
		t.Errorf("Read() returned %d entries, want 0", len(rep))
	}
}

func TestWrite_AppliesKnownFields(t *testing.T) {
	d := newDispatcher()
	s := NewState()

	status := d.Write(s, Representation{
		Bool("state", true),
		Int("power", 42),
	})
	if status != StatusChanged {
		t.Fatalf("Write() status = %v, want Changed", status)
	}
	if !s.SwitchOn || s.Level != 42 {
		t.Errorf("state after write = %+v, want {true 42}", *s)
	}
}

func TestWrite_TypeMismatchPartialApply(t *testing.T) {
	d := newDispatcher()
	s := NewState()

	// The valid state entry precedes the mismatched power entry: it must
	// stay applied after the abort.
	status := d.Write(s, Representation{
		Bool("state", true),
		String("power", "not-a-number"),
		Int("power", 99),
	})
	if status != StatusBadRequest {
		t.Fatalf("Write() status = %v, want Bad Request", status)
	}
	if !s.SwitchOn {
		t.Error("entry before the mismatch was rolled back; partial-apply expected")
	}
	if s.Level != 0 {
		t.Errorf("Level = %d, want 0 (entries after the mismatch must not apply)", s.Level)
	}
}

func TestWrite_MismatchedDeclaredType(t *testing.T) {
	d := newDispatcher()
	s := NewState()

	// Value matches the field but the declared type does not.
	status := d.Write(s, Representation{
		{Name: "state", Type: TypeInt, Value: true},
	})
	if status != StatusBadRequest {
		t.Errorf("Write() status = %v, want Bad Request", status)
	}
}

func TestWrite_UnknownFieldIgnored(t *testing.T) {
	d := newDispatcher()
	s := NewState()

	status := d.Write(s, Representation{
		String("colour", "red"),
		Bool("state", true),
	})
	if status != StatusChanged {
		t.Fatalf("Write() status = %v, want Changed", status)
	}
	if !s.SwitchOn {
		t.Error("valid entry alongside unknown field was not applied")
	}
}

func TestReadWriteRoundTripIdempotent(t *testing.T) {
	d := newDispatcher()
	s := &State{SwitchOn: true, Level: 13}
	before := *s

	rep, _ := d.Read(s, InterfaceRW, nil)
	if status := d.Write(s, rep); status != StatusChanged {
		t.Fatalf("Write() status = %v, want Changed", status)
	}
	if *s != before {
		t.Errorf("state after round trip = %+v, want %+v", *s, before)
	}
}

// TestLightScenario pins the end-to-end example: write {state:true, power:42}
// then read back over the read-write interface.
func TestLightScenario(t *testing.T) {
	d := newDispatcher()
	s := NewState()

	if status := d.Write(s, Representation{Bool("state", true), Int("power", 42)}); status != StatusChanged {
		t.Fatalf("Write() status = %v, want Changed", status)
	}
	if !s.SwitchOn || s.Level != 42 {
		t.Fatalf("state = %+v, want {true 42}", *s)
	}

	rep, status := d.Read(s, InterfaceRW, nil)
	if status != StatusOK {
		t.Fatalf("Read() status = %v, want OK", status)
	}
	want := Representation{
		Bool("state", true),
		Int("power", 42),
		String("name", "Light"),
	}
	if len(rep) != len(want) {
		t.Fatalf("Read() returned %d entries, want %d", len(rep), len(want))
	}
	for i := range want {
		if rep[i] != want[i] {
			t.Errorf("entry[%d] = %+v, want %+v", i, rep[i], want[i])
		}
	}
}
