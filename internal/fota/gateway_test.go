package fota

import (
	"errors"
	"testing"
)

func TestRegisterCommandHandler(t *testing.T) {
	g := NewGateway()

	if g.RegisterCommandHandler(nil) {
		t.Error("RegisterCommandHandler(nil) = true, want false")
	}

	if !g.RegisterCommandHandler(func(Command) bool { return true }) {
		t.Error("RegisterCommandHandler() = false, want true")
	}
}

func TestRegisterCommandHandler_SecondReplacesFirst(t *testing.T) {
	g := NewGateway()

	var first, second bool
	g.RegisterCommandHandler(func(Command) bool { first = true; return true })
	if !g.RegisterCommandHandler(func(Command) bool { second = true; return true }) {
		t.Fatal("second registration rejected")
	}

	if _, err := g.Handle(CommandCheck); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if first {
		t.Error("replaced handler was invoked")
	}
	if !second {
		t.Error("replacement handler was not invoked")
	}
}

func TestUnregisterCommandHandler_Idempotent(t *testing.T) {
	g := NewGateway()
	g.RegisterCommandHandler(func(Command) bool { return true })

	g.UnregisterCommandHandler()
	g.UnregisterCommandHandler() // second call is a no-op

	if _, err := g.Handle(CommandCheck); !errors.Is(err, ErrNoHandler) {
		t.Errorf("Handle() error = %v, want ErrNoHandler", err)
	}
}

func TestHandle_ReturnsConfirmation(t *testing.T) {
	g := NewGateway()

	var got Command
	g.RegisterCommandHandler(func(cmd Command) bool {
		got = cmd
		return cmd == CommandDownload
	})

	confirmed, err := g.Handle(CommandDownload)
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if !confirmed || got != CommandDownload {
		t.Errorf("Handle(download) = %v, handler saw %v", confirmed, got)
	}

	confirmed, err = g.Handle(CommandUpdate)
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if confirmed {
		t.Error("Handle(update) confirmed, want declined")
	}
}

func TestSetState(t *testing.T) {
	g := NewGateway()

	if err := g.SetState(StateDownloading); err != nil {
		t.Fatalf("SetState() error = %v", err)
	}
	if g.State() != StateDownloading {
		t.Errorf("State() = %v", g.State())
	}

	if err := g.SetState(State(99)); !errors.Is(err, ErrInvalidState) {
		t.Errorf("SetState(99) error = %v, want ErrInvalidState", err)
	}
}

func TestSetFirmwareInfo(t *testing.T) {
	g := NewGateway()

	if err := g.SetFirmwareInfo("1.2.3", "https://fw.example.com/1.2.3.bin"); err != nil {
		t.Fatalf("SetFirmwareInfo() error = %v", err)
	}
	info := g.FirmwareInfo()
	if info.Version != "1.2.3" || info.URI != "https://fw.example.com/1.2.3.bin" {
		t.Errorf("FirmwareInfo() = %+v", info)
	}

	if err := g.SetFirmwareInfo("", "uri"); !errors.Is(err, ErrMissingFirmwareInfo) {
		t.Errorf("empty version: error = %v, want ErrMissingFirmwareInfo", err)
	}
	if err := g.SetFirmwareInfo("ver", ""); !errors.Is(err, ErrMissingFirmwareInfo) {
		t.Errorf("empty uri: error = %v, want ErrMissingFirmwareInfo", err)
	}
}

func TestSetResult(t *testing.T) {
	g := NewGateway()

	if err := g.SetResult(ResultSuccess); err != nil {
		t.Fatalf("SetResult() error = %v", err)
	}
	if g.Result() != ResultSuccess {
		t.Errorf("Result() = %v", g.Result())
	}

	if err := g.SetResult(Result(-1)); !errors.Is(err, ErrInvalidResult) {
		t.Errorf("SetResult(-1) error = %v, want ErrInvalidResult", err)
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in   string
		want Command
		ok   bool
	}{
		{"init", CommandInit, true},
		{"check", CommandCheck, true},
		{"download", CommandDownload, true},
		{"update", CommandUpdate, true},
		{"download_update", CommandDownloadUpdate, true},
		{"reboot", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseCommand(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseCommand(%q) = %v, %v", tt.in, got, ok)
		}
	}
}
