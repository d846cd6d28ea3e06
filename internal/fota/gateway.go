package fota

import (
	"errors"
	"sync"
)

// Gateway errors, checked with errors.Is().
var (
	// ErrNoHandler is returned when a command arrives with no handler
	// registered.
	ErrNoHandler = errors.New("fota: no command handler registered")

	// ErrInvalidState is returned for an unknown update state value.
	ErrInvalidState = errors.New("fota: invalid update state")

	// ErrInvalidResult is returned for an unknown update result value.
	ErrInvalidResult = errors.New("fota: invalid update result")

	// ErrMissingFirmwareInfo is returned when version or download location
	// is empty.
	ErrMissingFirmwareInfo = errors.New("fota: firmware version and uri are required")
)

// CommandHandler processes one firmware update command. The returned bool
// reports whether the command was confirmed by the handler's owner.
type CommandHandler func(cmd Command) bool

// FirmwareInfo identifies an available firmware image.
type FirmwareInfo struct {
	Version string
	URI     string
}

// Gateway is the firmware update command boundary.
//
// It holds a single handler slot and the update bookkeeping the device
// reports (state, firmware info, result). What a command actually does is
// owned entirely by the registrant; the gateway only stores, validates and
// forwards.
type Gateway struct {
	mu      sync.Mutex
	handler CommandHandler

	state  State
	info   FirmwareInfo
	result Result
}

// NewGateway creates an empty gateway: no handler, state none.
func NewGateway() *Gateway {
	return &Gateway{}
}

// RegisterCommandHandler installs cb as the command handler. A second
// registration replaces the first. Returns false only for a nil callback.
func (g *Gateway) RegisterCommandHandler(cb CommandHandler) bool {
	if cb == nil {
		return false
	}
	g.mu.Lock()
	g.handler = cb
	g.mu.Unlock()
	return true
}

// UnregisterCommandHandler clears the handler slot. Idempotent.
func (g *Gateway) UnregisterCommandHandler() {
	g.mu.Lock()
	g.handler = nil
	g.mu.Unlock()
}

// Handle forwards a command to the registered handler and reports whether
// the handler confirmed it.
func (g *Gateway) Handle(cmd Command) (bool, error) {
	g.mu.Lock()
	handler := g.handler
	g.mu.Unlock()

	if handler == nil {
		return false, ErrNoHandler
	}
	return handler(cmd), nil
}

// SetState records the current update progress state.
func (g *Gateway) SetState(s State) error {
	if !s.valid() {
		return ErrInvalidState
	}
	g.mu.Lock()
	g.state = s
	g.mu.Unlock()
	return nil
}

// State returns the recorded update progress state.
func (g *Gateway) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// SetFirmwareInfo records the version and download location of an
// available firmware image.
func (g *Gateway) SetFirmwareInfo(version, uri string) error {
	if version == "" || uri == "" {
		return ErrMissingFirmwareInfo
	}
	g.mu.Lock()
	g.info = FirmwareInfo{Version: version, URI: uri}
	g.mu.Unlock()
	return nil
}

// FirmwareInfo returns the recorded firmware image details.
func (g *Gateway) FirmwareInfo() FirmwareInfo {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.info
}

// SetResult records the outcome of the last update attempt.
func (g *Gateway) SetResult(r Result) error {
	if !r.valid() {
		return ErrInvalidResult
	}
	g.mu.Lock()
	g.result = r
	g.mu.Unlock()
	return nil
}

// Result returns the recorded update outcome.
func (g *Gateway) Result() Result {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.result
}
