package fota

import "fmt"

// Command is a firmware update command delivered to the registered handler.
type Command int

const (
	CommandInit Command = iota + 1
	CommandCheck
	CommandDownload
	CommandUpdate
	CommandDownloadUpdate
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CommandInit:
		return "init"
	case CommandCheck:
		return "check"
	case CommandDownload:
		return "download"
	case CommandUpdate:
		return "update"
	case CommandDownloadUpdate:
		return "download_update"
	default:
		return fmt.Sprintf("command(%d)", int(c))
	}
}

// ParseCommand maps a command name to its Command value.
func ParseCommand(name string) (Command, bool) {
	switch name {
	case "init":
		return CommandInit, true
	case "check":
		return CommandCheck, true
	case "download":
		return CommandDownload, true
	case "update":
		return CommandUpdate, true
	case "download_update":
		return CommandDownloadUpdate, true
	default:
		return 0, false
	}
}

// State is the progress state of a firmware update.
type State int

const (
	StateNone State = iota
	StateDownloading
	StateDownloaded
	StateUpdating
)

// valid reports whether the state is a known enum value.
func (s State) valid() bool {
	return s >= StateNone && s <= StateUpdating
}

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateDownloading:
		return "downloading"
	case StateDownloaded:
		return "downloaded"
	case StateUpdating:
		return "updating"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Result is the outcome of a firmware update attempt.
type Result int

const (
	ResultNone Result = iota
	ResultSuccess
	ResultNotSupported
	ResultInvalidURI
	ResultNotEnoughSpace
	ResultConnectionLost
	ResultIntegrityFailure
	ResultUpdateFailed
)

// valid reports whether the result is a known enum value.
func (r Result) valid() bool {
	return r >= ResultNone && r <= ResultUpdateFailed
}

// String returns the result name.
func (r Result) String() string {
	switch r {
	case ResultNone:
		return "none"
	case ResultSuccess:
		return "success"
	case ResultNotSupported:
		return "not_supported"
	case ResultInvalidURI:
		return "invalid_uri"
	case ResultNotEnoughSpace:
		return "not_enough_space"
	case ResultConnectionLost:
		return "connection_lost"
	case ResultIntegrityFailure:
		return "integrity_failure"
	case ResultUpdateFailed:
		return "update_failed"
	default:
		return fmt.Sprintf("result(%d)", int(r))
	}
}
