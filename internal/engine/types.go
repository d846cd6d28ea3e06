package engine

import (
	"github.com/hongtianjun/cloudlight/internal/resource"
)

// Method selects the operation a request performs on a resource.
type Method int

const (
	MethodGet Method = iota + 1
	MethodPost
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case MethodGet:
		return "GET"
	case MethodPost:
		return "POST"
	default:
		return "UNKNOWN"
	}
}

// GetHandler produces a representation of a resource for the requested
// interface. The engine passes the resource itself as the baseline source.
type GetHandler func(iface resource.Interface, baseline resource.BaselineSource) (resource.Representation, resource.Status)

// PostHandler applies a decoded representation to a resource.
type PostHandler func(rep resource.Representation) resource.Status

// ResourceOptions describes one resource at registration time.
type ResourceOptions struct {
	URI              string
	Name             string
	Types            []string
	Interfaces       []resource.Interface
	DefaultInterface resource.Interface
	Discoverable     bool
	Observable       bool
	OnGet            GetHandler
	OnPost           PostHandler
}

// Request is one inbound operation on a registered resource. Payload is the
// CBOR-encoded representation; empty on reads. An empty Interface selects
// the resource's default.
type Request struct {
	URI       string
	Interface resource.Interface
	Payload   []byte
}

// Response carries the protocol outcome and, for reads, the CBOR-encoded
// representation.
type Response struct {
	Status  resource.Status
	Payload []byte
}
