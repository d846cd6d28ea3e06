package cloud

import "strings"

// Status is the bitmask the cloud session reports on every state change.
// Bits are independent and may be set simultaneously (for example a single
// notification can carry both registered and logged-in).
type Status uint32

const (
	StatusRegistered Status = 1 << iota
	StatusTokenExpiry
	StatusFailure
	StatusLoggedIn
	StatusLoggedOut
	StatusDeregistered
	StatusRefreshedToken
)

// statusNames maps each bit to its condition name, in bit order.
var statusNames = []struct {
	bit  Status
	name string
}{
	{StatusRegistered, "registered"},
	{StatusTokenExpiry, "token-expiry"},
	{StatusFailure, "failure"},
	{StatusLoggedIn, "logged-in"},
	{StatusLoggedOut, "logged-out"},
	{StatusDeregistered, "deregistered"},
	{StatusRefreshedToken, "refreshed-token"},
}

// Has reports whether the given bit is set.
func (s Status) Has(bit Status) bool {
	return s&bit != 0
}

// Conditions decodes the mask into the discrete condition names of every
// set bit, in bit order.
func (s Status) Conditions() []string {
	var conditions []string
	for _, sn := range statusNames {
		if s.Has(sn.bit) {
			conditions = append(conditions, sn.name)
		}
	}
	return conditions
}

// String renders the mask for logging, e.g. "registered|logged-in".
func (s Status) String() string {
	conditions := s.Conditions()
	if len(conditions) == 0 {
		return "none"
	}
	return strings.Join(conditions, "|")
}
