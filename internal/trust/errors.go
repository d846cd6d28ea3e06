package trust

import "errors"

// Store errors, checked with errors.Is().
var (
	// ErrEmptyCertificate is returned when an empty certificate is offered
	// as a trust anchor.
	ErrEmptyCertificate = errors.New("trust: empty certificate")

	// ErrInvalidPEM is returned when the certificate bytes are not a PEM
	// CERTIFICATE block.
	ErrInvalidPEM = errors.New("trust: invalid PEM certificate")
)
