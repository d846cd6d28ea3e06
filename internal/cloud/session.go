package cloud

import "context"

// StatusCallback receives decoded status notifications from a session.
// sess may be nil when the session context is unavailable.
type StatusCallback func(sess Session, status Status)

// Manager is the lifecycle interface of a cloud session. The network
// behaviour behind it — registration business rules, retry, backoff — is
// owned by the implementation, not by this package's consumers.
type Manager interface {
	Session

	// Start begins delivering status notifications to cb.
	Start(ctx context.Context, cb StatusCallback) error

	// Stop ceases notification delivery.
	Stop() error

	// Provision submits the registration-service coordinates.
	Provision(ctx context.Context, endpoint, authCode, subjectID, provider string) error
}
