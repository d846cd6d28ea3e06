package cloud

import (
	"time"

	"github.com/hongtianjun/cloudlight/internal/infrastructure/logging"
)

// Session is the view of the cloud session a status observer may read.
// Implementations live outside the monitor; the monitor only ever queries
// the token expiry, and only when the corresponding bit is set.
type Session interface {
	// TokenExpiry returns the remaining lifetime of the access token.
	TokenExpiry() time.Duration
}

// Monitor observes cloud session status notifications.
//
// It is a pure observer: one log line per condition bit, no retries, no
// resource state mutation. It runs on whatever goroutine the session
// delivers notifications on and touches nothing owned by the scheduler
// thread.
type Monitor struct {
	log *logging.Logger
}

// NewMonitor creates a Monitor logging through log.
func NewMonitor(log *logging.Logger) *Monitor {
	return &Monitor{log: log.With("component", "cloud")}
}

// OnStatus decodes a status notification into discrete conditions and logs
// each one. For the token-expiry condition the current expiry duration is
// read from sess; a nil session logs the condition without a duration
// rather than failing.
func (m *Monitor) OnStatus(sess Session, status Status) {
	m.log.Info("cloud session status changed", "status", status.String())

	if status.Has(StatusRegistered) {
		m.log.Info("cloud: registered")
	}
	if status.Has(StatusTokenExpiry) {
		if sess != nil {
			m.log.Info("cloud: token expiry", "expires_in", sess.TokenExpiry())
		} else {
			m.log.Info("cloud: token expiry")
		}
	}
	if status.Has(StatusFailure) {
		m.log.Warn("cloud: failure")
	}
	if status.Has(StatusLoggedIn) {
		m.log.Info("cloud: logged in")
	}
	if status.Has(StatusLoggedOut) {
		m.log.Info("cloud: logged out")
	}
	if status.Has(StatusDeregistered) {
		m.log.Info("cloud: deregistered")
	}
	if status.Has(StatusRefreshedToken) {
		m.log.Info("cloud: refreshed token")
	}
}
