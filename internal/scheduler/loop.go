package scheduler

import (
	"sync/atomic"
	"time"

	"github.com/hongtianjun/cloudlight/internal/infrastructure/logging"
)

// Engine is the narrow boundary to the protocol engine. Poll processes any
// due protocol work and reports the next timer deadline; ok is false when
// no timer is pending and the loop should block until an explicit wake.
type Engine interface {
	Poll() (next time.Time, ok bool)
}

// Loop is the single-threaded event scheduler at the heart of the runtime.
//
// Run executes on one dedicated goroutine; all protocol processing happens
// synchronously inside Engine.Poll on that goroutine. Wake and Terminate
// are the only cross-goroutine entry points.
//
// The wake notifier is a 1-buffered channel: a Wake posted between the
// deadline computation and the wait parks in the buffer and is consumed by
// the next wait, so no wake-up can be lost. The termination flag is
// monotonic and re-checked after every wake before any decision to block
// again.
type Loop struct {
	engine Engine
	log    *logging.Logger

	quit   atomic.Bool
	wakeCh chan struct{}
}

// New creates a Loop driving the given engine.
func New(engine Engine, log *logging.Logger) *Loop {
	return &Loop{
		engine: engine,
		log:    log,
		wakeCh: make(chan struct{}, 1),
	}
}

// Wake nudges the loop out of its current or next wait. Safe to call from
// any goroutine, including signal handling and broker callback contexts;
// redundant wakes coalesce.
func (l *Loop) Wake() {
	select {
	case l.wakeCh <- struct{}{}:
	default:
	}
}

// Terminate requests shutdown. The flag transition is monotonic
// (false to true, never reset) and is the sole authorised way to end Run.
func (l *Loop) Terminate() {
	if l.quit.CompareAndSwap(false, true) {
		l.log.Info("scheduler termination requested")
		l.Wake()
	}
}

// Terminated reports whether shutdown has been requested.
func (l *Loop) Terminated() bool {
	return l.quit.Load()
}

// Run executes the event loop until Terminate is called.
//
// Each iteration polls the engine for the next deadline, then blocks on the
// wake notifier: indefinitely when no timer is pending, with a timeout of
// the remaining time otherwise. A deadline already in the past skips the
// wait entirely. Waking — by timeout, by explicit Wake or spuriously — only
// ever causes a re-poll; work happens exclusively inside Engine.Poll.
func (l *Loop) Run() {
	l.log.Info("scheduler running")

	timer := time.NewTimer(time.Hour)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for !l.quit.Load() {
		next, ok := l.engine.Poll()

		// Re-check after polling: a Terminate during Poll must not
		// put us back to sleep.
		if l.quit.Load() {
			break
		}

		if !ok {
			// No pending timer: block until an explicit wake.
			<-l.wakeCh
			continue
		}

		remaining := time.Until(next)
		if remaining <= 0 {
			// Timer already due: poll again immediately.
			continue
		}

		timer.Reset(remaining)
		select {
		case <-l.wakeCh:
			if !timer.Stop() {
				<-timer.C
			}
		case <-timer.C:
		}
	}

	l.log.Info("scheduler stopped")
}
