package scheduler

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/hongtianjun/cloudlight/internal/infrastructure/logging"
)

// SignalBridge forwards OS termination signals to a Loop.
//
// SIGINT and SIGTERM request a controlled shutdown: set the termination
// flag, then wake the loop. SIGPIPE is explicitly ignored — a broken
// transport to a remote peer is recoverable and must never terminate the
// process or disturb scheduling.
type SignalBridge struct {
	loop *Loop
	log  *logging.Logger
	ch   chan os.Signal
	done chan struct{}
}

// InstallSignals registers the signal handlers and starts the bridge.
//
// The returned bridge should be stopped during teardown. Signal delivery
// runs on its own goroutine; the only thing it touches is the loop's
// cross-goroutine entry points.
func InstallSignals(loop *Loop, log *logging.Logger) *SignalBridge {
	b := &SignalBridge{
		loop: loop,
		log:  log,
		ch:   make(chan os.Signal, 1),
		done: make(chan struct{}),
	}

	signal.Ignore(syscall.SIGPIPE)
	signal.Notify(b.ch, os.Interrupt, syscall.SIGTERM)

	go b.watch()
	return b
}

// watch delivers signals to handle until the bridge is stopped.
func (b *SignalBridge) watch() {
	defer close(b.done)
	for sig := range b.ch {
		b.handle(sig)
	}
}

// handle processes one delivered signal.
func (b *SignalBridge) handle(sig os.Signal) {
	if sig == syscall.SIGPIPE {
		// Recoverable peer disconnect; absorbed without waking the loop.
		return
	}
	b.log.Info("termination signal received", "signal", sig.String())
	b.loop.Terminate()
}

// Stop unregisters the handlers and waits for the bridge goroutine to
// finish. Pending signals after Stop fall back to default handling.
func (b *SignalBridge) Stop() {
	signal.Stop(b.ch)
	close(b.ch)
	<-b.done
}
