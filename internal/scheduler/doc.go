// Package scheduler contains the runtime's event loop and its OS signal
// bridge.
//
// The loop owns the single scheduler thread: it polls the protocol engine
// for the next timer deadline and blocks efficiently — no busy-polling —
// until that deadline, an explicit wake or a termination request. Producers
// on other goroutines (signal delivery, broker callbacks) interact with the
// loop only through Wake and Terminate.
//
// # Lost wake-ups
//
// The wake notifier is a buffered channel rather than a condition
// variable: a wake posted at any point between the engine poll and the
// wait is retained in the buffer, so the wait returns immediately. The
// termination flag is re-checked after every wake before the loop decides
// to block again.
package scheduler
