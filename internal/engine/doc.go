// Package engine hosts registered resources and timed callbacks.
//
// It is a narrow in-process stand-in for a device protocol stack: resource
// registration with introspection metadata, request dispatch by URI and
// interface, and a deadline queue that drives the scheduler loop. Wire
// framing, retransmission, discovery and transport security are outside
// this package.
package engine
