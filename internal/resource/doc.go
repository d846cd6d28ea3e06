// Package resource implements the typed light resources exposed by the
// cloudlight runtime: the in-memory state, the ordered generic
// representation format, the CBOR wire codec and the request dispatcher
// that binds GET/POST operations to a state instance.
//
// # Concurrency
//
// Everything in this package is owned by the scheduler thread. The engine
// invokes the dispatcher synchronously while processing a request, so
// State carries no locks; external components must never mutate it
// directly.
//
// # Write semantics
//
// Writes validate each entry's declared type against the target field and
// abort with Bad Request on the first mismatch, keeping earlier applied
// entries (partial-apply). Unknown field names are skipped silently.
package resource
