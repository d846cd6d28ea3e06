// Package fota is the firmware-over-the-air command boundary.
//
// The gateway implements the storage and invariants of the boundary — a
// single replace-on-register handler slot, idempotent unregistration and
// validated state/info/result setters — while the semantics of executing a
// command belong to whoever registered the handler.
package fota
