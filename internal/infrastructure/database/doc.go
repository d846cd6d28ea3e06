// Package database provides the SQLite-backed local store for cloudlight.
//
// The store exists for persisted credentials and trust anchors only; the
// light resources keep their state in memory and reset on restart. WAL mode
// and a busy timeout are applied via connection-string pragmas, and the
// database file is created with owner-only permissions since it holds
// certificate material.
package database
