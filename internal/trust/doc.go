// Package trust installs and persists the device's root trust anchor.
//
// Bootstrap runs at most once per device lifetime, on first-time
// initialisation when no persisted configuration exists, and installs the
// built-in cloud root CA through the Store boundary. A failed installation
// is logged and absorbed: the device keeps running with cloud features
// degraded.
//
// SQLiteStore is the local Store implementation; rowids double as
// credential ids so a successful install always yields a positive id.
package trust
