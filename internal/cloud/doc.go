// Package cloud decodes and observes the device's cloud session status.
//
// The session reports its state as a bitmask of independent conditions
// (registered, token expiry, failure, logged in/out, deregistered,
// refreshed token); several bits can arrive in a single notification and
// each one is surfaced separately.
//
// Monitor is a pure observer — it logs decoded conditions and reads the
// token expiry from the session when relevant, nothing more. MQTTSession
// is the session transport: status notifications in over the broker,
// provisioning requests out. Registration, authentication and token
// lifecycle business rules live on the cloud side of that boundary.
package cloud
