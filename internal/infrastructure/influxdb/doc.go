// Package influxdb provides optional telemetry for the cloudlight runtime.
//
// When enabled, successful light state writes and cloud session condition
// transitions are recorded as time-series points. Writes are batched and
// asynchronous so the single-threaded event loop is never blocked on
// telemetry; failures surface through the SetOnError callback and are
// logged, never fatal.
package influxdb
