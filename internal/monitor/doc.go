// Package monitor implements the live latency dashboard: per-host records
// with a bounded rolling sample window, derived statistics recomputed on
// every probe, one prober goroutine per host, and a Bubble Tea model that
// renders the whole fleet as a continuously refreshing table.
//
// Concurrency model: each HostRecord has exactly one writer (its prober)
// and is read by the renderer through Snapshot, which copies the record
// under its mutex. The Store itself is immutable after startup, so hosts
// never contend with each other.
package monitor
