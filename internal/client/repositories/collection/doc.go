// Package collection is the shared core behind the entity repositories.
//
// A Collection owns one authoritative in-memory copy of a stored sequence
// and persists it as a whole under a single key: every mutation computes
// the complete next collection and writes it in one Set. Mutations of one
// collection are serialized, and the cache is replaced only after the write
// succeeded, so a failed write never leaves memory and storage apart.
//
// Each mutation reports its outcome four ways: the returned error, the
// Status error field, a notification, and a log line plus a metric.
package collection
