// Package export persists finished runs: per-job series as CSV keyed by
// policy name, aggregate reports as JSON, and both in a SQLite database.
package export

import "github.com/rs/xid"

// NewRunID returns a globally unique, time-sortable identifier for one
// invocation. Every run written by that invocation shares it.
func NewRunID() string {
	return xid.New().String()
}
