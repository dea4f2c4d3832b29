// Package service holds the business logic between the HTTP handlers and
// the store. There is intentionally little of it: beyond the token service,
// every operation is a presence check followed by a single statement.
package service

import "errors"

var (
	// ErrNotFound reports a point lookup miss.
	ErrNotFound = errors.New("service: not found")

	// ErrMissingFields reports a create/update body with a required field
	// absent. Presence only; no type or format validation happens here.
	ErrMissingFields = errors.New("service: missing required fields")
)
