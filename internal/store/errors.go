package store

import (
	"errors"
)

// Sentinel errors for the failure taxonomy. Storage-level failures (file
// unreadable, lock timeout) are wrapped and surfaced as-is; none are retried.
var (
	// ErrDuplicateName is returned when registering an origin whose name is
	// already taken.
	ErrDuplicateName = errors.New("origin name already exists")

	// ErrOriginNotFound is returned when a referenced origin id does not
	// exist. Rules and purges are never created against missing origins.
	ErrOriginNotFound = errors.New("origin not found")

	// ErrInvalidTTL is returned for negative TTL values. The stored value is
	// seconds, zero means "use the default".
	ErrInvalidTTL = errors.New("ttl must not be negative")

	// ErrEmptyName is returned when registering an origin without a name.
	ErrEmptyName = errors.New("origin name is required")
)
