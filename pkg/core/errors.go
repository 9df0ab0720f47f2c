package core

import "errors"

// Common errors.
var (
	// ErrSnapshotNotFound is reported by repositories when no prior snapshot
	// exists. Callers are expected to fall back to DefaultSnapshot.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrMalformedSnapshot is reported when a loaded snapshot is missing
	// required sections and repair is disabled.
	ErrMalformedSnapshot = errors.New("snapshot is malformed")
)
