package records

import "errors"

var (
	// ErrNotFound is returned by Load when the artifact does not exist yet.
	ErrNotFound = errors.New("records: artifact not found")

	ErrUnsupportedVersion = errors.New("records: unsupported artifact version")
)
