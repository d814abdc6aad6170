package account

import "errors"

var (
	ErrInvalidStatus      = errors.New("invalid status filter")
	ErrSnapshotUnavailable = errors.New("snapshot store is not configured")
)
