package internal

import "errors"

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrNoChangeRequested = errors.New("no change requested")
	ErrCancelNotAllowed  = errors.New("order can no longer be cancelled")

	// ErrContention is returned when the order row lock could not be
	// acquired in time; the caller may retry the whole request.
	ErrContention = errors.New("order is being updated by another request")

	ErrNoRecords = errors.New("no records")
)
