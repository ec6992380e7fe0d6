package shift

import "errors"

var (
	// Shift errors
	ErrShiftNotFound       = errors.New("shift not found")
	ErrShiftAlreadyClaimed = errors.New("shift is already claimed")

	// Validation errors
	ErrHostNameRequired   = errors.New("host name is required")
	ErrInvalidTimeRange   = errors.New("end time must be after start time")
	ErrInvalidRecurrence  = errors.New("invalid recurrence value")
	ErrInvalidRequestData = errors.New("invalid request data")
)
