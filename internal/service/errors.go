package service

import "errors"

// User-facing failures of the booking engine. Unknown appointment or slot IDs
// passed to cancel/update/remove are not errors: they only arise from stale
// display state, so those operations silently do nothing instead.
var (
	ErrTeacherNotFound  = errors.New("teacher not found")
	ErrNoAvailableSlots = errors.New("no available slots for this teacher")
	ErrMissingDateTime  = errors.New("date and time must be selected")
	ErrNoSession        = errors.New("no active session")
)
