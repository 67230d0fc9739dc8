package attendance

import "errors"

// Attendance domain errors
var (
	ErrNotCheckedIn      = errors.New("No check-in record found for today.")
	ErrAlreadyCheckedOut = errors.New("you have already checked out")
)
