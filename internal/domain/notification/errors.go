package notification

import "errors"

// Notification domain errors
var (
	ErrInvalidTargetRole       = errors.New("invalid target role")
	ErrInvalidNotificationType = errors.New("invalid notification type")
)
