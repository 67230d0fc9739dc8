package leave

import "errors"

var (
	ErrLeaveRequestAlreadyProcessed = errors.New("Leave request already processed")
	ErrInvalidStatus                = errors.New("status must be APPROVED or REJECTED")
)
