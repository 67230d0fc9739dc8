package leave

import (
	"github.com/nexus-os/office-backend/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	UserID    string    `json:"-"`
	UserName  string    `json:"-"`
	StartDate string    `json:"start_date" validate:"required,day"`
	EndDate   string    `json:"end_date" validate:"required,day"`
	Reason    string    `json:"reason" validate:"max=1000"`
	Type      LeaveType `json:"type" validate:"oneof=SICK VACATION PERSONAL"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}

	// both dates are YYYY-MM-DD at this point, so string order is date order
	if r.EndDate < r.StartDate {
		return validator.ValidationErrors{{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		}}
	}
	return nil
}

type UpdateLeaveStatusRequest struct {
	ID     string      `json:"-"`
	Status LeaveStatus `json:"status" validate:"oneof=APPROVED REJECTED"`
}

func (r *UpdateLeaveStatusRequest) Validate() error {
	return validator.Struct(r)
}
