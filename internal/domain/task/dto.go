package task

import "github.com/nexus-os/office-backend/internal/pkg/validator"

type CreateTaskRequest struct {
	UserID      string   `json:"-"`
	Title       string   `json:"title" validate:"notblank,max=255"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Status      Status   `json:"status" validate:"omitempty,oneof=TODO IN_PROGRESS DONE"`
	Priority    Priority `json:"priority" validate:"oneof=LOW MEDIUM HIGH"`
	DueDate     *string  `json:"due_date,omitempty" validate:"omitempty,day"`
}

func (r *CreateTaskRequest) Validate() error {
	return validator.Struct(r)
}

type UpdateTaskStatusRequest struct {
	ID     string `json:"-"`
	Status Status `json:"status" validate:"oneof=TODO IN_PROGRESS DONE"`
}

func (r *UpdateTaskStatusRequest) Validate() error {
	return validator.Struct(r)
}
