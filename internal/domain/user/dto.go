package user

import (
	"github.com/nexus-os/office-backend/internal/pkg/validator"
)

// UserResponse represents user data in API responses
type UserResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       Role    `json:"role"`
	Department *string `json:"department,omitempty"`
	JobTitle   *string `json:"job_title,omitempty"`
}

func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Department: u.Department,
		JobTitle:   u.JobTitle,
	}
}

func NewUserResponses(users []User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

// CreateUserRequest represents request to add someone to the directory
type CreateUserRequest struct {
	Name       string  `json:"name" validate:"notblank,max=255"`
	Email      string  `json:"email" validate:"required,email,max=254"`
	Password   string  `json:"password" validate:"required,min=8,max=255"`
	Role       Role    `json:"role" validate:"oneof=ADMIN EMPLOYEE"`
	Department *string `json:"department,omitempty" validate:"omitempty,max=255"`
	JobTitle   *string `json:"job_title,omitempty" validate:"omitempty,max=255"`
}

func (r *CreateUserRequest) Validate() error {
	return validator.Struct(r)
}

// ListUsersFilter narrows the directory. Nil Role lists everyone.
type ListUsersFilter struct {
	Role *Role
}
