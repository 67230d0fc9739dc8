package user

import "context"

type UserService interface {
	List(ctx context.Context, filter ListUsersFilter) ([]UserResponse, error)
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
}
