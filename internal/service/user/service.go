package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/nexus-os/office-backend/internal/domain/user"
	"github.com/nexus-os/office-backend/internal/pkg/store"
)

type UserServiceImpl struct {
	tx store.Mutator
	user.UserRepository
}

func NewUserService(tx store.Mutator, userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{
		tx:             tx,
		UserRepository: userRepository,
	}
}

// List implements user.UserService.
func (u *UserServiceImpl) List(ctx context.Context, filter user.ListUsersFilter) ([]user.UserResponse, error) {
	if filter.Role != nil && !filter.Role.IsValid() {
		return nil, user.ErrInvalidRole
	}

	users, err := u.UserRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	if filter.Role != nil {
		filtered := users[:0]
		for _, usr := range users {
			if usr.Role == *filter.Role {
				filtered = append(filtered, usr)
			}
		}
		users = filtered
	}
	return user.NewUserResponses(users), nil
}

// Create implements user.UserService. Email uniqueness is not enforced.
func (u *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := user.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Role:         req.Role,
		PasswordHash: string(hashedPassword),
		Department:   req.Department,
		JobTitle:     req.JobTitle,
	}

	err = u.tx.Mutate(ctx, func(ctx context.Context) error {
		return u.UserRepository.Add(ctx, newUser)
	})
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to add user: %w", err)
	}

	slog.Info("user added", "id", newUser.ID, "role", newUser.Role)
	return user.NewUserResponse(newUser), nil
}

// GetByID implements user.UserService.
func (u *UserServiceImpl) GetByID(ctx context.Context, id string) (user.UserResponse, error) {
	found, err := u.UserRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.UserResponse{}, err
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user.NewUserResponse(found), nil
}
