package kvstore

import (
	"context"

	"github.com/nexus-os/office-backend/internal/domain/user"
	"github.com/nexus-os/office-backend/internal/fixtures"
	"github.com/nexus-os/office-backend/internal/pkg/store"
)

type userRepositoryImpl struct {
	store *store.Store
}

func NewUserRepository(s *store.Store) user.UserRepository {
	return &userRepositoryImpl{store: s}
}

func (r *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	return store.ReadMergeByID(ctx, r.store, KeyUsers, fixtures.DefaultUsers(), func(u user.User) string {
		return u.ID
	})
}

func (r *userRepositoryImpl) Add(ctx context.Context, newUser user.User) error {
	return r.store.Mutate(ctx, func(ctx context.Context) error {
		users, err := r.List(ctx)
		if err != nil {
			return err
		}
		return r.store.Write(ctx, KeyUsers, append(users, newUser))
	})
}

func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return user.User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return user.User{}, err
	}
	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}
