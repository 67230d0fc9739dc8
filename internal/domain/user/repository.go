package user

import (
	"context"
)

type UserRepository interface {
	// List returns every user, merging in default users missing by id
	List(ctx context.Context) ([]User, error)

	// Add appends a user. Email uniqueness is not checked.
	Add(ctx context.Context, newUser User) error

	// GetByID and GetByEmail scan the full list (O(n)) and return ErrUserNotFound
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
}

// Lookup resolves user ids against one snapshot of the user list. Build it
// once per request instead of calling GetByID in a loop.
type Lookup map[string]User

func NewLookup(users []User) Lookup {
	l := make(Lookup, len(users))
	for _, u := range users {
		l[u.ID] = u
	}
	return l
}
