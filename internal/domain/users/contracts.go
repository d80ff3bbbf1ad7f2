package users

import "context"

// UserService defines the operations of the CRUD sub-application.
type UserService interface {
	// Create stores a new user and returns it with its generated ID.
	Create(ctx context.Context, username, email string) (*User, error)

	// List returns users ordered by creation time.
	List(ctx context.Context, query *UserQuery) ([]*User, error)

	// GetByID returns ErrUserNotFound when no user has the given ID.
	GetByID(ctx context.Context, userID string) (*User, error)

	// DeleteByID returns ErrUserNotFound when no user has the given ID.
	DeleteByID(ctx context.Context, userID string) error
}

// UserRepository defines the interface for User-related persistence
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	List(ctx context.Context, query *UserQuery) ([]*User, error)
	GetByID(ctx context.Context, userID string) (*User, error)
	DeleteByID(ctx context.Context, userID string) error
}
