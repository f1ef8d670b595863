package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when registering an email that already has an account.
	ErrDuplicateEmail = errors.New("an user already exist in this email")

	// ErrDuplicateUsername is returned when registering a username that is already taken.
	ErrDuplicateUsername = errors.New("username is already taken")

	// ErrInvalidCredentials is returned for both unknown emails and wrong passwords,
	// so callers cannot distinguish which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserStoreIface exposes all user data operations.
// No handler MAY query the DB directly; all access goes through this interface.
type UserStoreIface interface {
	Create(ctx context.Context, reg Registration) (*User, error)
	Authenticate(ctx context.Context, email, password string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ListAll(ctx context.Context) ([]*User, error)
	UpdateRole(ctx context.Context, id, role string) (*User, error)
}
