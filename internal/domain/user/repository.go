package user

import "context"

type Repository interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
}

type PasswordVerifier interface {
	Verify(ctx context.Context, password, hash string) (bool, error)
}

// DummyHashSource is implemented by verifiers that can supply a hash to
// compare against when the username is unknown.
type DummyHashSource interface {
	DummyHash() string
}
