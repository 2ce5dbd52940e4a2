package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

type Service struct {
	repo     Repository
	verifier PasswordVerifier
}

func NewService(repo Repository, verifier PasswordVerifier) *Service {
	return &Service{repo: repo, verifier: verifier}
}

// Authenticate resolves username and checks password against the stored hash.
// Unknown users and wrong passwords both yield ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			s.compareDummy(ctx, password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := s.verifier.Verify(ctx, password, u.Password)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

func (s *Service) compareDummy(ctx context.Context, password string) {
	source, ok := s.verifier.(DummyHashSource)
	if !ok {
		return
	}
	if hash := source.DummyHash(); hash != "" {
		_, _ = s.verifier.Verify(ctx, password, hash)
	}
}

func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	return s.repo.ListUsers(ctx)
}
