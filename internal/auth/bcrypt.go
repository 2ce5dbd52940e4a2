package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed   = errors.New("failed to hash password")
	ErrInvalidPassword = errors.New("invalid password")
)

// Bcrypt hashes and verifies passwords. Hashes are salted, so hashing the
// same password twice yields different strings.
type Bcrypt struct {
	cost int

	dummyOnce sync.Once
	dummy     string
}

const dummyPassword = "library-app:no-such-user"

func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

func (b *Bcrypt) Hash(_ context.Context, password string) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHashingFailed, err)
	}

	return string(hashed), nil
}

func (b *Bcrypt) Verify(_ context.Context, password, hash string) (bool, error) {
	if password == "" || hash == "" {
		return false, ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, fmt.Errorf("compare password hash: %w", err)
	}

	return true, nil
}

// DummyHash returns a hash at the configured cost that matches no real
// password. Comparing against it on unknown usernames keeps login timing
// independent of whether the user exists.
func (b *Bcrypt) DummyHash() string {
	b.dummyOnce.Do(func() {
		hashed, err := bcrypt.GenerateFromPassword([]byte(dummyPassword), b.cost)
		if err == nil {
			b.dummy = string(hashed)
		}
	})
	return b.dummy
}
