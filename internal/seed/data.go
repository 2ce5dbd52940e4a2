package seed

import (
	"context"
	"fmt"
	"time"

	"library-app-go/internal/domain/catalog"
	"library-app-go/internal/domain/member"
	"library-app-go/internal/domain/user"
)

func sampleMembers(now time.Time) []*member.LibraryMember {
	return []*member.LibraryMember{
		{Name: "John Doe", Email: "john.doe@example.com", MembershipDate: now},
		{Name: "Alice Smith", Email: "alice.smith@example.com", MembershipDate: now},
	}
}

// sampleCards is index-aligned with sampleMembers.
func sampleCards(now time.Time) []*member.MembershipCard {
	expiry := now.Add(cardValidity)
	return []*member.MembershipCard{
		{CardNumber: "M12345", IssueDate: now, ExpiryDate: expiry},
		{CardNumber: "M67890", IssueDate: now, ExpiryDate: expiry},
	}
}

func sampleAuthors() []*catalog.Author {
	return []*catalog.Author{
		{Name: "J.K. Rowling", Biography: "Famous for writing Harry Potter."},
		{Name: "George R.R. Martin", Biography: "Famous for writing Game of Thrones."},
	}
}

// sampleBooks is index-aligned with sampleAuthors.
func sampleBooks() []*catalog.Book {
	return []*catalog.Book{
		{Title: "Harry Potter and the Sorcerer's Stone", ISBN: "978-0747532699", PublicationYear: 1997},
		{Title: "A Game of Thrones", ISBN: "978-0553103540", PublicationYear: 1996},
	}
}

type sampleAccount struct {
	username string
	password string
	email    string
	role     user.Role
}

var sampleAccounts = []sampleAccount{
	{username: "admin", password: "admin123", email: "admin@example.com", role: user.RoleAdmin},
	{username: "lib", password: "lib123", email: "lib@example.com", role: user.RoleLibrarian},
}

func (s *Seeder) sampleUsers(ctx context.Context) ([]*user.User, error) {
	users := make([]*user.User, 0, len(sampleAccounts))
	for _, account := range sampleAccounts {
		hash, err := s.hasher.Hash(ctx, account.password)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", account.username, err)
		}
		users = append(users, &user.User{
			Username: account.username,
			Password: hash,
			Email:    account.email,
			Role:     account.role,
		})
	}
	return users, nil
}
