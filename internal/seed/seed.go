// Package seed populates an empty library database with a fixed sample
// dataset at startup.
//
// The emptiness check only looks at members, books and authors. A database
// where any of those tables has rows is treated as seeded, even if cards,
// borrow records or users are missing.
package seed

import (
	"context"
	"fmt"
	"time"

	"library-app-go/internal/domain/catalog"
	"library-app-go/internal/domain/circulation"
	"library-app-go/internal/domain/member"
	"library-app-go/internal/domain/user"
	"library-app-go/pkg/logger"
)

const cardValidity = 365 * 24 * time.Hour

// Store is the persistence surface the seeder needs for one entity type.
// SaveAll and Save must assign primary keys to the passed entities.
type Store[T any] interface {
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, entity *T) error
	SaveAll(ctx context.Context, entities []*T) error
}

type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
}

type Stores struct {
	Members       Store[member.LibraryMember]
	Cards         Store[member.MembershipCard]
	Authors       Store[catalog.Author]
	Books         Store[catalog.Book]
	BorrowRecords Store[circulation.BorrowRecord]
	Users         Store[user.User]
}

type Seeder struct {
	stores Stores
	hasher PasswordHasher
	log    logger.Logger
	now    func() time.Time
}

type Option func(*Seeder)

func WithClock(now func() time.Time) Option {
	return func(s *Seeder) {
		s.now = now
	}
}

func New(stores Stores, hasher PasswordHasher, log logger.Logger, opts ...Option) *Seeder {
	s := &Seeder{
		stores: stores,
		hasher: hasher,
		log:    log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run seeds the sample dataset when members, books and authors are all empty.
// It reports whether anything was written. A failing step aborts the rest;
// batches saved before it stay in place.
func (s *Seeder) Run(ctx context.Context) (bool, error) {
	seeded, err := s.alreadySeeded(ctx)
	if err != nil {
		return false, err
	}
	if seeded {
		s.log.Info("seed: database already seeded, skipping")
		return false, nil
	}

	now := s.now()

	members := sampleMembers(now)
	if err := s.stores.Members.SaveAll(ctx, members); err != nil {
		return false, fmt.Errorf("seed members: %w", err)
	}

	cards := sampleCards(now)
	for i, card := range cards {
		member.LinkCard(members[i], card)
	}
	if err := s.stores.Cards.SaveAll(ctx, cards); err != nil {
		return false, fmt.Errorf("seed membership cards: %w", err)
	}

	authors := sampleAuthors()
	if err := s.stores.Authors.SaveAll(ctx, authors); err != nil {
		return false, fmt.Errorf("seed authors: %w", err)
	}

	books := sampleBooks()
	for i, book := range books {
		catalog.LinkAuthor(book, authors[i])
	}
	if err := s.stores.Books.SaveAll(ctx, books); err != nil {
		return false, fmt.Errorf("seed books: %w", err)
	}

	record := circulation.NewBorrowRecord(members[0], books[0], now)
	if err := s.stores.BorrowRecords.Save(ctx, record); err != nil {
		return false, fmt.Errorf("seed borrow record: %w", err)
	}

	users, err := s.sampleUsers(ctx)
	if err != nil {
		return false, fmt.Errorf("seed users: %w", err)
	}
	if err := s.stores.Users.SaveAll(ctx, users); err != nil {
		return false, fmt.Errorf("seed users: %w", err)
	}

	s.log.Info("seed: database seeded successfully",
		"members", len(members),
		"cards", len(cards),
		"authors", len(authors),
		"books", len(books),
		"borrow_records", 1,
		"users", len(users),
	)
	return true, nil
}

func (s *Seeder) alreadySeeded(ctx context.Context) (bool, error) {
	checks := []struct {
		name  string
		count func(context.Context) (int64, error)
	}{
		{"members", s.stores.Members.Count},
		{"books", s.stores.Books.Count},
		{"authors", s.stores.Authors.Count},
	}

	for _, check := range checks {
		n, err := check.count(ctx)
		if err != nil {
			return false, fmt.Errorf("seed: count %s: %w", check.name, err)
		}
		if n > 0 {
			s.log.Debug("seed: found existing rows", "table", check.name, "count", n)
			return true, nil
		}
	}
	return false, nil
}
