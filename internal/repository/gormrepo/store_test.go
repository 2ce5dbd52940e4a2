package gormrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-app-go/internal/db/dbtest"
	"library-app-go/internal/domain/catalog"
	"library-app-go/internal/domain/member"
)

func TestStoreSaveAllAssignsIDs(t *testing.T) {
	ctx := context.Background()
	store := NewStore[catalog.Author](dbtest.SQLite(t))

	authors := []*catalog.Author{{Name: "A"}, {Name: "B"}}
	require.NoError(t, store.SaveAll(ctx, authors))
	assert.NotZero(t, authors[0].ID)
	assert.NotZero(t, authors[1].ID)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, store.SaveAll(ctx, nil))
}

func TestStoreOmitsAssociations(t *testing.T) {
	ctx := context.Background()
	gormDB := dbtest.SQLite(t)
	members := NewStore[member.LibraryMember](gormDB)
	cards := NewStore[member.MembershipCard](gormDB)

	now := time.Now()
	m := &member.LibraryMember{Name: "John", Email: "john@example.com", MembershipDate: now}
	require.NoError(t, members.Save(ctx, m))

	card := &member.MembershipCard{CardNumber: "M1", IssueDate: now, ExpiryDate: now.Add(time.Hour)}
	member.LinkCard(m, card)
	require.NoError(t, cards.Save(ctx, card))

	count, err := members.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestStoreWithReferencesWritesJoinRows(t *testing.T) {
	ctx := context.Background()
	gormDB := dbtest.SQLite(t)
	authors := NewStore[catalog.Author](gormDB)
	books := NewStore[catalog.Book](gormDB, WithReferences("Authors"))

	author := &catalog.Author{Name: "A"}
	require.NoError(t, authors.Save(ctx, author))

	book := &catalog.Book{Title: "T", ISBN: "978-0000000001", PublicationYear: 2000}
	catalog.LinkAuthor(book, author)
	require.NoError(t, books.Save(ctx, book))

	var joins int64
	require.NoError(t, gormDB.Table("book_authors").Count(&joins).Error)
	assert.Equal(t, int64(1), joins)

	count, err := authors.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestStoreRejectsInvalidEntity(t *testing.T) {
	ctx := context.Background()
	gormDB := dbtest.SQLite(t)
	books := NewStore[catalog.Book](gormDB)

	err := books.SaveAll(ctx, []*catalog.Book{{Title: "T", ISBN: "bad", PublicationYear: 2000}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, catalog.ErrInvalidISBN))

	count, err := books.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
