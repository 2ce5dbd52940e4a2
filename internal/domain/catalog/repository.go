package catalog

import "context"

type Repository interface {
	ListBooks(ctx context.Context) ([]Book, error)
	GetBook(ctx context.Context, id uint) (*Book, error)
	ListAuthors(ctx context.Context) ([]Author, error)
}
