package gormrepo

import (
	"context"
	"errors"

	catalogdomain "library-app-go/internal/domain/catalog"
	"gorm.io/gorm"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalog(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) ListBooks(ctx context.Context) ([]catalogdomain.Book, error) {
	var books []catalogdomain.Book
	if err := r.db.WithContext(ctx).
		Preload("Authors", func(db *gorm.DB) *gorm.DB { return db.Order("authors.id asc") }).
		Order("id asc").
		Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

func (r *CatalogRepository) GetBook(ctx context.Context, id uint) (*catalogdomain.Book, error) {
	var book catalogdomain.Book
	if err := r.db.WithContext(ctx).
		Preload("Authors").
		First(&book, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalogdomain.ErrBookNotFound
		}
		return nil, err
	}
	return &book, nil
}

func (r *CatalogRepository) ListAuthors(ctx context.Context) ([]catalogdomain.Author, error) {
	var authors []catalogdomain.Author
	if err := r.db.WithContext(ctx).
		Preload("Books", func(db *gorm.DB) *gorm.DB { return db.Order("books.id asc") }).
		Order("id asc").
		Find(&authors).Error; err != nil {
		return nil, err
	}
	return authors, nil
}
