package gormrepo

import (
	"context"

	circulationdomain "library-app-go/internal/domain/circulation"
	"gorm.io/gorm"
)

type CirculationRepository struct {
	db *gorm.DB
}

func NewCirculation(db *gorm.DB) *CirculationRepository {
	return &CirculationRepository{db: db}
}

func (r *CirculationRepository) ListBorrowRecords(ctx context.Context) ([]circulationdomain.BorrowRecord, error) {
	var records []circulationdomain.BorrowRecord
	if err := r.db.WithContext(ctx).
		Preload("LibraryMember").
		Preload("Book").
		Order("borrow_date desc, id asc").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
