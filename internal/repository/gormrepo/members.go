package gormrepo

import (
	"context"
	"errors"

	memberdomain "library-app-go/internal/domain/member"
	"gorm.io/gorm"
)

type MemberRepository struct {
	db *gorm.DB
}

func NewMembers(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) ListMembers(ctx context.Context) ([]memberdomain.LibraryMember, error) {
	var members []memberdomain.LibraryMember
	if err := r.db.WithContext(ctx).
		Preload("MembershipCard").
		Order("id asc").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *MemberRepository) GetMember(ctx context.Context, id uint) (*memberdomain.LibraryMember, error) {
	var m memberdomain.LibraryMember
	if err := r.db.WithContext(ctx).
		Preload("MembershipCard").
		First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, memberdomain.ErrMemberNotFound
		}
		return nil, err
	}
	return &m, nil
}
