package circulation

import (
	"errors"
	"time"

	"library-app-go/internal/domain/catalog"
	"library-app-go/internal/domain/member"
)

var errBorrowInFuture = errors.New("borrow date is in the future")

type BorrowRecord struct {
	ID              uint      `gorm:"primaryKey"`
	BorrowDate      time.Time `gorm:"not null"`
	LibraryMemberID uint      `gorm:"not null;index"`
	BookID          uint      `gorm:"not null;index"`

	LibraryMember *member.LibraryMember `gorm:"foreignKey:LibraryMemberID;constraint:OnDelete:CASCADE"`
	Book          *catalog.Book         `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
}

func NewBorrowRecord(m *member.LibraryMember, book *catalog.Book, at time.Time) *BorrowRecord {
	return &BorrowRecord{
		BorrowDate:      at,
		LibraryMemberID: m.ID,
		BookID:          book.ID,
		LibraryMember:   m,
		Book:            book,
	}
}

func (r *BorrowRecord) Validate(now time.Time) error {
	if r.BorrowDate.After(now) {
		return errBorrowInFuture
	}
	return nil
}
