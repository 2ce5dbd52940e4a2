package member

import (
	"errors"
	"time"
)

var errCardExpiry = errors.New("card expiry must be after issue date")

type LibraryMember struct {
	ID             uint      `gorm:"primaryKey"`
	Name           string    `gorm:"not null"`
	Email          string    `gorm:"not null;uniqueIndex"`
	MembershipDate time.Time `gorm:"not null"`

	MembershipCard *MembershipCard `gorm:"foreignKey:LibraryMemberID"`
}

type MembershipCard struct {
	ID              uint      `gorm:"primaryKey"`
	CardNumber      string    `gorm:"not null;uniqueIndex"`
	IssueDate       time.Time `gorm:"not null"`
	ExpiryDate      time.Time `gorm:"not null"`
	LibraryMemberID uint      `gorm:"not null;uniqueIndex"`

	LibraryMember *LibraryMember `gorm:"foreignKey:LibraryMemberID;constraint:OnDelete:CASCADE"`
}

func (c *MembershipCard) Validate() error {
	if !c.ExpiryDate.After(c.IssueDate) {
		return errCardExpiry
	}
	return nil
}

// LinkCard attaches card to m on both sides. m must already carry its
// persisted ID.
func LinkCard(m *LibraryMember, card *MembershipCard) {
	card.LibraryMember = m
	card.LibraryMemberID = m.ID
	m.MembershipCard = card
}
