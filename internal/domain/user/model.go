package user

type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleLibrarian Role = "LIBRARIAN"
	RoleMember    Role = "MEMBER"
)

type User struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"not null;uniqueIndex"`
	Password string `gorm:"not null" json:"-"`
	Email    string `gorm:"not null"`
	Role     Role   `gorm:"type:varchar(32);not null"`
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleLibrarian, RoleMember:
		return true
	default:
		return false
	}
}
