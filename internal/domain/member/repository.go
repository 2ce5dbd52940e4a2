package member

import "context"

type Repository interface {
	ListMembers(ctx context.Context) ([]LibraryMember, error)
	GetMember(ctx context.Context, id uint) (*LibraryMember, error)
}
