package member

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListMembers(ctx context.Context) ([]LibraryMember, error) {
	return s.repo.ListMembers(ctx)
}

func (s *Service) GetMember(ctx context.Context, id uint) (*LibraryMember, error) {
	if id == 0 {
		return nil, ErrMemberNotFound
	}
	return s.repo.GetMember(ctx, id)
}
