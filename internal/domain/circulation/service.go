package circulation

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListBorrowRecords(ctx context.Context) ([]BorrowRecord, error) {
	return s.repo.ListBorrowRecords(ctx)
}
