package circulation

import "context"

type Repository interface {
	ListBorrowRecords(ctx context.Context) ([]BorrowRecord, error)
}
