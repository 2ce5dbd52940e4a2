package handler

import (
	"net/http"
	"time"
)

type borrowRecordResponse struct {
	ID         uint      `json:"id"`
	BorrowDate time.Time `json:"borrow_date"`
	MemberID   uint      `json:"member_id"`
	MemberName string    `json:"member_name,omitempty"`
	Book       *bookRef  `json:"book,omitempty"`
}

func (h *Handlers) ListBorrowRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.Circulation.ListBorrowRecords(r.Context())
	if err != nil {
		h.log.InternalError("borrow_records.list: list borrow records failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]borrowRecordResponse, 0, len(records))
	for _, record := range records {
		item := borrowRecordResponse{
			ID:         record.ID,
			BorrowDate: record.BorrowDate,
			MemberID:   record.LibraryMemberID,
		}
		if record.LibraryMember != nil {
			item.MemberName = record.LibraryMember.Name
		}
		if record.Book != nil {
			item.Book = &bookRef{ID: record.Book.ID, Title: record.Book.Title}
		}
		response = append(response, item)
	}

	writeJSON(w, http.StatusOK, response)
}
