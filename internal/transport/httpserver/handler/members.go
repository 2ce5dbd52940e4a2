package handler

import (
	"errors"
	"net/http"
	"time"

	memberdomain "library-app-go/internal/domain/member"
)

type membershipCardResponse struct {
	ID         uint      `json:"id"`
	CardNumber string    `json:"card_number"`
	IssueDate  time.Time `json:"issue_date"`
	ExpiryDate time.Time `json:"expiry_date"`
}

type memberResponse struct {
	ID             uint                    `json:"id"`
	Name           string                  `json:"name"`
	Email          string                  `json:"email"`
	MembershipDate time.Time               `json:"membership_date"`
	MembershipCard *membershipCardResponse `json:"membership_card"`
}

func (h *Handlers) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.Members.ListMembers(r.Context())
	if err != nil {
		h.log.InternalError("members.list: list members failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]memberResponse, 0, len(members))
	for i := range members {
		response = append(response, toMemberResponse(&members[i]))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) GetMember(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid member id")
		return
	}

	result, err := h.Members.GetMember(r.Context(), id)
	if err != nil {
		if errors.Is(err, memberdomain.ErrMemberNotFound) {
			h.log.BusinessError("members.get: member not found", err, "member_id", id)
			writeError(w, http.StatusNotFound, "member_not_found", "member not found")
			return
		}
		h.log.InternalError("members.get: get member failed", err, "member_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toMemberResponse(result))
}

func toMemberResponse(m *memberdomain.LibraryMember) memberResponse {
	response := memberResponse{
		ID:             m.ID,
		Name:           m.Name,
		Email:          m.Email,
		MembershipDate: m.MembershipDate,
	}
	if card := m.MembershipCard; card != nil {
		response.MembershipCard = &membershipCardResponse{
			ID:         card.ID,
			CardNumber: card.CardNumber,
			IssueDate:  card.IssueDate,
			ExpiryDate: card.ExpiryDate,
		}
	}
	return response
}
