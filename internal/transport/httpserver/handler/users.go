package handler

import (
	"net/http"

	userdomain "library-app-go/internal/domain/user"
	"library-app-go/internal/transport/httpserver/middleware"
)

type userResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (h *Handlers) AuthMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(&user))
}

func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.ListUsers(r.Context())
	if err != nil {
		h.log.InternalError("users.list: list users failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]userResponse, 0, len(users))
	for i := range users {
		response = append(response, toUserResponse(&users[i]))
	}

	writeJSON(w, http.StatusOK, response)
}

func toUserResponse(u *userdomain.User) userResponse {
	return userResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     string(u.Role),
	}
}
