package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	userdomain "library-app-go/internal/domain/user"
	"library-app-go/pkg/logger"
)

const realm = "library"

type contextKey int

const userKey contextKey = iota

type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*userdomain.User, error)
}

type BasicAuth struct {
	users Authenticator
	log   logger.Logger
}

func NewBasicAuth(users Authenticator, log logger.Logger) *BasicAuth {
	return &BasicAuth{users: users, log: log}
}

func (a *BasicAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			unauthorized(w)
			return
		}

		user, err := a.users.Authenticate(r.Context(), username, password)
		if err != nil {
			if errors.Is(err, userdomain.ErrInvalidCredentials) {
				a.log.BusinessError("auth: invalid credentials", err, "username", username)
				unauthorized(w)
				return
			}
			a.log.InternalError("auth: authenticate failed", err, "username", username)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
			return
		}

		ctx := WithUser(r.Context(), *user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole rejects authenticated users whose role is not listed.
func RequireRole(roles ...userdomain.Role) func(http.Handler) http.Handler {
	allowed := make(map[userdomain.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				unauthorized(w)
				return
			}
			if _, ok := allowed[user.Role]; !ok {
				writeError(w, http.StatusForbidden, "forbidden", "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="`+realm+`", charset="UTF-8"`)
	writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
}

func WithUser(ctx context.Context, user userdomain.User) context.Context {
	user.Password = ""
	return context.WithValue(ctx, userKey, user)
}

func UserFromContext(ctx context.Context) (userdomain.User, bool) {
	value := ctx.Value(userKey)
	user, ok := value.(userdomain.User)
	if !ok || user.ID == 0 {
		return userdomain.User{}, false
	}
	return user, true
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
