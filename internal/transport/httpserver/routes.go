package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"library-app-go/internal/config"
	userdomain "library-app-go/internal/domain/user"
	"library-app-go/internal/transport/httpserver/handler"
	authmw "library-app-go/internal/transport/httpserver/middleware"
	"library-app-go/pkg/logger"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, users authmw.Authenticator, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(authmw.NewCORS(cfg.CORSAllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		auth := authmw.NewBasicAuth(users, log)
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)
			r.Use(authmw.RequireRole(userdomain.RoleAdmin, userdomain.RoleLibrarian))

			r.Get("/auth/me", handlers.AuthMe)

			r.Get("/members", handlers.ListMembers)
			r.Get("/members/{id}", handlers.GetMember)

			r.Get("/books", handlers.ListBooks)
			r.Get("/books/{id}", handlers.GetBook)
			r.Get("/authors", handlers.ListAuthors)

			r.Get("/borrow-records", handlers.ListBorrowRecords)

			r.With(authmw.RequireRole(userdomain.RoleAdmin)).Get("/users", handlers.ListUsers)
		})
	})

	return r
}
