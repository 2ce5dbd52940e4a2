package handler

import (
	"errors"
	"net/http"

	catalogdomain "library-app-go/internal/domain/catalog"
)

type authorRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type bookRef struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

type bookResponse struct {
	ID              uint        `json:"id"`
	Title           string      `json:"title"`
	ISBN            string      `json:"isbn"`
	PublicationYear int         `json:"publication_year"`
	Authors         []authorRef `json:"authors"`
}

type authorResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Biography string    `json:"biography"`
	Books     []bookRef `json:"books"`
}

func (h *Handlers) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.Catalog.ListBooks(r.Context())
	if err != nil {
		h.log.InternalError("books.list: list books failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]bookResponse, 0, len(books))
	for i := range books {
		response = append(response, toBookResponse(&books[i]))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) GetBook(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid book id")
		return
	}

	book, err := h.Catalog.GetBook(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalogdomain.ErrBookNotFound) {
			h.log.BusinessError("books.get: book not found", err, "book_id", id)
			writeError(w, http.StatusNotFound, "book_not_found", "book not found")
			return
		}
		h.log.InternalError("books.get: get book failed", err, "book_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toBookResponse(book))
}

func (h *Handlers) ListAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := h.Catalog.ListAuthors(r.Context())
	if err != nil {
		h.log.InternalError("authors.list: list authors failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]authorResponse, 0, len(authors))
	for _, author := range authors {
		books := make([]bookRef, 0, len(author.Books))
		for _, book := range author.Books {
			books = append(books, bookRef{ID: book.ID, Title: book.Title})
		}
		response = append(response, authorResponse{
			ID:        author.ID,
			Name:      author.Name,
			Biography: author.Biography,
			Books:     books,
		})
	}

	writeJSON(w, http.StatusOK, response)
}

func toBookResponse(book *catalogdomain.Book) bookResponse {
	authors := make([]authorRef, 0, len(book.Authors))
	for _, author := range book.Authors {
		authors = append(authors, authorRef{ID: author.ID, Name: author.Name})
	}
	return bookResponse{
		ID:              book.ID,
		Title:           book.Title,
		ISBN:            book.ISBN,
		PublicationYear: book.PublicationYear,
		Authors:         authors,
	}
}
