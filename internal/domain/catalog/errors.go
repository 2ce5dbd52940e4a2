package catalog

import "errors"

var (
	ErrBookNotFound = errors.New("book not found")
	ErrInvalidISBN  = errors.New("invalid isbn")
)
