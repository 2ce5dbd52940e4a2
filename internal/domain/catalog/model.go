package catalog

import (
	"fmt"
	"regexp"
)

var isbnPattern = regexp.MustCompile(`^\d{3}-\d{10}$`)

type Author struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Biography string `gorm:"type:text"`

	Books []*Book `gorm:"many2many:book_authors;"`
}

type Book struct {
	ID              uint   `gorm:"primaryKey"`
	Title           string `gorm:"not null"`
	ISBN            string `gorm:"column:isbn;not null;uniqueIndex"`
	PublicationYear int    `gorm:"not null"`

	Authors []*Author `gorm:"many2many:book_authors;"`
}

func (b *Book) Validate() error {
	if !isbnPattern.MatchString(b.ISBN) {
		return fmt.Errorf("%w: %q", ErrInvalidISBN, b.ISBN)
	}
	return nil
}

// LinkAuthor records authorship on both the book and the author.
func LinkAuthor(book *Book, author *Author) {
	book.Authors = append(book.Authors, author)
	author.Books = append(author.Books, book)
}
