package service

import (
	"errors"

	"github.com/emzola/bookgraph/data"
	"github.com/emzola/bookgraph/data/dto"
	"github.com/emzola/bookgraph/repository"
)

type books interface {
	CreateBook(input dto.BookInput) (*data.Book, error)
	GetBook(bookID int64) (*data.Book, error)
	GetAllBooks() ([]*data.Book, error)
	GetBooksByReview(review int32) ([]*data.Book, error)
	UpdateBook(input dto.BookInput) (*data.Book, error)
	DeleteBook(bookID int64) (*data.Book, error)
}

// CreateBook service creates a new book from the input payload. Any ID in the
// input is ignored; the database assigns the record's ID.
func (s *service) CreateBook(input dto.BookInput) (*data.Book, error) {
	book := &data.Book{
		Title:         input.Title,
		Author:        input.Author,
		YearPublished: input.YearPublished,
		Review:        input.Review,
	}
	err := s.repo.CreateBook(book)
	if err != nil {
		return nil, err
	}
	return book, nil
}

// GetBook service retrieves a single book by its ID.
func (s *service) GetBook(bookID int64) (*data.Book, error) {
	book, err := s.repo.GetBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return book, nil
}

// GetAllBooks service retrieves every book record.
func (s *service) GetAllBooks() ([]*data.Book, error) {
	return s.repo.GetAllBooks()
}

// GetBooksByReview service retrieves all books whose review score exactly
// matches the given value. No match yields an empty slice, not an error.
func (s *service) GetBooksByReview(review int32) ([]*data.Book, error) {
	return s.repo.GetBooksByReview(review)
}

// UpdateBook service overwrites every field of an existing book with the
// input values, keyed by the input's ID. If no record with that ID exists,
// the lookup fails with ErrRecordNotFound; there is no null-result branch.
func (s *service) UpdateBook(input dto.BookInput) (*data.Book, error) {
	book, err := s.repo.GetBook(input.ID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	book.Title = input.Title
	book.Author = input.Author
	book.YearPublished = input.YearPublished
	book.Review = input.Review
	err = s.repo.UpdateBook(book)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return book, nil
}

// DeleteBook service permanently deletes a book by its ID and returns the
// deleted record.
func (s *service) DeleteBook(bookID int64) (*data.Book, error) {
	book, err := s.repo.GetBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	err = s.repo.DeleteBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return book, nil
}
