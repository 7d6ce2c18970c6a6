// Package testutil provides shared test doubles for the repository layer.
package testutil

import (
	"sync"

	"github.com/emzola/bookgraph/data"
	"github.com/emzola/bookgraph/repository"
)

// BookStore is an in-memory implementation of the repository layer. It mimics
// the database contract: IDs are assigned sequentially on insert, lookups of
// absent IDs fail with repository.ErrRecordNotFound, and deletes are hard.
type BookStore struct {
	mu     sync.Mutex
	nextID int64
	books  map[int64]data.Book
}

// NewBookStore creates an empty in-memory book store.
func NewBookStore() *BookStore {
	return &BookStore{
		nextID: 1,
		books:  make(map[int64]data.Book),
	}
}

// CreateBook inserts a book record and assigns it the next sequential ID.
func (s *BookStore) CreateBook(book *data.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	book.ID = s.nextID
	s.nextID++
	s.books[book.ID] = *book
	return nil
}

// GetBook retrieves a book record by its ID.
func (s *BookStore) GetBook(bookID int64) (*data.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	book, ok := s.books[bookID]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	return &book, nil
}

// GetAllBooks retrieves every book record in insertion order.
func (s *BookStore) GetAllBooks() ([]*data.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	books := []*data.Book{}
	for id := int64(1); id < s.nextID; id++ {
		if book, ok := s.books[id]; ok {
			b := book
			books = append(books, &b)
		}
	}
	return books, nil
}

// GetBooksByReview retrieves the books whose review score matches exactly.
func (s *BookStore) GetBooksByReview(review int32) ([]*data.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	books := []*data.Book{}
	for id := int64(1); id < s.nextID; id++ {
		if book, ok := s.books[id]; ok && book.Review == review {
			b := book
			books = append(books, &b)
		}
	}
	return books, nil
}

// UpdateBook overwrites an existing book record.
func (s *BookStore) UpdateBook(book *data.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.books[book.ID]; !ok {
		return repository.ErrRecordNotFound
	}
	s.books[book.ID] = *book
	return nil
}

// DeleteBook removes a book record by its ID.
func (s *BookStore) DeleteBook(bookID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.books[bookID]; !ok {
		return repository.ErrRecordNotFound
	}
	delete(s.books, bookID)
	return nil
}
