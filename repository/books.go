package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/emzola/bookgraph/data"
)

type books interface {
	CreateBook(book *data.Book) error
	GetBook(bookID int64) (*data.Book, error)
	GetAllBooks() ([]*data.Book, error)
	GetBooksByReview(review int32) ([]*data.Book, error)
	UpdateBook(book *data.Book) error
	DeleteBook(bookID int64) error
}

// CreateBook creates a new book record. The database assigns the record's ID,
// which is scanned back into the book struct.
func (r *repository) CreateBook(book *data.Book) error {
	query := `
		INSERT INTO books (title, author, year_published, review)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	args := []interface{}{book.Title, book.Author, book.YearPublished, book.Review}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return r.db.QueryRowContext(ctx, query, args...).Scan(&book.ID)
}

// GetBook retrieves a book record by its ID.
func (r *repository) GetBook(bookID int64) (*data.Book, error) {
	if bookID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT id, title, author, year_published, review
		FROM books
		WHERE id = $1`
	var book data.Book
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, bookID).Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.YearPublished,
		&book.Review,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &book, nil
}

// GetAllBooks retrieves every book record in the table's default order.
func (r *repository) GetAllBooks() ([]*data.Book, error) {
	query := `
		SELECT id, title, author, year_published, review
		FROM books`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	books := []*data.Book{}
	for rows.Next() {
		var book data.Book
		err := rows.Scan(
			&book.ID,
			&book.Title,
			&book.Author,
			&book.YearPublished,
			&book.Review,
		)
		if err != nil {
			return nil, err
		}
		books = append(books, &book)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

// GetBooksByReview retrieves the set of book records whose review score
// exactly matches the given value. An empty slice is returned when no
// record matches.
func (r *repository) GetBooksByReview(review int32) ([]*data.Book, error) {
	query := `
		SELECT id, title, author, year_published, review
		FROM books
		WHERE review = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, review)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	books := []*data.Book{}
	for rows.Next() {
		var book data.Book
		err := rows.Scan(
			&book.ID,
			&book.Title,
			&book.Author,
			&book.YearPublished,
			&book.Review,
		)
		if err != nil {
			return nil, err
		}
		books = append(books, &book)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

// UpdateBook overwrites every field of a book record, keyed by its ID.
func (r *repository) UpdateBook(book *data.Book) error {
	query := `
		UPDATE books
		SET title = $1, author = $2, year_published = $3, review = $4
		WHERE id = $5`
	args := []interface{}{book.Title, book.Author, book.YearPublished, book.Review, book.ID}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// DeleteBook permanently deletes a book record by its ID.
func (r *repository) DeleteBook(bookID int64) error {
	if bookID < 1 {
		return ErrRecordNotFound
	}
	query := `
		DELETE FROM books
		WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, bookID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
