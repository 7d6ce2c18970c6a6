package service_test

import (
	"errors"
	"io"
	"testing"

	"github.com/emzola/bookgraph/config"
	"github.com/emzola/bookgraph/data/dto"
	"github.com/emzola/bookgraph/internal/jsonlog"
	"github.com/emzola/bookgraph/internal/testutil"
	"github.com/emzola/bookgraph/service"
)

func newTestService(t *testing.T) service.Service {
	t.Helper()
	logger := jsonlog.New(io.Discard, jsonlog.LevelOff)
	return service.New(config.Config{}, logger, testutil.NewBookStore())
}

func TestCreateBookService(t *testing.T) {
	t.Run("assigns an id and ignores the input's id", func(t *testing.T) {
		svc := newTestService(t)
		book, err := svc.CreateBook(dto.BookInput{
			ID:            99,
			Title:         "A",
			Author:        "B",
			YearPublished: "2020",
			Review:        5,
		})
		if err != nil {
			t.Fatal(err)
		}
		if book.ID != 1 {
			t.Errorf("expected storage-assigned id 1; got %d", book.ID)
		}
		if book.Title != "A" || book.Author != "B" || book.YearPublished != "2020" || book.Review != 5 {
			t.Errorf("created record does not match input: %+v", book)
		}
	})
}

func TestGetBookService(t *testing.T) {
	t.Run("translates a missing record into ErrRecordNotFound", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.GetBook(42)
		if !errors.Is(err, service.ErrRecordNotFound) {
			t.Errorf("expected ErrRecordNotFound; got %v", err)
		}
	})
}

func TestUpdateBookService(t *testing.T) {
	t.Run("overwrites every field", func(t *testing.T) {
		svc := newTestService(t)
		created, err := svc.CreateBook(dto.BookInput{Title: "Old", Author: "Old", YearPublished: "1999", Review: 2})
		if err != nil {
			t.Fatal(err)
		}
		updated, err := svc.UpdateBook(dto.BookInput{
			ID:            created.ID,
			Title:         "New",
			Author:        "New",
			YearPublished: "2000",
			Review:        4,
		})
		if err != nil {
			t.Fatal(err)
		}
		if updated.Title != "New" || updated.Author != "New" || updated.YearPublished != "2000" || updated.Review != 4 {
			t.Errorf("update did not overwrite all fields: %+v", updated)
		}
		fetched, err := svc.GetBook(created.ID)
		if err != nil {
			t.Fatal(err)
		}
		if *fetched != *updated {
			t.Errorf("persisted record %+v does not match update result %+v", fetched, updated)
		}
	})

	t.Run("propagates the lookup failure for an unknown id", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.UpdateBook(dto.BookInput{ID: 7, Title: "X"})
		if !errors.Is(err, service.ErrRecordNotFound) {
			t.Errorf("expected ErrRecordNotFound; got %v", err)
		}
	})
}

func TestDeleteBookService(t *testing.T) {
	t.Run("returns the deleted record and removes it", func(t *testing.T) {
		svc := newTestService(t)
		created, err := svc.CreateBook(dto.BookInput{Title: "A", Author: "B", YearPublished: "2020", Review: 5})
		if err != nil {
			t.Fatal(err)
		}
		deleted, err := svc.DeleteBook(created.ID)
		if err != nil {
			t.Fatal(err)
		}
		if deleted.ID != created.ID || deleted.Title != "A" {
			t.Errorf("expected the deleted record; got %+v", deleted)
		}
		_, err = svc.GetBook(created.ID)
		if !errors.Is(err, service.ErrRecordNotFound) {
			t.Errorf("expected ErrRecordNotFound after deletion; got %v", err)
		}
	})

	t.Run("fails with ErrRecordNotFound for an unknown id", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.DeleteBook(9)
		if !errors.Is(err, service.ErrRecordNotFound) {
			t.Errorf("expected ErrRecordNotFound; got %v", err)
		}
	})
}
