package graph

import (
	"fmt"
	"strconv"

	"github.com/graphql-go/graphql"

	"github.com/emzola/bookgraph/data"
	"github.com/emzola/bookgraph/data/dto"
)

// newBookType declares the Book object type. Each field carries an explicit
// resolver against the Book record struct rather than relying on reflective
// field matching, so renaming a struct field cannot silently detach it from
// the API.
func (b *builder) newBookType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name:        "Book",
		Description: "A persisted book record.",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.ID,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if book, ok := p.Source.(*data.Book); ok {
						return book.ID, nil
					}
					return nil, nil
				},
			},
			"title": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if book, ok := p.Source.(*data.Book); ok {
						return book.Title, nil
					}
					return nil, nil
				},
			},
			"author": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if book, ok := p.Source.(*data.Book); ok {
						return book.Author, nil
					}
					return nil, nil
				},
			},
			"yearPublished": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if book, ok := p.Source.(*data.Book); ok {
						return book.YearPublished, nil
					}
					return nil, nil
				},
			},
			"review": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if book, ok := p.Source.(*data.Book); ok {
						return book.Review, nil
					}
					return nil, nil
				},
			},
		},
	})
}

// newBookInputType declares the BookInput payload for the create and update
// mutations. The id field is only meaningful to updateBook; createBook
// ignores it.
func (b *builder) newBookInputType() *graphql.InputObject {
	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "BookInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id": &graphql.InputObjectFieldConfig{
				Type: graphql.ID,
			},
			"title": &graphql.InputObjectFieldConfig{
				Type: graphql.String,
			},
			"author": &graphql.InputObjectFieldConfig{
				Type: graphql.String,
			},
			"yearPublished": &graphql.InputObjectFieldConfig{
				Type: graphql.String,
			},
			"review": &graphql.InputObjectFieldConfig{
				Type: graphql.Int,
			},
		},
	})
}

// allBooksField resolves to every book record, in storage default order.
func (b *builder) allBooksField() *graphql.Field {
	return &graphql.Field{
		Type:        graphql.NewList(b.bookType),
		Description: "List every book record.",
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return b.service.GetAllBooks()
		},
	}
}

// bookField resolves a single book by its ID. A missing record surfaces as
// an error in the response's errors list.
func (b *builder) bookField() *graphql.Field {
	return &graphql.Field{
		Type:        b.bookType,
		Description: "Fetch a single book by its ID.",
		Args: graphql.FieldConfigArgument{
			"bookId": &graphql.ArgumentConfig{
				Type: graphql.Int,
			},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			bookID, ok := p.Args["bookId"].(int)
			if !ok {
				return nil, nil
			}
			return b.service.GetBook(int64(bookID))
		},
	}
}

// reviewField resolves the set of books whose review score matches exactly.
// No match yields an empty list, not an error.
func (b *builder) reviewField() *graphql.Field {
	return &graphql.Field{
		Type:        graphql.NewList(b.bookType),
		Description: "List the books whose review score matches exactly.",
		Args: graphql.FieldConfigArgument{
			"bookReview": &graphql.ArgumentConfig{
				Type: graphql.Int,
			},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			review, ok := p.Args["bookReview"].(int)
			if !ok {
				return nil, nil
			}
			return b.service.GetBooksByReview(int32(review))
		},
	}
}

// createBookField inserts a new book. The database assigns the ID; an ID in
// the input payload is ignored.
func (b *builder) createBookField() *graphql.Field {
	payload := graphql.NewObject(graphql.ObjectConfig{
		Name:   "CreateBookPayload",
		Fields: bookPayloadFields(b.bookType),
	})
	return &graphql.Field{
		Type:        payload,
		Description: "Create a new book record.",
		Args: graphql.FieldConfigArgument{
			"bookData": &graphql.ArgumentConfig{
				Type: graphql.NewNonNull(b.bookInput),
			},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			input, err := decodeBookInput(p.Args["bookData"])
			if err != nil {
				return nil, err
			}
			return b.service.CreateBook(input)
		},
	}
}

// updateBookField overwrites every field of an existing book with the input
// values. A missing record fails the lookup; the error propagates to the
// response's errors list.
func (b *builder) updateBookField() *graphql.Field {
	payload := graphql.NewObject(graphql.ObjectConfig{
		Name:   "UpdateBookPayload",
		Fields: bookPayloadFields(b.bookType),
	})
	return &graphql.Field{
		Type:        payload,
		Description: "Overwrite an existing book record, keyed by the input's id.",
		Args: graphql.FieldConfigArgument{
			"bookData": &graphql.ArgumentConfig{
				Type: graphql.NewNonNull(b.bookInput),
			},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			input, err := decodeBookInput(p.Args["bookData"])
			if err != nil {
				return nil, err
			}
			return b.service.UpdateBook(input)
		},
	}
}

// deleteBookField permanently deletes a book and returns the deleted record.
func (b *builder) deleteBookField() *graphql.Field {
	payload := graphql.NewObject(graphql.ObjectConfig{
		Name:   "DeleteBookPayload",
		Fields: bookPayloadFields(b.bookType),
	})
	return &graphql.Field{
		Type:        payload,
		Description: "Delete a book record and return the deleted record.",
		Args: graphql.FieldConfigArgument{
			"id": &graphql.ArgumentConfig{
				Type: graphql.ID,
			},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			id, ok := p.Args["id"]
			if !ok {
				return nil, nil
			}
			bookID, err := parseID(id)
			if err != nil {
				return nil, err
			}
			return b.service.DeleteBook(bookID)
		},
	}
}

// bookPayloadFields declares the single book field shared by the mutation
// payload objects. The mutation resolvers return the affected record itself,
// which becomes the payload's source.
func bookPayloadFields(bookType *graphql.Object) graphql.Fields {
	return graphql.Fields{
		"book": &graphql.Field{
			Type: bookType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if book, ok := p.Source.(*data.Book); ok {
					return book, nil
				}
				return nil, nil
			},
		},
	}
}

// decodeBookInput converts the coerced bookData argument into a BookInput
// payload. Type coercion has already been performed by the GraphQL layer;
// any field of the wrong shape never reaches this point.
func decodeBookInput(arg interface{}) (dto.BookInput, error) {
	var input dto.BookInput
	values, ok := arg.(map[string]interface{})
	if !ok {
		return input, fmt.Errorf("bookData must be a BookInput object")
	}
	if id, ok := values["id"]; ok && id != nil {
		bookID, err := parseID(id)
		if err != nil {
			return input, err
		}
		input.ID = bookID
	}
	if title, ok := values["title"].(string); ok {
		input.Title = title
	}
	if author, ok := values["author"].(string); ok {
		input.Author = author
	}
	if yearPublished, ok := values["yearPublished"].(string); ok {
		input.YearPublished = yearPublished
	}
	if review, ok := values["review"].(int); ok {
		input.Review = int32(review)
	}
	return input, nil
}

// parseID converts a coerced ID argument into an int64 key. The ID scalar
// serializes as a string, but literals may also arrive as integers.
func parseID(value interface{}) (int64, error) {
	switch v := value.(type) {
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid id value %q", v)
		}
		return id, nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("invalid id value %v", value)
	}
}
