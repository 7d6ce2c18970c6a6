// Package graph declares the GraphQL schema for the book data-access API.
// Every query and mutation field maps one-to-one onto a service call; the
// field-to-type mappings are hand-declared so the API schema and the storage
// schema share a single source of truth.
package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/emzola/bookgraph/service"
)

// builder holds the service dependency and the schema's shared type
// instances while the schema is being assembled.
type builder struct {
	service   service.Service
	bookType  *graphql.Object
	bookInput *graphql.InputObject
}

// New constructs the GraphQL schema around the given service. The schema is
// built once at process start and injected into the HTTP handler; there is
// no package-level schema state.
func New(service service.Service) (graphql.Schema, error) {
	b := &builder{service: service}
	b.bookType = b.newBookType()
	b.bookInput = b.newBookInputType()

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"allBooks": b.allBooksField(),
			"book":     b.bookField(),
			"review":   b.reviewField(),
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createBook": b.createBookField(),
			"updateBook": b.updateBookField(),
			"deleteBook": b.deleteBookField(),
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
