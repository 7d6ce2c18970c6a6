package handler

import (
	"expvar"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (h *Handler) Routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(h.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(h.methodNotAllowed)

	// The GraphQL endpoint is the entire data API. GET serves GraphiQL when
	// enabled in config; POST executes queries and mutations.
	router.Handler(http.MethodGet, "/v1/graphql", h.graphql)
	router.Handler(http.MethodPost, "/v1/graphql", h.graphql)

	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", h.healthcheckHandler)
	router.HandlerFunc(http.MethodGet, "/debug/vars", h.basicAuth(expvar.Handler().ServeHTTP))

	return h.metrics(h.recoverPanic(h.enableCORS(h.rateLimit(router))))
}
