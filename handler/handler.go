package handler

import (
	"github.com/graphql-go/graphql"
	gqlhandler "github.com/graphql-go/handler"
	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/time/rate"

	"github.com/emzola/bookgraph/config"
	"github.com/emzola/bookgraph/internal/jsonlog"
)

// Handler defines the Handler layer.
type Handler struct {
	config   config.Config
	logger   *jsonlog.Logger
	limiters *ttlcache.Cache[string, *rate.Limiter]
	graphql  *gqlhandler.Handler
}

// New creates a new instance of Handler. The GraphQL schema is injected here,
// fully constructed, and served through the graphql-go HTTP handler. The
// limiter cache holds one rate limiter per client IP; entries expire when a
// client has not been seen for the cache's TTL.
func New(cfg config.Config, logger *jsonlog.Logger, limiters *ttlcache.Cache[string, *rate.Limiter], schema graphql.Schema) *Handler {
	return &Handler{
		config:   cfg,
		logger:   logger,
		limiters: limiters,
		graphql: gqlhandler.New(&gqlhandler.Config{
			Schema:   &schema,
			Pretty:   cfg.Graphql.Pretty,
			GraphiQL: cfg.Graphql.Graphiql,
		}),
	}
}
