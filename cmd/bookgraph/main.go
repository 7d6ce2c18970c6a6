package main

import (
	"os"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/time/rate"

	"github.com/emzola/bookgraph/config"
	"github.com/emzola/bookgraph/graph"
	"github.com/emzola/bookgraph/handler"
	"github.com/emzola/bookgraph/internal/jsonlog"
	"github.com/emzola/bookgraph/repository"
	"github.com/emzola/bookgraph/repository/postgres"
	"github.com/emzola/bookgraph/service"
)

// app defines the application's layers and shared resources.
type app struct {
	config  config.Config
	handler *handler.Handler
}

func main() {
	logger := jsonlog.New(os.Stdout, jsonlog.LevelInfo)

	// Initialize configuration
	cfg, err := config.Decode()
	if err != nil {
		logger.PrintFatal(err, nil)
	}

	// Initialize database connection
	db, err := postgres.OpenDBConn(cfg)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	defer db.Close()
	logger.PrintInfo("database connection pool established", nil)

	// Shared resource: per-client rate limiter cache. Limiters for clients
	// not seen within the TTL are evicted in the background.
	limiters := ttlcache.New(ttlcache.WithTTL[string, *rate.Limiter](3 * time.Minute))
	go limiters.Start()

	// Application layers. The GraphQL schema is constructed here, once, and
	// handed to the handler; no layer holds package-level state.
	repo := repository.New(db)
	service := service.New(cfg, logger, repo)
	schema, err := graph.New(service)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	handler := handler.New(cfg, logger, limiters, schema)

	// Instantiate application
	app := &app{
		config:  cfg,
		handler: handler,
	}

	// Start HTTP server
	err = app.serve(logger)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
}
