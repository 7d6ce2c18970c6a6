package service

import (
	"github.com/emzola/bookgraph/config"
	"github.com/emzola/bookgraph/internal/jsonlog"
	"github.com/emzola/bookgraph/repository"
)

type Service interface {
	books
}

// Service defines the app's service layer.
type service struct {
	config config.Config
	logger *jsonlog.Logger
	repo   repository.Repository
}

// New creates a new instance of Service.
func New(cfg config.Config, logger *jsonlog.Logger, repo repository.Repository) *service {
	return &service{
		config: cfg,
		logger: logger,
		repo:   repo,
	}
}
