package main

import (
	"fmt"

	"github.com/ekskog/blog-site/internal/catalog"
	"github.com/ekskog/blog-site/internal/config"
	"github.com/ekskog/blog-site/internal/infrastructure"
	"github.com/ekskog/blog-site/pkg/logging"
)

// Runtime is the loaded configuration plus the systems built from it.
type Runtime struct {
	*infrastructure.Infrastructure
	Config *config.Config
}

func NewRuntime() (*Runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config load failed: %w", err)
	}

	logger := logging.New(&cfg.Logging)

	infra, err := infrastructure.New(cfg, catalog.Embedded(), logger)
	if err != nil {
		return nil, err
	}

	return &Runtime{
		Infrastructure: infra,
		Config:         cfg,
	}, nil
}
