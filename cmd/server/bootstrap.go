package main

import (
	"context"
	"fmt"
	"io"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/resume-analyzer/pkg/catalog"
	"github.com/artem13815/resume-analyzer/pkg/config"
	"github.com/artem13815/resume-analyzer/pkg/logger"
	pgrepo "github.com/artem13815/resume-analyzer/pkg/repository/postgres"
	"github.com/artem13815/resume-analyzer/pkg/storage/postgres"
)

// loadConfig читает и проверяет конфигурацию, затем настраивает логгер.
func loadConfig(logOut io.Writer) (config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	logger.Init(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: logOut,
	})
	return cfg, nil
}

// connectIfConfigured opens a pool when DATABASE_URL is set; nil otherwise.
func connectIfConfigured(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	if cfg.DatabaseURL == "" {
		return nil, nil
	}
	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}
	return pool, nil
}

// catalogSource picks the backing store named by CATALOG_SOURCE.
func catalogSource(cfg config.Config, pool *pgxpool.Pool) (catalog.Source, error) {
	switch catalog.Kind(cfg.CatalogSource) {
	case catalog.KindFile:
		return catalog.FileSource{Path: cfg.CatalogFile}, nil
	case catalog.KindPostgres:
		if pool == nil {
			return nil, fmt.Errorf("catalog source %q needs DATABASE_URL", cfg.CatalogSource)
		}
		return pgrepo.NewCatalogRepository(pool), nil
	case catalog.KindBuiltin, "":
		return catalog.Builtin(), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.CatalogSource)
	}
}

// loadCatalog loads the catalog once; the value is read-only afterwards.
func loadCatalog(ctx context.Context, cfg config.Config, pool *pgxpool.Pool) (catalog.Catalog, error) {
	src, err := catalogSource(cfg, pool)
	if err != nil {
		return catalog.Catalog{}, err
	}
	cat, err := src.Load(ctx)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("load catalog: %w", err)
	}
	logger.Info().
		Str("source", cfg.CatalogSource).
		Int("skills", len(cat.Skills)).
		Msg("catalog loaded")
	return cat, nil
}
