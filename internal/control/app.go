// Package control wires the application together and manages its lifecycle.
package control

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/pressly/goose/v3"

	"github.com/vietddude/productinfo/internal/aggregate"
	"github.com/vietddude/productinfo/internal/api"
	"github.com/vietddude/productinfo/internal/core/config"
	"github.com/vietddude/productinfo/internal/core/domain"
	"github.com/vietddude/productinfo/internal/infra/dataset"
	"github.com/vietddude/productinfo/internal/resilience"
	"github.com/vietddude/productinfo/internal/upstream/resilient"
	"github.com/vietddude/productinfo/internal/upstream/sim"
)

// App is the assembled aggregator service.
type App struct {
	cfg    *config.AppConfig
	server *api.Server
	closer func() error
	log    *slog.Logger
}

// New initializes all dependencies from configuration.
func New(cfg *config.AppConfig) (*App, error) {
	log := slog.Default()

	src, closer, err := newDatasetSource(cfg.Dataset)
	if err != nil {
		return nil, err
	}

	catalog := resilient.NewCatalog(
		sim.NewCatalog(src, simOptions(cfg.Upstreams.Catalog)),
		resilience.New(domain.ServiceCatalog, cfg.Resilience.Catalog),
	)
	pricing := resilient.NewPricing(
		sim.NewPricing(src, simOptions(cfg.Upstreams.Pricing)),
		resilience.New(domain.ServicePricing, cfg.Resilience.Pricing),
	)
	availability := resilient.NewAvailability(
		sim.NewAvailability(src, simOptions(cfg.Upstreams.Availability)),
		resilience.New(domain.ServiceAvailability, cfg.Resilience.Availability),
	)
	customer := resilient.NewCustomer(
		sim.NewCustomer(src, simOptions(cfg.Upstreams.Customer)),
		resilience.New(domain.ServiceCustomer, cfg.Resilience.Customer),
	)

	service := aggregate.New(catalog, pricing, availability, customer, log)

	return &App{
		cfg:    cfg,
		server: api.NewServer(service, cfg.Server.Port, log),
		closer: closer,
		log:    log,
	}, nil
}

// Start runs the HTTP server in the background.
func (a *App) Start(ctx context.Context) error {
	a.log.Info("Starting product info aggregator",
		"port", a.cfg.Server.Port,
		"dataset_backend", a.cfg.Dataset.Backend,
	)

	go func() {
		if err := a.server.Start(); err != nil && err != http.ErrServerClosed {
			a.log.Error("HTTP server failed", "error", err)
		}
	}()
	return nil
}

// Stop shuts the server down and releases dataset backends.
func (a *App) Stop(ctx context.Context) error {
	if err := a.server.Stop(ctx); err != nil {
		return fmt.Errorf("failed to stop HTTP server: %w", err)
	}
	if a.closer != nil {
		return a.closer()
	}
	return nil
}

// newDatasetSource builds the configured dataset backend. Postgres gets its
// schema migrated on startup.
func newDatasetSource(cfg config.DatasetConfig) (dataset.Source, func() error, error) {
	switch cfg.Backend {
	case config.BackendEmbedded, "":
		return dataset.NewEmbeddedSource(), nil, nil

	case config.BackendRedis:
		src, err := dataset.NewRedisSource(cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to init redis dataset source: %w", err)
		}
		return src, src.Close, nil

	case config.BackendPostgres:
		src, err := dataset.NewPostgresSource(context.Background(), cfg.Postgres)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to init postgres dataset source: %w", err)
		}
		if err := goose.SetDialect("postgres"); err != nil {
			_ = src.Close()
			return nil, nil, err
		}
		if err := goose.Up(src.DB(), "migrations"); err != nil {
			_ = src.Close()
			return nil, nil, fmt.Errorf("failed to migrate db: %w", err)
		}
		return src, src.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown dataset backend: %s", cfg.Backend)
	}
}

func simOptions(cfg config.SimConfig) sim.Options {
	return sim.Options{
		Latency:     cfg.Latency,
		Reliability: cfg.Reliability,
	}
}
