package dataset

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx via database/sql
	"github.com/jmoiron/sqlx"
)

// PostgresConfig holds PostgreSQL connection configuration.
type PostgresConfig struct {
	URL      string `yaml:"url"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// PostgresSource serves datasets from the market_datasets table.
type PostgresSource struct {
	db *sqlx.DB
}

// NewPostgresSource opens the connection pool and verifies it.
func NewPostgresSource(ctx context.Context, cfg PostgresConfig) (*PostgresSource, error) {
	db, err := sqlx.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.MaxConns > 0 {
		db.SetMaxOpenConns(cfg.MaxConns)
	} else {
		db.SetMaxOpenConns(10)
	}
	if cfg.MinConns > 0 {
		db.SetMaxIdleConns(cfg.MinConns)
	} else {
		db.SetMaxIdleConns(2)
	}
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresSource{db: db}, nil
}

// DB exposes the underlying connection for migration bootstrap.
func (s *PostgresSource) DB() *sql.DB {
	return s.db.DB
}

// Close closes the connection pool.
func (s *PostgresSource) Close() error {
	return s.db.Close()
}

func (s *PostgresSource) Catalog(ctx context.Context, market string) (*CatalogDataset, error) {
	var ds CatalogDataset
	if err := s.read(ctx, KindCatalog, market, &ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (s *PostgresSource) Pricing(ctx context.Context, market string) (*PricingDataset, error) {
	var ds PricingDataset
	if err := s.read(ctx, KindPricing, market, &ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (s *PostgresSource) Availability(ctx context.Context, market string) (*AvailabilityDataset, error) {
	var ds AvailabilityDataset
	if err := s.read(ctx, KindAvailability, market, &ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (s *PostgresSource) Customer(ctx context.Context, market string) (*CustomerDataset, error) {
	var ds CustomerDataset
	if err := s.read(ctx, KindCustomer, market, &ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (s *PostgresSource) read(ctx context.Context, kind, market string, v any) error {
	var payload []byte
	err := s.db.GetContext(ctx, &payload,
		`SELECT payload FROM market_datasets WHERE kind = $1 AND market = $2`, kind, market)
	if errors.Is(err, sql.ErrNoRows) {
		return marketNotFound(market)
	}
	if err != nil {
		return fmt.Errorf("failed to read %s dataset for market %s: %w", kind, market, err)
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("failed to parse %s dataset for market %s: %w", kind, market, err)
	}
	return nil
}

// Seed upserts all embedded dataset documents into the market_datasets table.
func (s *PostgresSource) Seed(ctx context.Context) error {
	for _, kind := range []string{KindCatalog, KindPricing, KindAvailability, KindCustomer} {
		for _, market := range Markets {
			raw, err := rawEmbedded(kind, market)
			if err != nil {
				return fmt.Errorf("failed to load embedded %s dataset for %s: %w", kind, market, err)
			}
			_, err = s.db.ExecContext(ctx,
				`INSERT INTO market_datasets (kind, market, payload)
				 VALUES ($1, $2, $3)
				 ON CONFLICT (kind, market) DO UPDATE SET payload = EXCLUDED.payload`,
				kind, market, raw)
			if err != nil {
				return fmt.Errorf("failed to seed %s dataset for %s: %w", kind, market, err)
			}
		}
	}
	return nil
}
