package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig holds Redis connection configuration.
type RedisConfig struct {
	URL      string `yaml:"url"`
	Password string `yaml:"password"`
}

// RedisSource serves datasets stored as JSON strings under
// dataset:<kind>:<market> keys.
type RedisSource struct {
	rdb *redis.Client
}

// NewRedisSource connects to Redis and verifies the connection.
func NewRedisSource(cfg RedisConfig) (*RedisSource, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisSource{rdb: rdb}, nil
}

// Close closes the Redis connection.
func (s *RedisSource) Close() error {
	return s.rdb.Close()
}

func (s *RedisSource) Catalog(ctx context.Context, market string) (*CatalogDataset, error) {
	var ds CatalogDataset
	if err := s.read(ctx, KindCatalog, market, &ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (s *RedisSource) Pricing(ctx context.Context, market string) (*PricingDataset, error) {
	var ds PricingDataset
	if err := s.read(ctx, KindPricing, market, &ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (s *RedisSource) Availability(ctx context.Context, market string) (*AvailabilityDataset, error) {
	var ds AvailabilityDataset
	if err := s.read(ctx, KindAvailability, market, &ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (s *RedisSource) Customer(ctx context.Context, market string) (*CustomerDataset, error) {
	var ds CustomerDataset
	if err := s.read(ctx, KindCustomer, market, &ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (s *RedisSource) read(ctx context.Context, kind, market string, v any) error {
	raw, err := s.rdb.Get(ctx, datasetKey(kind, market)).Bytes()
	if errors.Is(err, redis.Nil) {
		return marketNotFound(market)
	}
	if err != nil {
		return fmt.Errorf("failed to read %s dataset for market %s: %w", kind, market, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to parse %s dataset for market %s: %w", kind, market, err)
	}
	return nil
}

// Seed writes all embedded dataset documents into Redis.
func (s *RedisSource) Seed(ctx context.Context) error {
	for _, kind := range []string{KindCatalog, KindPricing, KindAvailability, KindCustomer} {
		for _, market := range Markets {
			raw, err := rawEmbedded(kind, market)
			if err != nil {
				return fmt.Errorf("failed to load embedded %s dataset for %s: %w", kind, market, err)
			}
			if err := s.rdb.Set(ctx, datasetKey(kind, market), raw, 0).Err(); err != nil {
				return fmt.Errorf("failed to seed %s dataset for %s: %w", kind, market, err)
			}
		}
	}
	return nil
}

func datasetKey(kind, market string) string {
	return fmt.Sprintf("dataset:%s:%s", kind, market)
}
