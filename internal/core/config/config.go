package config

import (
	"time"

	"github.com/vietddude/productinfo/internal/infra/dataset"
	"github.com/vietddude/productinfo/internal/resilience"
)

// AppConfig represents the top-level configuration.
type AppConfig struct {
	Server     ServerConfig     `yaml:"server"`
	Logging    LoggingConfig    `yaml:"logging"`
	Dataset    DatasetConfig    `yaml:"dataset"`
	Upstreams  UpstreamsConfig  `yaml:"upstreams"`
	Resilience ResilienceConfig `yaml:"resilience"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// Dataset backends.
const (
	BackendEmbedded = "embedded"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// DatasetConfig selects and configures the dataset backend serving the
// simulated upstreams.
type DatasetConfig struct {
	Backend  string                 `yaml:"backend"` // embedded, redis, postgres
	Redis    dataset.RedisConfig    `yaml:"redis"`
	Postgres dataset.PostgresConfig `yaml:"postgres"`
}

// SimConfig holds the simulated behavior of one upstream service.
type SimConfig struct {
	Latency     time.Duration `yaml:"latency"`
	Reliability float64       `yaml:"reliability"`
}

// UpstreamsConfig holds per-service simulator settings.
type UpstreamsConfig struct {
	Catalog      SimConfig `yaml:"catalog"`
	Pricing      SimConfig `yaml:"pricing"`
	Availability SimConfig `yaml:"availability"`
	Customer     SimConfig `yaml:"customer"`
}

// ResilienceConfig holds per-service resilience settings.
type ResilienceConfig struct {
	Catalog      resilience.Config `yaml:"catalog"`
	Pricing      resilience.Config `yaml:"pricing"`
	Availability resilience.Config `yaml:"availability"`
	Customer     resilience.Config `yaml:"customer"`
}
