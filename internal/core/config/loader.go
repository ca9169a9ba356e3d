package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/vietddude/productinfo/internal/upstream/sim"
)

// Load reads configuration from a YAML file.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the configuration used when no file is supplied.
func Default() *AppConfig {
	cfg := &AppConfig{}
	cfg.applyDefaults()
	return cfg
}

func (c *AppConfig) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Dataset.Backend == "" {
		c.Dataset.Backend = BackendEmbedded
	}

	applySimDefaults(&c.Upstreams.Catalog, sim.DefaultCatalogOptions)
	applySimDefaults(&c.Upstreams.Pricing, sim.DefaultPricingOptions)
	applySimDefaults(&c.Upstreams.Availability, sim.DefaultAvailabilityOptions)
	applySimDefaults(&c.Upstreams.Customer, sim.DefaultCustomerOptions)
}

func applySimDefaults(cfg *SimConfig, defaults sim.Options) {
	if cfg.Latency == 0 {
		cfg.Latency = defaults.Latency
	}
	if cfg.Reliability == 0 {
		cfg.Reliability = defaults.Reliability
	}
}
