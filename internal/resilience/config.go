package resilience

import (
	"time"
)

// BreakerConfig defines circuit breaker behavior for one service.
type BreakerConfig struct {
	WindowSize       int           `yaml:"window_size"`
	FailureRatio     float64       `yaml:"failure_ratio"`
	Cooldown         time.Duration `yaml:"cooldown"`
	HalfOpenMaxCalls int           `yaml:"half_open_max_calls"`
}

// Config defines the full resilience behavior for one service:
// retry budget, backoff, per-attempt timeout and circuit breaker.
type Config struct {
	MaxAttempts     int           `yaml:"max_attempts"`
	InitialDelay    time.Duration `yaml:"initial_delay"`
	MaxDelay        time.Duration `yaml:"max_delay"`
	BackoffMultiple float64       `yaml:"backoff_multiple"`
	Timeout         time.Duration `yaml:"timeout"`
	Breaker         BreakerConfig `yaml:"breaker"`
}

// DefaultConfig provides sensible defaults.
var DefaultConfig = Config{
	MaxAttempts:     3,
	InitialDelay:    100 * time.Millisecond,
	MaxDelay:        1 * time.Second,
	BackoffMultiple: 2.0,
	Timeout:         2 * time.Second,
	Breaker: BreakerConfig{
		WindowSize:       10,
		FailureRatio:     0.5,
		Cooldown:         10 * time.Second,
		HalfOpenMaxCalls: 2,
	},
}

// withDefaults fills unset fields from DefaultConfig.
func (c Config) withDefaults() Config {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = DefaultConfig.MaxAttempts
	}
	if c.InitialDelay <= 0 {
		c.InitialDelay = DefaultConfig.InitialDelay
	}
	if c.MaxDelay <= 0 {
		c.MaxDelay = DefaultConfig.MaxDelay
	}
	if c.BackoffMultiple <= 0 {
		c.BackoffMultiple = DefaultConfig.BackoffMultiple
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultConfig.Timeout
	}
	if c.Breaker.WindowSize <= 0 {
		c.Breaker.WindowSize = DefaultConfig.Breaker.WindowSize
	}
	if c.Breaker.FailureRatio <= 0 {
		c.Breaker.FailureRatio = DefaultConfig.Breaker.FailureRatio
	}
	if c.Breaker.Cooldown <= 0 {
		c.Breaker.Cooldown = DefaultConfig.Breaker.Cooldown
	}
	if c.Breaker.HalfOpenMaxCalls <= 0 {
		c.Breaker.HalfOpenMaxCalls = DefaultConfig.Breaker.HalfOpenMaxCalls
	}
	return c
}
