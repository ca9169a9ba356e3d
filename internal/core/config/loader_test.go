package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_EnvSubstitution(t *testing.T) {
	// Setup env var
	os.Setenv("TEST_REDIS_URL", "redis://localhost:6380/1")
	defer os.Unsetenv("TEST_REDIS_URL")

	// Create temp config file
	configContent := `
dataset:
  backend: redis
  redis:
    url: ${TEST_REDIS_URL}
`
	tmpFile, err := os.CreateTemp("", "config_*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write([]byte(configContent)); err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	tmpFile.Close()

	// Load config
	cfg, err := Load(tmpFile.Name())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Dataset.Backend != BackendRedis {
		t.Errorf("Expected backend redis, got %s", cfg.Dataset.Backend)
	}
	if cfg.Dataset.Redis.URL != "redis://localhost:6380/1" {
		t.Errorf("Expected URL redis://localhost:6380/1, got %s", cfg.Dataset.Redis.URL)
	}
}

func TestLoad_Defaults(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "config_*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write([]byte("logging:\n  level: debug\n")); err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	tmpFile.Close()

	cfg, err := Load(tmpFile.Name())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Dataset.Backend != BackendEmbedded {
		t.Errorf("Expected default backend embedded, got %s", cfg.Dataset.Backend)
	}
	if cfg.Upstreams.Catalog.Latency != 50*time.Millisecond {
		t.Errorf("Expected default catalog latency 50ms, got %s", cfg.Upstreams.Catalog.Latency)
	}
	if cfg.Upstreams.Availability.Reliability != 0.98 {
		t.Errorf("Expected default availability reliability 0.98, got %f", cfg.Upstreams.Availability.Reliability)
	}
}

func TestLoad_ResilienceSettings(t *testing.T) {
	configContent := `
resilience:
  catalog:
    max_attempts: 5
    timeout: 500ms
    breaker:
      window_size: 4
      failure_ratio: 0.75
      cooldown: 2s
`
	tmpFile, err := os.CreateTemp("", "config_*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write([]byte(configContent)); err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	tmpFile.Close()

	cfg, err := Load(tmpFile.Name())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Resilience.Catalog.MaxAttempts != 5 {
		t.Errorf("Expected max_attempts 5, got %d", cfg.Resilience.Catalog.MaxAttempts)
	}
	if cfg.Resilience.Catalog.Timeout != 500*time.Millisecond {
		t.Errorf("Expected timeout 500ms, got %s", cfg.Resilience.Catalog.Timeout)
	}
	if cfg.Resilience.Catalog.Breaker.WindowSize != 4 {
		t.Errorf("Expected window_size 4, got %d", cfg.Resilience.Catalog.Breaker.WindowSize)
	}
	if cfg.Resilience.Catalog.Breaker.Cooldown != 2*time.Second {
		t.Errorf("Expected cooldown 2s, got %s", cfg.Resilience.Catalog.Breaker.Cooldown)
	}
}
