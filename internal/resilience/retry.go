package resilience

import (
	"math"
	"time"
)

// backoffDelay computes the exponential backoff delay before the next retry
// attempt, capped at MaxDelay.
func backoffDelay(attempt int, cfg Config) time.Duration {
	delay := float64(cfg.InitialDelay) * math.Pow(cfg.BackoffMultiple, float64(attempt))
	if delay > float64(cfg.MaxDelay) {
		delay = float64(cfg.MaxDelay)
	}
	return time.Duration(delay)
}
