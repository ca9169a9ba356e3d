// Package sim implements the four upstream ports against per-market
// datasets, with configurable simulated latency and random failure
// injection. Set latency to zero and reliability to 1 for deterministic
// behavior.
package sim

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/vietddude/productinfo/internal/core/domain"
)

// Options controls the simulated behavior of one upstream client.
type Options struct {
	// Latency is added to every call before the dataset lookup.
	Latency time.Duration
	// Reliability is the success probability per call, in (0, 1].
	Reliability float64
	// Rand overrides the randomness source for failure injection.
	Rand func() float64
}

func (o Options) withDefaults() Options {
	if o.Reliability <= 0 || o.Reliability > 1 {
		o.Reliability = 1
	}
	if o.Rand == nil {
		o.Rand = rand.Float64
	}
	return o
}

// simulate applies latency and the reliability roll for one call.
func simulate(ctx context.Context, service string, opts Options) error {
	if opts.Latency > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(opts.Latency):
		}
	}
	if opts.Rand() > opts.Reliability {
		return domain.NewUpstreamFailure(service, domain.ReasonSimulatedFailure,
			"random failure based on reliability")
	}
	return nil
}
