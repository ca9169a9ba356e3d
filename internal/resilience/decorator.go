// Package resilience wraps upstream calls with retry, circuit breaking and
// per-attempt timeouts, composed in a fixed nesting order:
//
//	Retry -> CircuitBreaker -> Timeout -> actual call
//
// The breaker gate is checked, and the timeout applied, on every retry
// attempt. An attempt rejected by an open circuit still consumes retry
// budget. Failures surface as classified *domain.UpstreamFailure values.
package resilience

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vietddude/productinfo/internal/core/domain"
	"github.com/vietddude/productinfo/internal/metrics"
)

// Call is a single upstream invocation bounded by its context.
type Call func(ctx context.Context) (any, error)

// Decorator executes calls to one upstream service with the composed
// resilience behaviors. One decorator (and one breaker) exists per service,
// shared by all requests.
type Decorator struct {
	service string
	cfg     Config
	breaker *Breaker

	sleep func(ctx context.Context, d time.Duration) error
}

// New creates a decorator for a service, filling unset config fields with
// defaults.
func New(service string, cfg Config) *Decorator {
	cfg = cfg.withDefaults()
	return &Decorator{
		service: service,
		cfg:     cfg,
		breaker: NewBreaker(service, cfg.Breaker),
		sleep:   sleepCtx,
	}
}

// Breaker exposes the shared breaker so callers can inspect or force its
// state.
func (d *Decorator) Breaker() *Breaker {
	return d.breaker
}

// Execute runs call with retry, circuit breaking and timeout. On exhaustion
// it returns the last observed classified failure.
func (d *Decorator) Execute(ctx context.Context, call Call) (any, error) {
	var lastErr *domain.UpstreamFailure

	for attempt := 0; attempt < d.cfg.MaxAttempts; attempt++ {
		result, err := d.attempt(ctx, call)
		if err == nil {
			metrics.UpstreamCallsTotal.WithLabelValues(d.service, "success").Inc()
			return result, nil
		}

		lastErr = domain.Classify(d.service, err)
		metrics.UpstreamCallsTotal.WithLabelValues(d.service, lastErr.Reason).Inc()

		if attempt == d.cfg.MaxAttempts-1 {
			break
		}
		if err := d.sleep(ctx, backoffDelay(attempt, d.cfg)); err != nil {
			return nil, domain.Classify(d.service, err)
		}
	}

	return nil, lastErr
}

// attempt runs one gated, timeout-bounded invocation and reports its outcome
// to the breaker. Circuit-open rejections bypass the call and do not touch
// the outcome window.
func (d *Decorator) attempt(ctx context.Context, call Call) (any, error) {
	if err := d.breaker.Allow(); err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := d.invokeWithTimeout(ctx, call)
	metrics.UpstreamLatency.WithLabelValues(d.service).Observe(time.Since(start).Seconds())

	if err != nil {
		// A canceled caller is not an upstream outcome; it must never
		// count toward the shared breaker window.
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		d.breaker.RecordFailure()
		return nil, err
	}
	d.breaker.RecordSuccess()
	return result, nil
}

func (d *Decorator) invokeWithTimeout(ctx context.Context, call Call) (any, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, d.cfg.Timeout)
	defer cancel()

	type outcome struct {
		result any
		err    error
	}
	done := make(chan outcome, 1)

	go func() {
		result, err := call(attemptCtx)
		done <- outcome{result, err}
	}()

	select {
	case out := <-done:
		if out.err != nil && errors.Is(out.err, context.DeadlineExceeded) {
			return nil, d.timeoutFailure(out.err)
		}
		return out.result, out.err
	case <-attemptCtx.Done():
		// The in-flight call keeps running but its result is discarded.
		if errors.Is(attemptCtx.Err(), context.DeadlineExceeded) {
			return nil, d.timeoutFailure(attemptCtx.Err())
		}
		return nil, attemptCtx.Err()
	}
}

func (d *Decorator) timeoutFailure(cause error) *domain.UpstreamFailure {
	return &domain.UpstreamFailure{
		Service: d.service,
		Reason:  domain.ReasonTimeout,
		Details: fmt.Sprintf("attempt exceeded %s", d.cfg.Timeout),
		Err:     cause,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
