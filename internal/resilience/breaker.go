package resilience

import (
	"fmt"
	"sync"
	"time"

	"github.com/vietddude/productinfo/internal/core/domain"
	"github.com/vietddude/productinfo/internal/metrics"
)

// State represents the circuit breaker state.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Breaker is the process-wide circuit breaker for one upstream service. It is
// shared across all requests to that service; transitions and window updates
// happen under a single mutex so concurrent outcome reports cannot
// double-count or lose a transition.
type Breaker struct {
	service string
	cfg     BreakerConfig

	mu       sync.Mutex
	state    State
	window   []bool // ring of recent outcomes, true = failure
	next     int
	filled   bool
	openedAt time.Time
	trials   int // trial calls admitted while half-open

	now func() time.Time
}

// NewBreaker creates a breaker in the closed state.
func NewBreaker(service string, cfg BreakerConfig) *Breaker {
	b := &Breaker{
		service: service,
		cfg:     cfg,
		window:  make([]bool, cfg.WindowSize),
		now:     time.Now,
	}
	metrics.CircuitBreakerState.WithLabelValues(service).Set(float64(StateClosed))
	return b
}

// Allow decides whether an attempt may proceed. It returns a CIRCUIT_OPEN
// failure when the attempt is rejected; rejected attempts never touch the
// outcome window.
func (b *Breaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		return nil
	case StateOpen:
		if b.now().Sub(b.openedAt) >= b.cfg.Cooldown {
			b.transition(StateHalfOpen)
			b.trials = 1
			return nil
		}
		metrics.CircuitOpenRejections.WithLabelValues(b.service).Inc()
		return domain.NewUpstreamFailure(b.service, domain.ReasonCircuitOpen,
			fmt.Sprintf("circuit open since %s", b.openedAt.Format(time.RFC3339)))
	case StateHalfOpen:
		if b.trials < b.cfg.HalfOpenMaxCalls {
			b.trials++
			return nil
		}
		metrics.CircuitOpenRejections.WithLabelValues(b.service).Inc()
		return domain.NewUpstreamFailure(b.service, domain.ReasonCircuitOpen, "half-open trial budget exhausted")
	}
	return nil
}

// RecordSuccess reports a successful attempt outcome.
func (b *Breaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateHalfOpen {
		// A successful trial closes the circuit and resets the window.
		b.transition(StateClosed)
		b.reset()
		return
	}
	b.record(false)
	b.evaluate()
}

// RecordFailure reports a failed attempt outcome.
func (b *Breaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateHalfOpen {
		// A failed trial reopens the circuit and restarts the cooldown.
		b.transition(StateOpen)
		b.openedAt = b.now()
		return
	}

	b.record(true)
	b.evaluate()
}

// evaluate trips the breaker once the window is full and the failure ratio
// crosses the threshold. Callers hold the mutex.
func (b *Breaker) evaluate() {
	if b.state == StateClosed && b.filled && b.failureRatio() >= b.cfg.FailureRatio {
		b.transition(StateOpen)
		b.openedAt = b.now()
	}
}

// State returns the current state.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// ForceOpen trips the breaker as if the failure threshold had been crossed.
func (b *Breaker) ForceOpen() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.transition(StateOpen)
	b.openedAt = b.now()
}

func (b *Breaker) record(failure bool) {
	b.window[b.next] = failure
	b.next++
	if b.next == len(b.window) {
		b.next = 0
		b.filled = true
	}
}

func (b *Breaker) failureRatio() float64 {
	failures := 0
	for _, failed := range b.window {
		if failed {
			failures++
		}
	}
	return float64(failures) / float64(len(b.window))
}

func (b *Breaker) reset() {
	for i := range b.window {
		b.window[i] = false
	}
	b.next = 0
	b.filled = false
	b.trials = 0
}

func (b *Breaker) transition(to State) {
	b.state = to
	metrics.CircuitBreakerState.WithLabelValues(b.service).Set(float64(to))
}
