package resilience

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type BreakerState string

const (
	BreakerClosed   BreakerState = "closed"
	BreakerOpen     BreakerState = "open"
	BreakerHalfOpen BreakerState = "half_open"
)

type BreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenProbes   int
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Enabled:          true,
		FailureThreshold: 5,
		OpenTimeout:      15 * time.Second,
		HalfOpenProbes:   2,
	}
}

func (c BreakerConfig) normalized() BreakerConfig {
	d := DefaultBreakerConfig()
	if c.FailureThreshold < 1 {
		c.FailureThreshold = d.FailureThreshold
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = d.OpenTimeout
	}
	if c.HalfOpenProbes < 1 {
		c.HalfOpenProbes = d.HalfOpenProbes
	}
	return c
}

// Breaker trips after consecutive failures and lets a bounded number of
// probes through once the open timeout passes. A nil or disabled Breaker
// admits every call.
type Breaker struct {
	mu  sync.Mutex
	cfg BreakerConfig
	now func() time.Time

	state     BreakerState
	failures  int
	openedAt  time.Time
	inFlight  int
	successes int

	onChange func(from, to BreakerState)
}

func NewBreaker(cfg BreakerConfig) *Breaker {
	return &Breaker{
		cfg:   cfg.normalized(),
		now:   time.Now,
		state: BreakerClosed,
	}
}

// OnStateChange registers fn to run, under the breaker lock, on every transition.
func (b *Breaker) OnStateChange(fn func(from, to BreakerState)) {
	b.mu.Lock()
	b.onChange = fn
	b.mu.Unlock()
}

// Execute runs fn if the breaker admits it and records the outcome. Context
// cancellation is not counted as a dependency failure.
func (b *Breaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if err := b.allow(); err != nil {
		return err
	}

	err := fn(ctx)
	switch {
	case err == nil:
		b.record(true)
	case errors.Is(err, context.Canceled):
		b.release()
	default:
		b.record(false)
	}
	return err
}

func (b *Breaker) State() BreakerState {
	if b == nil {
		return BreakerClosed
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == BreakerOpen && b.now().Sub(b.openedAt) >= b.cfg.OpenTimeout {
		return BreakerHalfOpen
	}
	return b.state
}

func (b *Breaker) allow() error {
	if b == nil || !b.cfg.Enabled {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == BreakerOpen {
		if b.now().Sub(b.openedAt) < b.cfg.OpenTimeout {
			return ErrCircuitOpen
		}
		b.transition(BreakerHalfOpen)
	}
	if b.state == BreakerHalfOpen {
		if b.inFlight >= b.cfg.HalfOpenProbes {
			return ErrCircuitOpen
		}
		b.inFlight++
	}
	return nil
}

func (b *Breaker) release() {
	if b == nil || !b.cfg.Enabled {
		return
	}
	b.mu.Lock()
	if b.state == BreakerHalfOpen && b.inFlight > 0 {
		b.inFlight--
	}
	b.mu.Unlock()
}

func (b *Breaker) record(ok bool) {
	if b == nil || !b.cfg.Enabled {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case BreakerClosed:
		if ok {
			b.failures = 0
			return
		}
		b.failures++
		if b.failures >= b.cfg.FailureThreshold {
			b.transition(BreakerOpen)
		}
	case BreakerHalfOpen:
		if b.inFlight > 0 {
			b.inFlight--
		}
		if !ok {
			b.transition(BreakerOpen)
			return
		}
		b.successes++
		if b.successes >= b.cfg.HalfOpenProbes && b.inFlight == 0 {
			b.transition(BreakerClosed)
		}
	case BreakerOpen:
		if !ok {
			b.openedAt = b.now()
		}
	}
}

func (b *Breaker) transition(to BreakerState) {
	from := b.state
	b.state = to
	b.inFlight = 0
	b.successes = 0
	switch to {
	case BreakerOpen:
		b.openedAt = b.now()
	case BreakerClosed:
		b.failures = 0
		b.openedAt = time.Time{}
	}
	if b.onChange != nil && from != to {
		b.onChange(from, to)
	}
}
