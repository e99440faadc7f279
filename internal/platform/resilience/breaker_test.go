package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errQuery = errors.New("query failed")

func failing(context.Context) error { return errQuery }

func succeeding(context.Context) error { return nil }

func TestBreaker_TripsAndRecovers(t *testing.T) {
	t.Parallel()

	b := NewBreaker(BreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: 5 * time.Second, HalfOpenProbes: 1})
	now := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	var transitions []BreakerState
	b.OnStateChange(func(_, to BreakerState) { transitions = append(transitions, to) })

	ctx := context.Background()
	require.ErrorIs(t, b.Execute(ctx, failing), errQuery)
	assert.Equal(t, BreakerClosed, b.State())

	require.ErrorIs(t, b.Execute(ctx, failing), errQuery)
	assert.Equal(t, BreakerOpen, b.State())

	called := false
	err := b.Execute(ctx, func(context.Context) error { called = true; return nil })
	require.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)

	now = now.Add(6 * time.Second)
	assert.Equal(t, BreakerHalfOpen, b.State())
	require.NoError(t, b.Execute(ctx, succeeding))
	assert.Equal(t, BreakerClosed, b.State())

	assert.Equal(t, []BreakerState{BreakerOpen, BreakerHalfOpen, BreakerClosed}, transitions)
}

func TestBreaker_FailedProbeReopens(t *testing.T) {
	t.Parallel()

	b := NewBreaker(BreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: time.Second})
	now := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	ctx := context.Background()
	_ = b.Execute(ctx, failing)
	now = now.Add(2 * time.Second)

	require.ErrorIs(t, b.Execute(ctx, failing), errQuery)
	assert.Equal(t, BreakerOpen, b.State())
}

func TestBreaker_CancellationIsNotAFailure(t *testing.T) {
	t.Parallel()

	b := NewBreaker(BreakerConfig{Enabled: true, FailureThreshold: 1})
	err := b.Execute(context.Background(), func(context.Context) error { return context.Canceled })

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, BreakerClosed, b.State())
}

func TestBreaker_DisabledAndNil(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	disabled := NewBreaker(BreakerConfig{FailureThreshold: 1})
	for i := 0; i < 5; i++ {
		_ = disabled.Execute(ctx, failing)
	}
	assert.NoError(t, disabled.Execute(ctx, succeeding))

	var nilBreaker *Breaker
	assert.NoError(t, nilBreaker.Execute(ctx, succeeding))
	assert.Equal(t, BreakerClosed, nilBreaker.State())
}
