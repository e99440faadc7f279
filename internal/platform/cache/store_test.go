package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_ExpiresAfterTTL(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	store := NewStore(time.Minute)
	store.now = func() time.Time { return now }

	ctx := context.Background()
	store.Set(ctx, "players:list", []string{"p1"})

	_, ok := store.Get(ctx, "players:list")
	require.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok = store.Get(ctx, "players:list")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestStore_Sweep(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	store := NewStore(time.Minute)
	store.now = func() time.Time { return now }

	ctx := context.Background()
	store.Set(ctx, "a", 1)
	store.Set(ctx, "b", 2)
	now = now.Add(time.Hour)
	store.Set(ctx, "c", 3)

	assert.Equal(t, 2, store.Sweep())
	assert.Equal(t, 1, store.Len())
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(0)
	store.Set(ctx, Key("outings", "player", "p1"), 1)
	store.Set(ctx, Key("outings", "player", "p2"), 2)
	store.Set(ctx, Key("players", "p1"), 3)

	store.DeletePrefix(ctx, Key("outings", "player"))

	_, ok := store.Get(ctx, "players:p1")
	assert.True(t, ok)
	assert.Equal(t, 1, store.Len())
}

func TestLoad_Typed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)
	var calls int

	loader := func(context.Context) ([]int, error) {
		calls++
		return []int{1, 2, 3}, nil
	}

	first, err := Load(ctx, store, "k", loader)
	require.NoError(t, err)
	second, err := Load(ctx, store, "k", loader)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestLoad_ErrorIsNotCached(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)
	boom := errors.New("boom")

	_, err := Load(ctx, store, "k", func(context.Context) (string, error) { return "", boom })
	require.ErrorIs(t, err, boom)

	got, err := Load(ctx, store, "k", func(context.Context) (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
}

func TestKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "outings:o1", Key("outings", "", "o1"))
	assert.Equal(t, "", Key())
}

var errUnexpectedValue = errors.New("unexpected loaded value")
