package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSingleFlight_Do(t *testing.T) {
	t.Parallel()

	var g SingleFlight
	var counter, sharedCount atomic.Int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err, shared := g.Do("stats:p1", func() (any, error) {
				counter.Add(1)
				time.Sleep(20 * time.Millisecond)
				return "ok", nil
			})
			if err != nil || v != "ok" {
				t.Errorf("singleflight call: v=%v err=%v", v, err)
			}
			if shared {
				sharedCount.Add(1)
			}
		}()
	}

	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), counter.Load())
	assert.Positive(t, sharedCount.Load())
}

func TestSingleFlight_SequentialCallsRunAgain(t *testing.T) {
	t.Parallel()

	var g SingleFlight
	calls := 0
	for i := 0; i < 3; i++ {
		_, _, shared := g.Do("k", func() (any, error) {
			calls++
			return nil, nil
		})
		assert.False(t, shared)
	}
	assert.Equal(t, 3, calls)
}
