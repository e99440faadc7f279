package resilience

import "sync"

// SingleFlight collapses concurrent calls for the same key into one execution.
// The zero value is ready to use.
type SingleFlight struct {
	mu    sync.Mutex
	calls map[string]*flight
}

type flight struct {
	done chan struct{}
	val  any
	err  error
	dups int
}

// Do runs fn once per key among overlapping callers. shared reports whether
// the result was handed to more than one caller.
func (g *SingleFlight) Do(key string, fn func() (any, error)) (v any, err error, shared bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*flight)
	}
	if f, ok := g.calls[key]; ok {
		f.dups++
		g.mu.Unlock()
		<-f.done
		return f.val, f.err, true
	}

	f := &flight{done: make(chan struct{})}
	g.calls[key] = f
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		delete(g.calls, key)
		shared = f.dups > 0
		g.mu.Unlock()
		close(f.done)
	}()

	f.val, f.err = fn()
	return f.val, f.err, false
}
