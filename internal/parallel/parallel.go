// Package parallel runs independent per-index work across a bounded set
// of goroutines. Tape batches are the main user: every tape simulation
// owns its own statevector, so the only shared state is the result
// slice, written at distinct indices.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how For splits work across goroutines.
type Config struct {
	Workers  int // Goroutines to spawn.
	MinItems int // Below this count, run sequentially.
}

// DefaultConfig sizes the pool from the CPU count. MinItems is small
// because a single tape simulation dwarfs goroutine overhead.
func DefaultConfig() Config {
	return Config{Workers: runtime.NumCPU(), MinItems: 2}
}

// For executes f(i) for i in [0, n). Work is fed to workers one index at
// a time rather than in chunks: shifted tapes in a gradient batch can
// differ in cost, and chunking would serialize behind the slowest chunk.
// f must be safe to call concurrently for distinct indices.
func For(n int, f func(i int), cfg Config) {
	if cfg.Workers <= 1 || n < cfg.MinItems {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	next := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < min(cfg.Workers, n); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				f(i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		next <- i
	}
	close(next)
	wg.Wait()
}
