package amplify

import (
	"runtime"
	"sync"
)

// minParallelTraces is the trace count below which passes run sequentially
const minParallelTraces = 64

// forEachTraceChunk splits [0, n) into one contiguous chunk per worker and
// calls fn on each from its own goroutine. It blocks until every chunk is
// done. fn must only write to the traces of its chunk.
func forEachTraceChunk(n int, fn func(start, end int)) {
	workers := min(runtime.GOMAXPROCS(0), n)
	if n < minParallelTraces || workers < 2 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn(start, end)
		}()
	}
	wg.Wait()
}
