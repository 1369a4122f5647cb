package reduce

import (
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"
)

// pool is the process-wide budget of extra goroutines reductions may fork.
type pool struct {
	sem  *semaphore.Weighted
	size int
}

// workers is sized on first use. The forking goroutine keeps working too,
// hence GOMAXPROCS-1.
var workers = sync.OnceValue(func() *pool {
	size := max(runtime.GOMAXPROCS(0)-1, 1)
	return &pool{sem: semaphore.NewWeighted(int64(size)), size: size}
})

// Workers returns the number of goroutines reductions fork at most, shared
// by all concurrent calls.
func Workers() int {
	return workers().size
}
