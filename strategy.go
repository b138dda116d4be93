package pixmat

import (
	"runtime"
	"sync"
)

// Strategy schedules work across the independent output rows of an
// operation. Implementations must call fn over disjoint [start, end) ranges
// that cover [0, rows) exactly once.
//
// Because every output pixel is computed in full by a single invocation of
// fn, any Strategy yields byte-identical results for the same input.
type Strategy interface {
	run(rows int, fn func(start, end int))
}

// Sequential processes all rows on the calling goroutine.
type Sequential struct{}

func (Sequential) run(rows int, fn func(start, end int)) {
	if rows <= 0 {
		return
	}
	fn(0, rows)
}

// WorkerPool fans rows out to Workers goroutines, each owning a contiguous
// chunk of the output. Workers <= 0 uses GOMAXPROCS.
type WorkerPool struct {
	Workers int
}

func (p WorkerPool) run(rows int, fn func(start, end int)) {
	if rows <= 0 {
		return
	}
	workers := p.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > rows {
		workers = rows
	}
	if workers <= 1 {
		fn(0, rows)
		return
	}
	step := (rows + workers - 1) / workers
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		start := i * step
		end := start + step
		if end > rows {
			end = rows
		}
		if start >= end {
			break
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// Options controls how an engine call executes.
type Options struct {
	// Strategy schedules output rows. Defaults to WorkerPool{}.
	Strategy Strategy
}

// WithStrategy returns an option selecting the execution strategy.
func WithStrategy(s Strategy) func(o *Options) {
	return func(o *Options) { o.Strategy = s }
}

func applyOptions(opts []func(o *Options)) Options {
	opt := Options{Strategy: WorkerPool{}}
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}
	return opt
}
