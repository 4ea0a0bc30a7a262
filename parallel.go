package lumen

import (
	"runtime"
	"sync"
)

// minRowsPerWorker keeps small images on the calling goroutine: a range is
// only split when it holds at least 2·minRowsPerWorker (32) rows, and it is
// split into at most count/minRowsPerWorker batches.
const minRowsPerWorker = 16

// parallelDo calls fn(i) for every i in [start, stop), splitting the range
// into contiguous batches across GOMAXPROCS goroutines. It returns once every
// call has finished, so work done after it sees all writes fn made.
func parallelDo(start, stop int, fn func(i int)) {
	count := stop - start
	if count <= 0 {
		return
	}

	procs := min(runtime.GOMAXPROCS(0), count/minRowsPerWorker)
	if procs <= 1 {
		for i := start; i < stop; i++ {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	batchSize := (count + procs - 1) / procs

	for p := 0; p < procs; p++ {
		from := start + p*batchSize
		to := min(from+batchSize, stop)
		if from >= to {
			continue
		}

		wg.Add(1)
		go func(from, to int) {
			defer wg.Done()
			for i := from; i < to; i++ {
				fn(i)
			}
		}(from, to)
	}
	wg.Wait()
}
