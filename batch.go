package lumen

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// BatchItem is one file to filter in a batch.
type BatchItem struct {
	// Src is the input file path.
	Src string
	// Dst is the output path. Empty means DefaultOutputPath(Src).
	Dst string
}

// BatchResult holds the outcome for a single item.
type BatchResult struct {
	Item   BatchItem
	Result *Result // nil if Err is non-nil
	Err    error
	Index  int
}

// BatchOptions configures ApplyBatch.
type BatchOptions struct {
	// Filter is applied to every item.
	Filter Filter
	// Options are passed to ApplyFile for every item.
	Options Options
	// Workers is the number of concurrent workers. 0 = runtime.NumCPU().
	Workers int
	// OnItem is called after each item completes.
	OnItem func(completed, total int)
}

// ApplyBatch filters many files concurrently. Results come back in the same
// order as items. A failing item does not stop the others. Once ctx is
// cancelled, items that have not started are marked with ctx.Err().
func ApplyBatch(ctx context.Context, items []BatchItem, opts BatchOptions) []BatchResult {
	if len(items) == 0 {
		return nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, len(items))

	results := make([]BatchResult, len(items))
	var completed atomic.Int64

	g := new(errgroup.Group)
	g.SetLimit(workers)

	for i, item := range items {
		g.Go(func() error {
			results[i] = BatchResult{Item: item, Index: i}

			if err := ctx.Err(); err != nil {
				results[i].Err = err
				Logger().Warn("lumen: batch item skipped", "src", item.Src, "err", err)
				return nil
			}

			res, err := ApplyFile(ctx, item.Src, item.Dst, opts.Filter, opts.Options)
			results[i].Result = res
			results[i].Err = err
			if err != nil {
				Logger().Warn("lumen: batch item failed", "src", item.Src, "err", err)
			}

			if opts.OnItem != nil {
				opts.OnItem(int(completed.Add(1)), len(items))
			}
			return nil
		})
	}

	// Workers never return errors; failures live in results.
	_ = g.Wait()
	return results
}

// BatchSummary aggregates a batch run.
type BatchSummary struct {
	Total       int
	Succeeded   int
	Failed      int
	TotalOutput int64
	TotalFilter time.Duration
}

// Summarize computes aggregate statistics from batch results.
func Summarize(results []BatchResult) BatchSummary {
	s := BatchSummary{Total: len(results)}
	for _, r := range results {
		if r.Err != nil {
			s.Failed++
			continue
		}
		s.Succeeded++
		if r.Result != nil {
			s.TotalOutput += r.Result.OutputSize
			s.TotalFilter += r.Result.Elapsed
		}
	}
	return s
}

// String returns a human-readable batch summary.
func (s BatchSummary) String() string {
	return fmt.Sprintf(
		"Batch: %d/%d succeeded | %s written | %s filtering",
		s.Succeeded, s.Total, humanBytes(s.TotalOutput), s.TotalFilter.Round(time.Microsecond),
	)
}
