package convert

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/transmute-dev/transmute/logger"
)

// BatchResult aggregates the outcome of a multi-file conversion.
type BatchResult struct {
	// ID identifies the batch in logs.
	ID string
	// Results holds per-file outcomes, in input order.
	Results []Result
	// Failures maps source paths to their errors.
	Failures map[string]error
	// Duration is the wall-clock time for the whole batch.
	Duration time.Duration
}

// Converted returns the number of files that converted successfully.
func (b *BatchResult) Converted() int { return len(b.Results) - b.fallbacks() }

// Fallbacks returns the number of files kept verbatim.
func (b *BatchResult) Fallbacks() int { return b.fallbacks() }

func (b *BatchResult) fallbacks() int {
	n := 0
	for _, r := range b.Results {
		if r.Fallback {
			n++
		}
	}
	return n
}

// ConvertAll converts every path to the target language using a bounded
// worker pool. Individual failures do not abort the batch; they are
// collected in the result.
func (e *Engine) ConvertAll(ctx context.Context, paths []string, target string) *BatchResult {
	started := time.Now()
	batch := &BatchResult{
		ID:       uuid.NewString(),
		Failures: make(map[string]error),
	}

	workers := e.cfg.Translate.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	logger.Infow("starting batch conversion",
		logger.FieldBatchID, batch.ID,
		logger.FieldTarget, target,
		logger.FieldCount, len(paths))

	type outcome struct {
		idx int
		res Result
		err error
	}

	jobs := make(chan int)
	outcomes := make(chan outcome)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				res, err := e.ConvertFile(paths[idx], target)
				outcomes <- outcome{idx: idx, res: res, err: err}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for idx := range paths {
			select {
			case jobs <- idx:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	ordered := make([]*Result, len(paths))
	completed := 0
	for o := range outcomes {
		completed++
		if e.Progress != nil {
			e.Progress(completed, len(paths))
		}
		if o.err != nil {
			batch.Failures[paths[o.idx]] = o.err
			logger.Errorw("conversion failed",
				logger.FieldBatchID, batch.ID,
				logger.FieldFile, paths[o.idx],
				logger.FieldError, o.err)
			continue
		}
		res := o.res
		ordered[o.idx] = &res
	}
	for _, r := range ordered {
		if r != nil {
			batch.Results = append(batch.Results, *r)
		}
	}

	batch.Duration = time.Since(started)
	logger.Infow("batch conversion finished",
		logger.FieldBatchID, batch.ID,
		logger.FieldCount, len(batch.Results),
		logger.FieldDurationMS, batch.Duration.Milliseconds())
	return batch
}
