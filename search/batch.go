package search

import (
	"context"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/statespace/core"
)

// Query names a source and target person.
type Query struct {
	Source core.PersonID
	Target core.PersonID
}

// Result is the answer to one Query.
type Result struct {
	Query Query
	Path  core.Path
	Found bool
	Err   error
}

// ShortestPaths answers independent queries on a worker pool.
// Results are returned in query order. Per-query failures are reported in
// Result.Err; the returned error is only set if the pool cannot be created.
func (f *PathFinder) ShortestPaths(ctx context.Context, queries []Query) ([]Result, error) {
	pool, err := ants.NewPool(f.poolSize)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	var progress *ProgressTracker
	if f.progress != nil {
		progress = NewProgressTracker(f.progress, len(queries), f.progressInterval)
		progress.Start()
	}

	results := make([]Result, len(queries))
	var wg sync.WaitGroup
	for i, q := range queries {
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			path, found, err := f.ShortestPath(ctx, q.Source, q.Target)
			results[i] = Result{Query: q, Path: path, Found: found, Err: err}
			if progress != nil {
				progress.Done()
			}
		})
		if err != nil {
			wg.Done()
			f.logger.Warn("failed to submit path query", "source", q.Source, "target", q.Target, "err", err)
			results[i] = Result{Query: q, Err: err}
			if progress != nil {
				progress.Done()
			}
		}
	}
	wg.Wait()

	if progress != nil {
		progress.Finish()
		f.logger.Debug("batch answered", "queries", len(queries), "elapsed", progress.Elapsed())
	}

	return results, nil
}
