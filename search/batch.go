package search

import (
	"context"

	"github.com/sourcegraph/conc/pool"

	"github.com/postindex/belindex/addrmodel"
)

// BatchEntry pairs one source address with whatever the pipeline found
// for it. A failed or empty lookup leaves Results empty; the source
// address is always preserved so export rows line up with the input.
type BatchEntry struct {
	Source  string
	Results []addrmodel.Result
}

// Batch runs the pipeline over many addresses concurrently, preserving
// input order. Per-address failures are logged and degrade to an empty
// entry; the batch itself never fails unless the context is canceled.
func (s *Service) Batch(ctx context.Context, addresses []string, workers int, progress func()) ([]BatchEntry, error) {
	if workers <= 0 {
		workers = 1
	}

	entries := make([]BatchEntry, len(addresses))

	wp := pool.New().WithMaxGoroutines(workers).WithContext(ctx)
	for i, address := range addresses {
		wp.Go(func(ctx context.Context) error {
			results, err := s.FindByText(ctx, address)
			if err != nil {
				s.log.Warn("batch address failed", "address", address, "error", err)
			}
			entries[i] = BatchEntry{Source: address, Results: results}
			if progress != nil {
				progress()
			}
			return ctx.Err()
		})
	}
	if err := wp.Wait(); err != nil {
		return entries, err
	}
	return entries, nil
}
