package scanner

import (
	"context"
	"log/slog"
	"sync"

	"dupescan/internal/logging"
)

type digestResult struct {
	path string
	sum  string
	err  error
}

// digestCandidates hashes every file belonging to an ambiguous name through a
// bounded worker pool. Each file is hashed exactly once; results are merged
// into a single map after the pool drains, so grouping stays order
// independent. Files whose digest fails are left out of the map entirely.
func (s *Scanner) digestCandidates(ctx context.Context, names map[string][]string, candidates []string, logger *slog.Logger) (map[string]string, error) {
	var paths []string
	for _, name := range candidates {
		paths = append(paths, names[name]...)
	}
	digests := make(map[string]string, len(paths))
	if len(paths) == 0 {
		return digests, nil
	}

	workers := s.workers
	if workers > len(paths) {
		workers = len(paths)
	}

	jobs := make(chan string)
	results := make(chan digestResult)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				sum, err := s.engine.Compute(path)
				select {
				case results <- digestResult{path: path, sum: sum, err: err}:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, path := range paths {
			select {
			case jobs <- path:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	done := 0
	for res := range results {
		done++
		if res.err != nil {
			logger.Warn("excluding unreadable file from duplicate check",
				logging.Args(
					logging.String(logging.FieldEventType, "digest_failed"),
					logging.String(logging.FieldPath, res.path),
					logging.Error(res.err),
				)...)
		} else {
			digests[res.path] = res.sum
		}
		if s.OnFile != nil {
			s.OnFile(res.path, done, len(paths))
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return digests, nil
}
