package scanner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"dupescan/internal/config"
	"dupescan/internal/digest"
	"dupescan/internal/logging"
)

// Scanner walks a directory tree and groups regular files first by base name,
// then by content digest. Symlinks are never followed, so symlink cycles
// cannot trap the walk.
type Scanner struct {
	logger  *slog.Logger
	engine  digest.Engine
	workers int

	// OnFile, when set, is invoked after each candidate file is digested with
	// the number of files processed so far and the total candidate count.
	OnFile func(path string, done, total int)
}

// New builds a Scanner from configuration. A nil config uses defaults; a nil
// logger discards log output.
func New(cfg *config.Config, logger *slog.Logger) *Scanner {
	chunkSize := 0
	workers := 1
	if cfg != nil {
		chunkSize = cfg.Scan.ChunkSize
		workers = cfg.Scan.Workers
	}
	if workers < 1 {
		workers = 1
	}
	return &Scanner{
		logger:  logging.NewComponentLogger(logger, "scanner"),
		engine:  digest.Engine{ChunkSize: chunkSize},
		workers: workers,
	}
}

// Scan runs the full pipeline against root: traverse, group by name, digest
// ambiguous names, group by digest, aggregate sizes. Only a missing root (or
// cancellation) fails the run; everything else degrades to warnings.
func (s *Scanner) Scan(ctx context.Context, root string) (*Report, error) {
	started := time.Now()

	report := &Report{
		RunID: uuid.NewString(),
		Root:  root,
	}

	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return nil, fmt.Errorf("inspect root %s: %w", root, err)
	}

	logger := s.logger.With(
		logging.String(logging.FieldRunID, report.RunID),
		logging.String(logging.FieldRoot, root),
	)

	if !info.IsDir() {
		// A file root contains zero files; report no duplicates.
		logger.Warn("root is not a directory, nothing to scan",
			logging.Args(logging.String(logging.FieldEventType, "root_not_directory"))...)
		report.Elapsed = time.Since(started)
		return report, nil
	}

	names, seen, err := s.collectByName(ctx, root, logger)
	if err != nil {
		return nil, err
	}
	report.FilesSeen = seen

	candidates := ambiguousNames(names)
	report.NamesWithConflicts = len(candidates)

	logger.Info("traversal complete",
		logging.Args(
			logging.String(logging.FieldEventType, "traversal_complete"),
			logging.Int("files_seen", seen),
			logging.Int("distinct_names", len(names)),
			logging.Int("names_with_conflicts", len(candidates)),
		)...)

	digests, err := s.digestCandidates(ctx, names, candidates, logger)
	if err != nil {
		return nil, err
	}

	s.buildGroups(report, names, candidates, digests, logger)

	report.Elapsed = time.Since(started)
	logger.Info("scan complete",
		logging.Args(
			logging.String(logging.FieldEventType, "scan_complete"),
			logging.Int("duplicate_groups", len(report.Groups)),
			logging.Int64("duplicate_files", report.TotalCount),
			logging.Int64("duplicate_bytes", report.TotalBytes),
			logging.Duration("elapsed", report.Elapsed),
		)...)

	return report, nil
}

// collectByName walks the tree once and indexes every regular file by its base
// name. Unreadable entries and directories are skipped with a warning.
func (s *Scanner) collectByName(ctx context.Context, root string, logger *slog.Logger) (map[string][]string, int, error) {
	names := make(map[string][]string)
	seen := 0

	walkErr := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			logger.Warn("skipping unreadable entry",
				logging.Args(
					logging.String(logging.FieldEventType, "entry_skipped"),
					logging.String(logging.FieldPath, path),
					logging.Error(err),
				)...)
			return nil
		}
		if !entry.Type().IsRegular() {
			return nil
		}
		seen++
		name := entry.Name()
		names[name] = append(names[name], path)
		return nil
	})
	if walkErr != nil {
		return nil, 0, walkErr
	}
	return names, seen, nil
}

// ambiguousNames returns the sorted base names that map to two or more paths.
// Uniquely-named files can have no duplicate under the name-first policy and
// are never digested.
func ambiguousNames(names map[string][]string) []string {
	candidates := make([]string, 0)
	for name, paths := range names {
		if len(paths) > 1 {
			candidates = append(candidates, name)
		}
	}
	sort.Strings(candidates)
	return candidates
}

// buildGroups assembles the duplicate groups for every ambiguous name and
// accumulates the size/count aggregates. Sizes are queried at report time; a
// file that vanished since traversal contributes nothing.
func (s *Scanner) buildGroups(report *Report, names map[string][]string, candidates []string, digests map[string]string, logger *slog.Logger) {
	for _, name := range candidates {
		byDigest := make(map[string][]string)
		for _, path := range names[name] {
			sum, ok := digests[path]
			if !ok {
				continue
			}
			byDigest[sum] = append(byDigest[sum], path)
		}

		sums := make([]string, 0, len(byDigest))
		for sum, paths := range byDigest {
			if len(paths) > 1 {
				sums = append(sums, sum)
			}
		}
		sort.Strings(sums)

		for _, sum := range sums {
			paths := byDigest[sum]
			sort.Strings(paths)
			report.Groups = append(report.Groups, Group{Name: name, Digest: sum, Paths: paths})

			for _, path := range paths {
				info, err := os.Stat(path)
				if err != nil {
					logger.Warn("duplicate file vanished before sizing",
						logging.Args(
							logging.String(logging.FieldEventType, "size_query_failed"),
							logging.String(logging.FieldPath, path),
							logging.Error(err),
						)...)
					continue
				}
				report.TotalBytes += info.Size()
				report.TotalCount++
			}
		}
	}
}
