package domain

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"gooze.dev/pkg/mutaprompt/internal/adapter"
	m "gooze.dev/pkg/mutaprompt/internal/model"
)

// Aggregator runs the collector over a set of candidate files.
type Aggregator interface {
	// Aggregate returns the analyzed files and their mutants, both in the
	// order the candidates were given. Missing, unreadable and unparseable
	// files are dropped. The only error is ctx cancellation.
	Aggregate(ctx context.Context, paths []m.Path, threads int) ([]m.File, []m.Mutant, error)
}

type aggregator struct {
	adapter.SourceFSAdapter
	adapter.SyntaxTreeAdapter
	Mutagen
}

// NewAggregator creates a new Aggregator instance with the provided dependencies.
func NewAggregator(fsAdapter adapter.SourceFSAdapter, treeAdapter adapter.SyntaxTreeAdapter, mutagen Mutagen) Aggregator {
	return &aggregator{
		SourceFSAdapter:   fsAdapter,
		SyntaxTreeAdapter: treeAdapter,
		Mutagen:           mutagen,
	}
}

// fileResult is the outcome for one candidate; dropped candidates keep a
// nil origin.
type fileResult struct {
	origin  *m.File
	mutants []m.Mutant
}

func (a *aggregator) Aggregate(ctx context.Context, paths []m.Path, threads int) ([]m.File, []m.Mutant, error) {
	slog.Debug("Starting mutant aggregation", "paths", len(paths), "threads", threads)

	results := make([]fileResult, len(paths))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(normalizeThreads(threads))

	for i, path := range paths {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			results[i] = a.collectFile(groupCtx, path)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	files := make([]m.File, 0, len(paths))
	mutants := make([]m.Mutant, 0)

	for _, result := range results {
		if result.origin == nil {
			continue
		}

		files = append(files, *result.origin)
		mutants = append(mutants, result.mutants...)
	}

	slog.Info("Aggregated mutants", "candidates", len(paths), "files", len(files), "mutants", len(mutants))

	return files, mutants, nil
}

// collectFile reads, parses and collects one file. Every failure drops the
// file rather than failing the run.
func (a *aggregator) collectFile(ctx context.Context, path m.Path) fileResult {
	content, err := a.ReadFile(ctx, path)
	if err != nil {
		slog.Debug("Dropped unreadable source", "path", path, "error", err)
		return fileResult{}
	}

	tree, err := a.Parse(ctx, path, content)
	if err != nil {
		slog.Debug("Dropped unparseable source", "path", path, "error", err)
		return fileResult{}
	}

	mutants := a.GenerateMutants(tree)
	slog.Debug("Generated mutants for source", "path", path, "count", len(mutants))

	return fileResult{
		origin:  &m.File{Path: path, Hash: hashContent(content)},
		mutants: mutants,
	}
}

// normalizeThreads ensures at least one worker.
func normalizeThreads(threads int) int {
	if threads <= 0 {
		return 1
	}

	return threads
}

func hashContent(content []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(content))
}
