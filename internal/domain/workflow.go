package domain

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"gooze.dev/pkg/mutaprompt/internal/adapter"
	"gooze.dev/pkg/mutaprompt/internal/controller"
	m "gooze.dev/pkg/mutaprompt/internal/model"
	"gooze.dev/pkg/mutaprompt/internal/report"
)

// DefaultPath is analyzed when no path and no change-set is requested.
const DefaultPath m.Path = "./..."

// AnalyzeArgs selects the files to analyze.
type AnalyzeArgs struct {
	Paths   []m.Path
	Exclude []string
	// Changed analyzes the git change-set instead of Paths.
	Changed bool
	// Base is the revision the change-set is computed against. A non-empty
	// Base implies Changed.
	Base    string
	Threads int
}

// GenerateArgs contains the arguments for rendering a report.
type GenerateArgs struct {
	AnalyzeArgs
	Format report.Format
	Flat   bool
	// Output is the report file; empty means the UI.
	Output m.Path
}

// Workflow drives an analysis from path arguments to presented results.
type Workflow interface {
	Analyze(ctx context.Context, args AnalyzeArgs) (m.Analysis, error)
	Generate(ctx context.Context, args GenerateArgs) error
	List(ctx context.Context, args AnalyzeArgs) error
	Browse(ctx context.Context, args AnalyzeArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ChangeSetAdapter
	adapter.ReportStore
	controller.UI
	Aggregator
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	changeSet adapter.ChangeSetAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	aggregator Aggregator,
) Workflow {
	return &workflow{
		SourceFSAdapter:  fsAdapter,
		ChangeSetAdapter: changeSet,
		ReportStore:      reportStore,
		UI:               ui,
		Aggregator:       aggregator,
	}
}

// Analyze resolves the candidates, collects their mutants and groups them.
func (w *workflow) Analyze(ctx context.Context, args AnalyzeArgs) (m.Analysis, error) {
	candidates, err := w.candidates(ctx, args)
	if err != nil {
		return m.Analysis{}, err
	}

	files, mutants, err := w.Aggregate(ctx, candidates, args.Threads)
	if err != nil {
		return m.Analysis{}, fmt.Errorf("aggregate mutants: %w", err)
	}

	return m.Analysis{
		Files:   files,
		Mutants: mutants,
		Groups:  GroupMutants(mutants),
	}, nil
}

func (w *workflow) candidates(ctx context.Context, args AnalyzeArgs) ([]m.Path, error) {
	paths := args.Paths

	if args.Changed || args.Base != "" {
		changed, err := w.ChangedFiles(ctx, args.Base)
		if err != nil {
			return nil, fmt.Errorf("resolve change-set: %w", err)
		}

		slog.Debug("Resolved change-set", "base", args.Base, "files", len(changed))

		if len(changed) == 0 {
			return nil, nil
		}

		paths = changed
	} else if len(paths) == 0 {
		paths = []m.Path{DefaultPath}
	}

	candidates, err := w.Get(ctx, paths, args.Exclude...)
	if err != nil {
		return nil, fmt.Errorf("get sources: %w", err)
	}

	return candidates, nil
}

// Generate renders the analysis and writes it to Output or the UI.
func (w *workflow) Generate(ctx context.Context, args GenerateArgs) error {
	analysis, err := w.Analyze(ctx, args.AnalyzeArgs)
	if err != nil {
		slog.Error("Failed to analyze sources", "error", err)
		return err
	}

	var buf bytes.Buffer
	if err := report.Render(&buf, analysis, report.Options{Format: args.Format, Flat: args.Flat}); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	if args.Output == "" {
		return w.DisplayReport(ctx, buf.Bytes())
	}

	if err := w.SaveReport(ctx, args.Output, buf.Bytes()); err != nil {
		slog.Error("Failed to save report", "path", args.Output, "error", err)
		return fmt.Errorf("save report: %w", err)
	}

	slog.Info("Report saved", "path", args.Output, "format", args.Format, "mutants", len(analysis.Mutants))

	return nil
}

// List shows per-file mutant counts.
func (w *workflow) List(ctx context.Context, args AnalyzeArgs) error {
	analysis, err := w.Analyze(ctx, args)
	if err != nil {
		slog.Error("Failed to analyze sources", "error", err)
		return err
	}

	if err := w.DisplayList(ctx, analysis); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// Browse opens the interactive group browser.
func (w *workflow) Browse(ctx context.Context, args AnalyzeArgs) error {
	analysis, err := w.Analyze(ctx, args)
	if err != nil {
		slog.Error("Failed to analyze sources", "error", err)
		return err
	}

	return w.UI.Browse(ctx, analysis)
}
