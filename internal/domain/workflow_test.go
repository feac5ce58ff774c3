package domain_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/mutaprompt/internal/adapter"
	adaptermocks "gooze.dev/pkg/mutaprompt/internal/adapter/mocks"
	controllermocks "gooze.dev/pkg/mutaprompt/internal/controller/mocks"
	"gooze.dev/pkg/mutaprompt/internal/domain"
	domainmocks "gooze.dev/pkg/mutaprompt/internal/domain/mocks"
	m "gooze.dev/pkg/mutaprompt/internal/model"
	"gooze.dev/pkg/mutaprompt/internal/report"
)

type workflowDeps struct {
	changeSet *adaptermocks.MockChangeSetAdapter
	store     *adaptermocks.MockReportStore
	ui        *controllermocks.MockUI
}

func newTestWorkflow(t *testing.T) (domain.Workflow, workflowDeps) {
	t.Helper()

	deps := workflowDeps{
		changeSet: adaptermocks.NewMockChangeSetAdapter(t),
		store:     adaptermocks.NewMockReportStore(t),
		ui:        controllermocks.NewMockUI(t),
	}

	fs := adapter.NewLocalSourceFSAdapter()
	wf := domain.NewWorkflow(fs, deps.changeSet, deps.store, deps.ui, newFixtureAggregator())

	return wf, deps
}

func TestWorkflow_Analyze_Paths(t *testing.T) {
	wf, _ := newTestWorkflow(t)

	analysis, err := wf.Analyze(context.Background(), domain.AnalyzeArgs{
		Paths:   []m.Path{"../../examples/clamp", "../../examples/duplicate"},
		Threads: 2,
	})
	require.NoError(t, err)

	paths := make([]m.Path, 0, len(analysis.Files))
	for _, file := range analysis.Files {
		paths = append(paths, file.Path)
	}

	// clamp.test.ts is a test file and never analyzed.
	assert.Equal(t, []m.Path{
		"../../examples/clamp/clamp.ts",
		"../../examples/duplicate/a.ts",
		"../../examples/duplicate/b.ts",
	}, paths)
	assert.Len(t, analysis.Mutants, 12)
	assert.Len(t, analysis.Groups, 11)
}

func TestWorkflow_Analyze_RecursiveWithExclude(t *testing.T) {
	wf, _ := newTestWorkflow(t)

	analysis, err := wf.Analyze(context.Background(), domain.AnalyzeArgs{
		Paths:   []m.Path{"../../examples/mixed/..."},
		Exclude: []string{`\.tsx$`},
	})
	require.NoError(t, err)

	require.Len(t, analysis.Files, 1)
	assert.Equal(t, m.Path("../../examples/mixed/util.js"), analysis.Files[0].Path)
	require.Len(t, analysis.Mutants, 1)
	assert.Equal(t, "===", analysis.Mutants[0].Original)
	assert.Equal(t, "!==", analysis.Mutants[0].Replacement)
}

func TestWorkflow_Analyze_ChangeSet(t *testing.T) {
	wf, deps := newTestWorkflow(t)

	deps.changeSet.EXPECT().
		ChangedFiles(mock.Anything, "origin/main").
		Return([]m.Path{"../../examples/boolean/flags.ts", "../../examples/invalid/broken.ts"}, nil).
		Once()

	analysis, err := wf.Analyze(context.Background(), domain.AnalyzeArgs{
		Paths: []m.Path{"../../examples/clamp"},
		Base:  "origin/main",
	})
	require.NoError(t, err)

	require.Len(t, analysis.Files, 1)
	assert.Equal(t, m.Path("../../examples/boolean/flags.ts"), analysis.Files[0].Path)
	assert.Len(t, analysis.Mutants, 1)
}

func TestWorkflow_Analyze_EmptyChangeSet(t *testing.T) {
	wf, deps := newTestWorkflow(t)

	deps.changeSet.EXPECT().ChangedFiles(mock.Anything, "").Return([]m.Path{}, nil).Once()

	analysis, err := wf.Analyze(context.Background(), domain.AnalyzeArgs{Changed: true})
	require.NoError(t, err)
	assert.Empty(t, analysis.Files)
	assert.Empty(t, analysis.Mutants)
	assert.Empty(t, analysis.Groups)
}

func TestWorkflow_Analyze_ChangeSetError(t *testing.T) {
	wf, deps := newTestWorkflow(t)

	gitErr := errors.New("not a git repository")
	deps.changeSet.EXPECT().ChangedFiles(mock.Anything, "").Return(nil, gitErr).Once()

	_, err := wf.Analyze(context.Background(), domain.AnalyzeArgs{Changed: true})
	assert.ErrorIs(t, err, gitErr)
}

func TestWorkflow_Analyze_InvalidExclude(t *testing.T) {
	wf, _ := newTestWorkflow(t)

	_, err := wf.Analyze(context.Background(), domain.AnalyzeArgs{
		Paths:   []m.Path{"../../examples/clamp"},
		Exclude: []string{"("},
	})
	assert.ErrorContains(t, err, "invalid exclude pattern")
}

func TestWorkflow_Analyze_DefaultsToRecursiveCurrentDir(t *testing.T) {
	mockAggregator := domainmocks.NewMockAggregator(t)
	mockUI := controllermocks.NewMockUI(t)

	t.Chdir("../../examples/boolean")

	mockAggregator.EXPECT().
		Aggregate(mock.Anything, []m.Path{"flags.ts"}, 3).
		Return([]m.File{}, []m.Mutant{}, nil).
		Once()

	wf := domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), adaptermocks.NewMockChangeSetAdapter(t), adaptermocks.NewMockReportStore(t), mockUI, mockAggregator)

	_, err := wf.Analyze(context.Background(), domain.AnalyzeArgs{Threads: 3})
	require.NoError(t, err)
}

func TestWorkflow_Generate_ToUI(t *testing.T) {
	wf, deps := newTestWorkflow(t)

	var rendered []byte
	deps.ui.EXPECT().
		DisplayReport(mock.Anything, mock.Anything).
		Run(func(_ context.Context, content []byte) { rendered = content }).
		Return(nil).
		Once()

	err := wf.Generate(context.Background(), domain.GenerateArgs{
		AnalyzeArgs: domain.AnalyzeArgs{Paths: []m.Path{"../../examples/clamp/clamp.ts"}},
		Format:      report.FormatJSON,
	})
	require.NoError(t, err)

	var doc report.Document
	require.NoError(t, json.Unmarshal(rendered, &doc))
	assert.Equal(t, 10, doc.Summary.Mutants)
	assert.Len(t, doc.Groups, 10)
}

func TestWorkflow_Generate_ToFile(t *testing.T) {
	wf, deps := newTestWorkflow(t)

	deps.store.EXPECT().
		SaveReport(mock.Anything, m.Path("out/report.md"), mock.MatchedBy(func(content []byte) bool {
			return len(content) > 0
		})).
		Return(nil).
		Once()

	err := wf.Generate(context.Background(), domain.GenerateArgs{
		AnalyzeArgs: domain.AnalyzeArgs{Paths: []m.Path{"../../examples/clamp/clamp.ts"}},
		Format:      report.FormatMarkdown,
		Output:      "out/report.md",
	})
	require.NoError(t, err)
}

func TestWorkflow_Generate_SaveError(t *testing.T) {
	wf, deps := newTestWorkflow(t)

	saveErr := errors.New("disk full")
	deps.store.EXPECT().SaveReport(mock.Anything, mock.Anything, mock.Anything).Return(saveErr).Once()

	err := wf.Generate(context.Background(), domain.GenerateArgs{
		AnalyzeArgs: domain.AnalyzeArgs{Paths: []m.Path{"../../examples/boolean/flags.ts"}},
		Format:      report.FormatYAML,
		Output:      "report.yaml",
	})
	assert.ErrorIs(t, err, saveErr)
}

func TestWorkflow_Generate_UnknownFormat(t *testing.T) {
	wf, _ := newTestWorkflow(t)

	err := wf.Generate(context.Background(), domain.GenerateArgs{
		AnalyzeArgs: domain.AnalyzeArgs{Paths: []m.Path{"../../examples/boolean/flags.ts"}},
		Format:      report.Format("html"),
	})
	assert.ErrorContains(t, err, "unsupported format")
}

func TestWorkflow_List(t *testing.T) {
	wf, deps := newTestWorkflow(t)

	deps.ui.EXPECT().
		DisplayList(mock.Anything, mock.MatchedBy(func(analysis m.Analysis) bool {
			return len(analysis.Files) == 1 && len(analysis.Mutants) == 5
		})).
		Return(nil).
		Once()

	err := wf.List(context.Background(), domain.AnalyzeArgs{Paths: []m.Path{"../../examples/unary"}})
	require.NoError(t, err)
}

func TestWorkflow_List_DisplayError(t *testing.T) {
	wf, deps := newTestWorkflow(t)

	displayErr := errors.New("closed pipe")
	deps.ui.EXPECT().DisplayList(mock.Anything, mock.Anything).Return(displayErr).Once()

	err := wf.List(context.Background(), domain.AnalyzeArgs{Paths: []m.Path{"../../examples/unary"}})
	assert.ErrorIs(t, err, displayErr)
}

func TestWorkflow_Browse(t *testing.T) {
	wf, deps := newTestWorkflow(t)

	deps.ui.EXPECT().
		Browse(mock.Anything, mock.MatchedBy(func(analysis m.Analysis) bool {
			return len(analysis.Groups) == 1 && analysis.Groups[0].Count() == 2
		})).
		Return(nil).
		Once()

	err := wf.Browse(context.Background(), domain.AnalyzeArgs{Paths: []m.Path{"../../examples/duplicate"}})
	require.NoError(t, err)
}
