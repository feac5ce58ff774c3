package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "gooze.dev/pkg/mutaprompt/internal/model"
	"gooze.dev/pkg/mutaprompt/internal/report"
)

// SimpleUI implements UI using the cobra command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayReport writes content unchanged.
func (s *SimpleUI) DisplayReport(ctx context.Context, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := s.cmd.OutOrStdout().Write(content)

	return err
}

// DisplayList prints the per-file table.
func (s *SimpleUI) DisplayList(ctx context.Context, analysis m.Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderListTable(buildFileStats(analysis), len(analysis.Mutants), len(analysis.Groups)))

	return nil
}

// Browse prints the markdown report; there is nothing to navigate without
// a terminal.
func (s *SimpleUI) Browse(ctx context.Context, analysis m.Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return report.WriteMarkdown(s.cmd.OutOrStdout(), analysis, false)
}

type fileStat struct {
	path   m.Path
	byKind map[m.MutatorKind]int
	total  int
}

// buildFileStats counts mutants per analyzed file, keeping the analysis
// order. Files without mutants are listed with zero counts.
func buildFileStats(analysis m.Analysis) []fileStat {
	index := make(map[m.Path]int, len(analysis.Files))
	stats := make([]fileStat, 0, len(analysis.Files))

	for _, file := range analysis.Files {
		if _, ok := index[file.Path]; ok {
			continue
		}

		index[file.Path] = len(stats)
		stats = append(stats, fileStat{path: file.Path, byKind: map[m.MutatorKind]int{}})
	}

	for _, mutant := range analysis.Mutants {
		i, ok := index[mutant.FileName]
		if !ok {
			i = len(stats)
			index[mutant.FileName] = i
			stats = append(stats, fileStat{path: mutant.FileName, byKind: map[m.MutatorKind]int{}})
		}

		stats[i].byKind[mutant.Kind]++
		stats[i].total++
	}

	return stats
}

func renderListTable(stats []fileStat, totalMutants int, totalGroups int) string {
	var tableBuffer bytes.Buffer

	header := make([]string, 0, len(m.MutatorKinds)+2)
	header = append(header, "Path")

	alignment := []int{tablewriter.ALIGN_LEFT}

	for _, kind := range m.MutatorKinds {
		header = append(header, string(kind))
		alignment = append(alignment, tablewriter.ALIGN_CENTER)
	}

	header = append(header, "Mutants")
	alignment = append(alignment, tablewriter.ALIGN_CENTER)

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment(alignment)

	kindTotals := make(map[m.MutatorKind]int, len(m.MutatorKinds))

	for _, stat := range stats {
		row := []string{string(stat.path)}
		for _, kind := range m.MutatorKinds {
			row = append(row, strconv.Itoa(stat.byKind[kind]))
			kindTotals[kind] += stat.byKind[kind]
		}

		row = append(row, strconv.Itoa(stat.total))
		table.Append(row)
	}

	footer := []string{fmt.Sprintf("Total Files %d", len(stats))}
	for _, kind := range m.MutatorKinds {
		footer = append(footer, strconv.Itoa(kindTotals[kind]))
	}

	footer = append(footer, fmt.Sprintf("%d (%d groups)", totalMutants, totalGroups))
	table.SetFooter(footer)

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
