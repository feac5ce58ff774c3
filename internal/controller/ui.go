// Package controller provides output adapters for displaying mutation reports.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "gooze.dev/pkg/mutaprompt/internal/model"
)

// UI defines the interface for presenting an analysis.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayReport writes an already rendered report.
	DisplayReport(ctx context.Context, content []byte) error
	// DisplayList prints per-file mutant counts by kind.
	DisplayList(ctx context.Context, analysis m.Analysis) error
	// Browse lets the user walk through the mutant groups.
	Browse(ctx context.Context, analysis m.Analysis) error
}

// NewUI creates a UI based on whether TTY mode is enabled.
// When useTTY is true, it returns a TUI (Bubble Tea).
// When useTTY is false, it returns a SimpleUI (plain text).
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fd := file.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
