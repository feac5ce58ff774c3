// Package report renders an analysis as a markdown prompt, JSON or YAML.
package report

import (
	"fmt"
	"io"
	"strings"

	m "gooze.dev/pkg/mutaprompt/internal/model"
)

// Format selects the report encoding.
type Format string

// Supported formats.
const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatMarkdown, FormatJSON, FormatYAML}

// ParseFormat validates a user-supplied format name. "md" and "yml" are
// accepted as aliases.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("invalid format %q: must be one of markdown, json, yaml", value)
}

// Options controls rendering.
type Options struct {
	Format Format
	// Flat lists every mutant instead of grouping identical patterns.
	Flat bool
}

// Render writes analysis to w in the requested format.
func Render(w io.Writer, analysis m.Analysis, opts Options) error {
	switch opts.Format {
	case FormatMarkdown, "":
		return WriteMarkdown(w, analysis, opts.Flat)
	case FormatJSON:
		return WriteJSON(w, analysis, opts.Flat)
	case FormatYAML:
		return WriteYAML(w, analysis, opts.Flat)
	}

	return fmt.Errorf("unsupported format %q", opts.Format)
}
