package mutagens

import (
	"fmt"
	"strings"

	m "gooze.dev/pkg/mutaprompt/internal/model"
)

const (
	// operatorContextLines pads operator and literal mutations.
	operatorContextLines = 2
	// conditionalContextLines pads conditional mutations.
	conditionalContextLines = 3
)

// Generator produces mutants for one node. mutationID is the per-file
// counter; generators advance it once per mutant they emit.
type Generator func(node m.SyntaxNode, tree *m.SyntaxTree, mutationID *int) []m.Mutant

// mutantFields carries the per-category fields of a mutant.
type mutantFields struct {
	kind        m.MutatorKind
	target      m.Span
	original    string
	replacement string
	description string
	expression  string
	padding     int
}

func newMutant(tree *m.SyntaxTree, fields mutantFields, mutationID *int) m.Mutant {
	*mutationID++
	location := tree.Location(fields.target)

	return m.Mutant{
		ID:             FormatID(*mutationID),
		FileName:       tree.Path,
		Kind:           fields.kind,
		Original:       fields.original,
		Replacement:    fields.replacement,
		Location:       location,
		Context:        contextFor(tree, location, fields.padding),
		Description:    fields.description,
		ExpressionText: fields.expression,
	}
}

// FormatID renders the n-th mutant identifier of a file.
func FormatID(n int) string {
	return fmt.Sprintf("M%d", n)
}

// contextFor returns the lines covered by location, padded on both sides and
// clamped to the file.
func contextFor(tree *m.SyntaxTree, location m.Location, padding int) m.SourceContext {
	start := max(location.Start.Line-padding, 1)
	end := min(location.End.Line+padding, tree.LineCount())
	lines := tree.Lines(start, end)

	return m.SourceContext{
		StartLine: start,
		EndLine:   start + len(lines) - 1,
		Text:      strings.Join(lines, "\n"),
	}
}
