package model

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// NodeKind classifies the syntax nodes the mutation engine cares about.
// Every node the provider emits carries exactly one of these kinds.
type NodeKind int

const (
	// NodeOther is any node with no mutation rule.
	NodeOther NodeKind = iota
	// NodeBinaryExpr is an infix expression such as a + b.
	NodeBinaryExpr
	// NodePrefixUnaryExpr is a prefix expression such as !a or ++i.
	NodePrefixUnaryExpr
	// NodeBooleanLiteral is a true or false literal.
	NodeBooleanLiteral
	// NodeIfStatement is an if statement.
	NodeIfStatement
)

func (k NodeKind) String() string {
	switch k {
	case NodeBinaryExpr:
		return "binary"
	case NodePrefixUnaryExpr:
		return "prefix-unary"
	case NodeBooleanLiteral:
		return "boolean-literal"
	case NodeIfStatement:
		return "if"
	case NodeOther:
		return "other"
	}

	return "unknown"
}

// Span is a half-open byte range [Start, End) into the file content.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes in the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// SyntaxNode is a classified node. Target is the part mutations apply to:
// the operator token, the literal, or the if guard without its parentheses.
type SyntaxNode struct {
	Kind   NodeKind
	Span   Span
	Target Span
}

// SyntaxTree is a parsed file flattened into its pre-order node sequence.
type SyntaxTree struct {
	Path       Path
	content    []byte
	nodes      []SyntaxNode
	lineStarts []int
}

// NewSyntaxTree builds a tree over content. Nodes must already be in
// pre-order.
func NewSyntaxTree(path Path, content []byte, nodes []SyntaxNode) *SyntaxTree {
	lineStarts := []int{0}

	for i, b := range content {
		if b == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}

	return &SyntaxTree{
		Path:       path,
		content:    content,
		nodes:      nodes,
		lineStarts: lineStarts,
	}
}

// Walk calls fn for every node in pre-order.
func (t *SyntaxTree) Walk(fn func(node SyntaxNode)) {
	for _, node := range t.nodes {
		fn(node)
	}
}

// Content returns the full file text.
func (t *SyntaxTree) Content() []byte {
	return t.content
}

// Text returns the source text covered by span.
func (t *SyntaxTree) Text(span Span) string {
	start := clamp(span.Start, 0, len(t.content))
	end := clamp(span.End, start, len(t.content))

	return string(t.content[start:end])
}

// NodeText returns the full source text of node.
func (t *SyntaxTree) NodeText(node SyntaxNode) string {
	return t.Text(node.Span)
}

// LineCount returns the number of lines in the file. A trailing newline
// does not start another line.
func (t *SyntaxTree) LineCount() int {
	n := len(t.lineStarts)
	if n > 1 && t.lineStarts[n-1] == len(t.content) {
		return n - 1
	}

	return n
}

// Position converts a byte offset into a 1-based line and rune column.
func (t *SyntaxTree) Position(offset int) Position {
	offset = clamp(offset, 0, len(t.content))
	line := sort.Search(len(t.lineStarts), func(i int) bool {
		return t.lineStarts[i] > offset
	})
	lineStart := t.lineStarts[line-1]

	return Position{
		Line:   line,
		Column: utf8.RuneCount(t.content[lineStart:offset]) + 1,
	}
}

// Location converts a span into a start/end position pair.
func (t *SyntaxTree) Location(span Span) Location {
	return Location{
		Start: t.Position(span.Start),
		End:   t.Position(span.End),
	}
}

// Lines returns the text of lines from..to inclusive, 1-based and clamped to
// the file.
func (t *SyntaxTree) Lines(from, to int) []string {
	from = clamp(from, 1, t.LineCount())
	to = clamp(to, from, t.LineCount())

	lines := make([]string, 0, to-from+1)
	for line := from; line <= to; line++ {
		start := t.lineStarts[line-1]

		end := len(t.content)
		if line < len(t.lineStarts) {
			end = t.lineStarts[line] - 1
		}

		lines = append(lines, strings.TrimSuffix(string(t.content[start:end]), "\r"))
	}

	return lines
}

func clamp(value, lower, upper int) int {
	if value < lower {
		return lower
	}

	if value > upper {
		return upper
	}

	return value
}
