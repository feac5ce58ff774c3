// Package model defines the data structures shared by the mutation engine,
// its adapters and the report renderers.
package model

// MutatorKind represents the category of a mutation.
type MutatorKind string

const (
	// BinaryOperator represents arithmetic, equality and logical operator swaps.
	BinaryOperator MutatorKind = "BinaryOperator"
	// BoundaryCondition represents relational operator swaps (>, <, >=, <=).
	BoundaryCondition MutatorKind = "BoundaryCondition"
	// UnaryOperator represents prefix unary operator removals and swaps.
	UnaryOperator MutatorKind = "UnaryOperator"
	// BooleanLiteral represents true <-> false flips.
	BooleanLiteral MutatorKind = "BooleanLiteral"
	// ConditionalRemoval represents forcing an if guard to a constant.
	ConditionalRemoval MutatorKind = "ConditionalRemoval"
)

// MutatorKinds lists every kind in production order.
var MutatorKinds = []MutatorKind{
	BinaryOperator,
	BoundaryCondition,
	UnaryOperator,
	BooleanLiteral,
	ConditionalRemoval,
}

// Removed is the replacement reported when a mutation deletes a token.
// It never collides with an operator or literal.
const Removed = "(removed)"

// Position is a 1-based line/column pair. Columns count runes.
type Position struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// Before reports whether p comes strictly before other.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}

	return p.Column < other.Column
}

// Location spans the mutated token or sub-expression. End points just past
// the last rune of the span.
type Location struct {
	Start Position `json:"start" yaml:"start"`
	End   Position `json:"end" yaml:"end"`
}

// SourceContext is a window of source lines surrounding a mutation.
type SourceContext struct {
	StartLine int    `json:"startLine" yaml:"startLine"`
	EndLine   int    `json:"endLine" yaml:"endLine"`
	Text      string `json:"text" yaml:"text"`
}

// Mutant is one candidate alteration at one source position. Mutants are
// values and are never modified after the collector produced them.
type Mutant struct {
	ID             string        `json:"id" yaml:"id"`
	FileName       Path          `json:"fileName" yaml:"fileName"`
	Kind           MutatorKind   `json:"mutatorKind" yaml:"mutatorKind"`
	Original       string        `json:"original" yaml:"original"`
	Replacement    string        `json:"replacement" yaml:"replacement"`
	Location       Location      `json:"location" yaml:"location"`
	Context        SourceContext `json:"context" yaml:"context"`
	Description    string        `json:"description" yaml:"description"`
	ExpressionText string        `json:"expressionText,omitempty" yaml:"expressionText,omitempty"`
}

// IsRemoval reports whether the mutant deletes its original token.
func (m Mutant) IsRemoval() bool {
	return m.Replacement == Removed
}
