package mutagens

import (
	"fmt"

	m "gooze.dev/pkg/mutaprompt/internal/model"
)

// GenerateBinaryMutations emits one mutant per catalog replacement of a
// binary expression's operator. The location covers the operator token only.
func GenerateBinaryMutations(node m.SyntaxNode, tree *m.SyntaxTree, mutationID *int) []m.Mutant {
	if node.Kind != m.NodeBinaryExpr {
		return nil
	}

	op := tree.Text(node.Target)

	replacements := BinaryReplacements(op)
	if len(replacements) == 0 {
		return nil
	}

	kind := m.BinaryOperator
	if IsBoundaryOperator(op) {
		kind = m.BoundaryCondition
	}

	expression := tree.NodeText(node)
	mutants := make([]m.Mutant, 0, len(replacements))

	for _, replacement := range replacements {
		mutants = append(mutants, newMutant(tree, mutantFields{
			kind:        kind,
			target:      node.Target,
			original:    op,
			replacement: replacement,
			description: describeBinary(kind, op, replacement),
			expression:  expression,
			padding:     operatorContextLines,
		}, mutationID))
	}

	return mutants
}

func describeBinary(kind m.MutatorKind, original, replacement string) string {
	if kind == m.BoundaryCondition {
		return fmt.Sprintf("Changed boundary condition `%s` to `%s`", original, replacement)
	}

	return fmt.Sprintf("Replaced operator `%s` with `%s`", original, replacement)
}
