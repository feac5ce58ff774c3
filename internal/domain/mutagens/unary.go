package mutagens

import (
	"fmt"

	m "gooze.dev/pkg/mutaprompt/internal/model"
)

// GenerateUnaryMutations emits mutants for a prefix unary expression. A
// catalog entry with an empty replacement deletes the operator and is
// reported as m.Removed.
func GenerateUnaryMutations(node m.SyntaxNode, tree *m.SyntaxTree, mutationID *int) []m.Mutant {
	if node.Kind != m.NodePrefixUnaryExpr {
		return nil
	}

	op := tree.Text(node.Target)

	replacements := UnaryReplacements(op)
	if len(replacements) == 0 {
		return nil
	}

	expression := tree.NodeText(node)
	mutants := make([]m.Mutant, 0, len(replacements))

	for _, replacement := range replacements {
		description := fmt.Sprintf("Replaced unary operator `%s` with `%s`", op, replacement)
		if replacement == "" {
			replacement = m.Removed
			description = fmt.Sprintf("Removed unary operator `%s`", op)
		}

		mutants = append(mutants, newMutant(tree, mutantFields{
			kind:        m.UnaryOperator,
			target:      node.Target,
			original:    op,
			replacement: replacement,
			description: description,
			expression:  expression,
			padding:     operatorContextLines,
		}, mutationID))
	}

	return mutants
}
