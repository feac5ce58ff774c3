package mutagens

import (
	"fmt"

	m "gooze.dev/pkg/mutaprompt/internal/model"
)

const (
	trueStr  = "true"
	falseStr = "false"
)

// GenerateBooleanMutations flips a true/false literal.
func GenerateBooleanMutations(node m.SyntaxNode, tree *m.SyntaxTree, mutationID *int) []m.Mutant {
	if node.Kind != m.NodeBooleanLiteral {
		return nil
	}

	original := tree.Text(node.Target)
	if !isBooleanLiteral(original) {
		return nil
	}

	mutated := flipBoolean(original)

	return []m.Mutant{newMutant(tree, mutantFields{
		kind:        m.BooleanLiteral,
		target:      node.Target,
		original:    original,
		replacement: mutated,
		description: fmt.Sprintf("Flipped boolean literal `%s` to `%s`", original, mutated),
		expression:  tree.NodeText(node),
		padding:     operatorContextLines,
	}, mutationID)}
}

// isBooleanLiteral checks if a string is a boolean literal.
func isBooleanLiteral(name string) bool {
	return name == trueStr || name == falseStr
}

// flipBoolean returns the opposite boolean literal.
func flipBoolean(original string) string {
	if original == trueStr {
		return falseStr
	}

	return trueStr
}
