package mutagens

import (
	"fmt"

	m "gooze.dev/pkg/mutaprompt/internal/model"
)

// forcedBranches pairs the constant a guard is forced to with the branch
// that then always runs.
var forcedBranches = []struct {
	value  string
	branch string
}{
	{trueStr, "if-branch"},
	{falseStr, "else-branch"},
}

// GenerateConditionalMutations emits two mutants for an if guard: one that
// forces the if-branch and one that forces the else-branch. Conditions nested
// inside the guard are left to their own nodes. A guard that already is the
// forced constant yields no mutant for that branch.
func GenerateConditionalMutations(node m.SyntaxNode, tree *m.SyntaxTree, mutationID *int) []m.Mutant {
	if node.Kind != m.NodeIfStatement {
		return nil
	}

	condition := tree.Text(node.Target)
	if condition == "" {
		return nil
	}

	shown := m.NormalizeWhitespace(condition)
	mutants := make([]m.Mutant, 0, len(forcedBranches))

	for _, forced := range forcedBranches {
		if shown == forced.value {
			continue
		}

		mutants = append(mutants, newMutant(tree, mutantFields{
			kind:        m.ConditionalRemoval,
			target:      node.Target,
			original:    condition,
			replacement: forced.value,
			description: fmt.Sprintf("Forced condition `%s` to %s so the %s always runs", shown, forced.value, forced.branch),
			expression:  condition,
			padding:     conditionalContextLines,
		}, mutationID))
	}

	return mutants
}
