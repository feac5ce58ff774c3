// Package domain contains the mutation engine: the collector that walks a
// syntax tree, the aggregator that runs it over a file set, the grouping of
// identical bug patterns and the workflows the CLI drives.
package domain

import (
	"gooze.dev/pkg/mutaprompt/internal/domain/mutagens"
	m "gooze.dev/pkg/mutaprompt/internal/model"
)

// Pass is one construct category handled by the collector.
type Pass string

// Collector passes in production order.
const (
	PassBinary      Pass = "binary"
	PassUnary       Pass = "unary"
	PassBoolean     Pass = "boolean"
	PassConditional Pass = "conditional"
)

// DefaultPasses is the fixed order in which passes run over a file.
var DefaultPasses = []Pass{PassBinary, PassUnary, PassBoolean, PassConditional}

var passGenerators = map[Pass]mutagens.Generator{
	PassBinary:      mutagens.GenerateBinaryMutations,
	PassUnary:       mutagens.GenerateUnaryMutations,
	PassBoolean:     mutagens.GenerateBooleanMutations,
	PassConditional: mutagens.GenerateConditionalMutations,
}

// Mutagen collects the mutants of a single parsed file.
type Mutagen interface {
	GenerateMutants(tree *m.SyntaxTree) []m.Mutant
}

type mutagen struct{}

// NewMutagen creates a new Mutagen instance.
func NewMutagen() Mutagen {
	return &mutagen{}
}

// GenerateMutants runs every pass over tree. Mutant IDs restart at 1 for
// every call and increase in production order.
func (mg *mutagen) GenerateMutants(tree *m.SyntaxTree) []m.Mutant {
	if tree == nil {
		return nil
	}

	mutants := make([]m.Mutant, 0)
	mutationID := 0

	for _, pass := range DefaultPasses {
		mutants = append(mutants, collectPass(pass, tree, &mutationID)...)
	}

	return mutants
}

// collectPass walks tree once in pre-order and applies one generator.
// mutationID carries the count of mutants the file already produced.
func collectPass(pass Pass, tree *m.SyntaxTree, mutationID *int) []m.Mutant {
	gen, ok := passGenerators[pass]
	if !ok {
		return nil
	}

	mutants := make([]m.Mutant, 0)

	tree.Walk(func(node m.SyntaxNode) {
		mutants = append(mutants, gen(node, tree, mutationID)...)
	})

	return mutants
}
