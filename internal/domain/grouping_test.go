package domain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/mutaprompt/internal/adapter"
	"gooze.dev/pkg/mutaprompt/internal/domain"
	m "gooze.dev/pkg/mutaprompt/internal/model"
)

func mutant(id string, file m.Path, kind m.MutatorKind, original, replacement, expression string, line int) m.Mutant {
	return m.Mutant{
		ID:             id,
		FileName:       file,
		Kind:           kind,
		Original:       original,
		Replacement:    replacement,
		ExpressionText: expression,
		Location: m.Location{
			Start: m.Position{Line: line, Column: 1},
			End:   m.Position{Line: line, Column: 2},
		},
	}
}

func TestGroupMutants(t *testing.T) {
	a1 := mutant("M1", "a.ts", m.BinaryOperator, "+", "-", "a + b", 1)
	a2 := mutant("M2", "a.ts", m.BoundaryCondition, "<", "<=", "i < n", 2)
	b1 := mutant("M1", "b.ts", m.BinaryOperator, "+", "-", "a   +\n  b", 7)
	b2 := mutant("M2", "b.ts", m.BinaryOperator, "+", "-", "x + y", 8)
	b3 := mutant("M3", "b.ts", m.BoundaryCondition, "<", "<=", "i < n", 9)

	groups := domain.GroupMutants([]m.Mutant{a1, a2, b1, b2, b3})

	require.Len(t, groups, 3)

	assert.Equal(t, []m.Mutant{a1, b1}, groups[0].Instances)
	assert.Equal(t, a1, groups[0].Representative())
	assert.Equal(t, "a + b", groups[0].Signature.Expression)

	assert.Equal(t, []m.Mutant{a2, b3}, groups[1].Instances)
	assert.Equal(t, []m.Mutant{b2}, groups[2].Instances)
}

func TestGroupMutants_Law(t *testing.T) {
	mutants := []m.Mutant{
		mutant("M1", "a.ts", m.BooleanLiteral, "true", "false", "true", 1),
		mutant("M2", "a.ts", m.BooleanLiteral, "true", "false", "true", 2),
		mutant("M3", "a.ts", m.BooleanLiteral, "false", "true", "false", 3),
		mutant("M4", "a.ts", m.ConditionalRemoval, "ok", "true", "ok", 4),
		mutant("M5", "a.ts", m.ConditionalRemoval, "ok", "false", "ok", 4),
	}

	groups := domain.GroupMutants(mutants)

	total := 0
	seen := make(map[string]int)

	for _, group := range groups {
		total += group.Count()
		for _, instance := range group.Instances {
			seen[instance.ID]++
		}
	}

	assert.Equal(t, len(mutants), total)
	assert.Len(t, seen, len(mutants))

	for id, n := range seen {
		assert.Equal(t, 1, n, id)
	}
}

func TestGroupMutants_LocationAndFileNeverMatter(t *testing.T) {
	base := mutant("M1", "a.ts", m.UnaryOperator, "!", m.Removed, "!ok", 1)

	moved := base
	moved.FileName = "other/b.ts"
	moved.Location = m.Location{Start: m.Position{Line: 40, Column: 9}, End: m.Position{Line: 40, Column: 10}}
	moved.ID = "M17"

	groups := domain.GroupMutants([]m.Mutant{base, moved})

	require.Len(t, groups, 1)
	assert.Equal(t, 2, groups[0].Count())
}

func TestGroupMutants_RemovalNeverGroupsWithOperator(t *testing.T) {
	removed := mutant("M1", "a.ts", m.UnaryOperator, "-", m.Removed, "-x", 1)
	swapped := mutant("M2", "a.ts", m.UnaryOperator, "-", "+", "-x", 2)

	groups := domain.GroupMutants([]m.Mutant{removed, swapped})

	require.Len(t, groups, 2)
	assert.True(t, groups[0].Representative().IsRemoval())
	assert.False(t, groups[1].Representative().IsRemoval())
	assert.NotEqual(t, groups[0].ID(), groups[1].ID())
}

func TestGroupMutants_DelimiterInTokenText(t *testing.T) {
	first := mutant("M1", "a.ts", m.ConditionalRemoval, "a|b", "true", "c", 1)
	second := mutant("M2", "a.ts", m.ConditionalRemoval, "a", "true", "b|c", 2)

	assert.Len(t, domain.GroupMutants([]m.Mutant{first, second}), 2)
}

func TestGroupMutants_Empty(t *testing.T) {
	assert.Empty(t, domain.GroupMutants(nil))
}

func TestGroupMutants_AcrossParsedFiles(t *testing.T) {
	aggregator := domain.NewAggregator(adapter.NewLocalSourceFSAdapter(), adapter.NewTreeSitterAdapter(), domain.NewMutagen())

	_, mutants, err := aggregator.Aggregate(context.Background(), []m.Path{
		"../../examples/duplicate/a.ts",
		"../../examples/duplicate/b.ts",
	}, 2)
	require.NoError(t, err)
	require.Len(t, mutants, 2)

	groups := domain.GroupMutants(mutants)

	require.Len(t, groups, 1)
	assert.Equal(t, 2, groups[0].Count())
	assert.Equal(t, m.Path("../../examples/duplicate/a.ts"), groups[0].Representative().FileName)
	assert.Equal(t, "a + b", groups[0].Signature.Expression)
}
