package domain

import (
	m "gooze.dev/pkg/mutaprompt/internal/model"
)

// GroupMutants groups mutants that share a signature. Groups appear in the
// order their signature was first seen and keep their instances in input
// order, so the first instance is always the earliest occurrence. Location
// and file never influence grouping.
func GroupMutants(mutants []m.Mutant) []m.MutantGroup {
	index := make(map[m.Signature]int)
	groups := make([]m.MutantGroup, 0)

	for _, mutant := range mutants {
		signature := m.SignatureOf(mutant)

		if i, ok := index[signature]; ok {
			groups[i].Instances = append(groups[i].Instances, mutant)
			continue
		}

		index[signature] = len(groups)
		groups = append(groups, m.MutantGroup{
			Signature: signature,
			Instances: []m.Mutant{mutant},
		})
	}

	return groups
}
