package model

// Analysis is the outcome of one run over a set of candidate files.
type Analysis struct {
	// Files lists the files that were analyzed, in input order. Dropped
	// candidates do not appear.
	Files   []File
	Mutants []Mutant
	Groups  []MutantGroup
}

// CountByKind tallies mutants per kind.
func CountByKind(mutants []Mutant) map[MutatorKind]int {
	counts := make(map[MutatorKind]int, len(MutatorKinds))
	for _, mutant := range mutants {
		counts[mutant.Kind]++
	}

	return counts
}
