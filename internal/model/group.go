package model

import (
	"crypto/sha256"
	"fmt"
	"strconv"
	"strings"
)

// Signature identifies a bug pattern independently of where it occurs.
// It is comparable and is used directly as a map key.
type Signature struct {
	Kind        MutatorKind
	Original    string
	Replacement string
	Expression  string
}

// SignatureOf computes the grouping signature of a mutant. When the mutant
// carries no expression text its original text stands in for it.
func SignatureOf(mutant Mutant) Signature {
	expression := NormalizeWhitespace(mutant.ExpressionText)
	if expression == "" {
		expression = mutant.Original
	}

	return Signature{
		Kind:        mutant.Kind,
		Original:    mutant.Original,
		Replacement: mutant.Replacement,
		Expression:  expression,
	}
}

// String renders the signature with every component quoted, so component
// text can never be confused with the separators.
func (s Signature) String() string {
	return strings.Join([]string{
		string(s.Kind),
		strconv.Quote(s.Original),
		strconv.Quote(s.Replacement),
		strconv.Quote(s.Expression),
	}, " ")
}

// Digest returns a short stable identifier for the signature.
func (s Signature) Digest() string {
	sum := sha256.Sum256([]byte(s.String()))
	return fmt.Sprintf("%x", sum)[:12]
}

// NormalizeWhitespace collapses runs of whitespace into one space and trims
// both ends.
func NormalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// MutantGroup gathers mutants that represent the same bug pattern.
type MutantGroup struct {
	Signature Signature
	Instances []Mutant
}

// ID returns the group's short identifier.
func (g MutantGroup) ID() string {
	return g.Signature.Digest()
}

// Representative returns the first discovered instance of the group.
func (g MutantGroup) Representative() Mutant {
	return g.Instances[0]
}

// Count returns the number of occurrences of the pattern.
func (g MutantGroup) Count() int {
	return len(g.Instances)
}
