// Package mutagens holds the mutation operator catalog and one generator per
// construct category.
package mutagens

// binaryReplacements maps a binary operator to its ordered replacements.
// Boundary operators get one replacement per other member of their family.
var binaryReplacements = map[string][]string{
	"+":   {"-"},
	"-":   {"+"},
	"*":   {"/"},
	"/":   {"*"},
	"%":   {"*"},
	"===": {"!=="},
	"!==": {"==="},
	"==":  {"!="},
	"!=":  {"=="},
	">":   {">=", "<", "<="},
	"<":   {"<=", ">", ">="},
	">=":  {">", "<=", "<"},
	"<=":  {"<", ">=", ">"},
	"&&":  {"||"},
	"||":  {"&&"},
}

// unaryReplacements maps a prefix unary operator to its replacements. An
// empty replacement deletes the operator and keeps the operand.
var unaryReplacements = map[string][]string{
	"!":  {""},
	"-":  {""},
	"+":  {"-"},
	"++": {"--"},
	"--": {"++"},
}

var boundaryOperators = map[string]struct{}{
	">":  {},
	"<":  {},
	">=": {},
	"<=": {},
}

// BinaryReplacements returns the replacements for a binary operator, or nil
// when the operator has no rule.
func BinaryReplacements(op string) []string {
	return clone(binaryReplacements[op])
}

// UnaryReplacements returns the replacements for a prefix unary operator, or
// nil when the operator has no rule.
func UnaryReplacements(op string) []string {
	return clone(unaryReplacements[op])
}

// IsBoundaryOperator reports whether op is a relational operator.
func IsBoundaryOperator(op string) bool {
	_, ok := boundaryOperators[op]
	return ok
}

func clone(values []string) []string {
	if values == nil {
		return nil
	}

	out := make([]string, len(values))
	copy(out, values)

	return out
}
