package mutagens

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinaryReplacements(t *testing.T) {
	tests := []struct {
		op   string
		want []string
	}{
		{"+", []string{"-"}},
		{"-", []string{"+"}},
		{"*", []string{"/"}},
		{"/", []string{"*"}},
		{"%", []string{"*"}},
		{"===", []string{"!=="}},
		{"!==", []string{"==="}},
		{"==", []string{"!="}},
		{"!=", []string{"=="}},
		{">", []string{">=", "<", "<="}},
		{"<", []string{"<=", ">", ">="}},
		{">=", []string{">", "<=", "<"}},
		{"<=", []string{"<", ">=", ">"}},
		{"&&", []string{"||"}},
		{"||", []string{"&&"}},
		{"??", nil},
		{"instanceof", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			assert.Equal(t, tt.want, BinaryReplacements(tt.op))
		})
	}
}

func TestUnaryReplacements(t *testing.T) {
	tests := []struct {
		op   string
		want []string
	}{
		{"!", []string{""}},
		{"-", []string{""}},
		{"+", []string{"-"}},
		{"++", []string{"--"}},
		{"--", []string{"++"}},
		{"typeof", nil},
		{"~", nil},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			assert.Equal(t, tt.want, UnaryReplacements(tt.op))
		})
	}
}

func TestReplacementsAreCopies(t *testing.T) {
	got := BinaryReplacements(">")
	got[0] = "=="

	assert.Equal(t, []string{">=", "<", "<="}, BinaryReplacements(">"))
}

func TestReplacementsNeverEqualOriginal(t *testing.T) {
	for op, replacements := range binaryReplacements {
		for _, replacement := range replacements {
			assert.NotEqual(t, op, replacement, op)
		}
	}

	for op, replacements := range unaryReplacements {
		for _, replacement := range replacements {
			assert.NotEqual(t, op, replacement, op)
		}
	}
}

func TestIsBoundaryOperator(t *testing.T) {
	for _, op := range []string{">", "<", ">=", "<="} {
		assert.True(t, IsBoundaryOperator(op), op)
	}

	for _, op := range []string{"==", "===", "+", "&&", ">>", "<<"} {
		assert.False(t, IsBoundaryOperator(op), op)
	}
}
