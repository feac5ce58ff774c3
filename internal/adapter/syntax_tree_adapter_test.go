package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/mutaprompt/internal/model"
)

type classified struct {
	kind   m.NodeKind
	target string
}

func parseClassified(t *testing.T, path m.Path, source string) []classified {
	t.Helper()

	tree, err := NewTreeSitterAdapter().Parse(context.Background(), path, []byte(source))
	require.NoError(t, err)

	var nodes []classified

	tree.Walk(func(node m.SyntaxNode) {
		if node.Kind == m.NodeOther {
			return
		}

		nodes = append(nodes, classified{kind: node.Kind, target: tree.Text(node.Target)})
	})

	return nodes
}

func TestTreeSitterAdapter_Classify(t *testing.T) {
	tests := []struct {
		name   string
		path   m.Path
		source string
		want   []classified
	}{
		{
			name:   "binary operator target is the operator token",
			path:   "sum.ts",
			source: "const total = a + b * c;\n",
			want: []classified{
				{m.NodeBinaryExpr, "+"},
				{m.NodeBinaryExpr, "*"},
			},
		},
		{
			name:   "prefix unary and prefix update",
			path:   "flags.js",
			source: "const a = !ready;\nconst b = -offset;\n++count;\n",
			want: []classified{
				{m.NodePrefixUnaryExpr, "!"},
				{m.NodePrefixUnaryExpr, "-"},
				{m.NodePrefixUnaryExpr, "++"},
			},
		},
		{
			name:   "postfix update is not classified",
			path:   "loop.js",
			source: "count++;\n",
			want:   nil,
		},
		{
			name:   "boolean literals",
			path:   "flags.ts",
			source: "const ok = true;\nconst no = false;\n",
			want: []classified{
				{m.NodeBooleanLiteral, "true"},
				{m.NodeBooleanLiteral, "false"},
			},
		},
		{
			name:   "if guard without parentheses, parent before children",
			path:   "guard.ts",
			source: "if ((a < b)) { run(); }\n",
			want: []classified{
				{m.NodeIfStatement, "(a < b)"},
				{m.NodeBinaryExpr, "<"},
			},
		},
		{
			name:   "tsx grammar",
			path:   "Badge.tsx",
			source: "export const Badge = () => <span>{n > 9 ? \"9+\" : n}</span>;\n",
			want: []classified{
				{m.NodeBinaryExpr, ">"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseClassified(t, tt.path, tt.source))
		})
	}
}

func TestTreeSitterAdapter_Parse_Errors(t *testing.T) {
	adapter := NewTreeSitterAdapter()

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := adapter.Parse(context.Background(), "main.go", []byte("package main\n"))
		assert.ErrorIs(t, err, ErrUnsupportedLanguage)
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := adapter.Parse(context.Background(), "broken.ts", []byte("function broken(a: number {\n  return a >;\n}\n"))
		assert.ErrorIs(t, err, ErrUnparseable)
	})

	t.Run("empty content", func(t *testing.T) {
		tree, err := adapter.Parse(context.Background(), "empty.ts", nil)
		require.NoError(t, err)
		assert.Equal(t, 1, tree.LineCount())
	})
}

func TestTreeSitterAdapter_Positions(t *testing.T) {
	source := "export function clamp(value: number, min: number, max: number): number {\n  if (value < min) return min;\n  return value;\n}\n"

	tree, err := NewTreeSitterAdapter().Parse(context.Background(), "clamp.ts", []byte(source))
	require.NoError(t, err)

	var locations []m.Location

	tree.Walk(func(node m.SyntaxNode) {
		if node.Kind != m.NodeOther {
			locations = append(locations, tree.Location(node.Target))
		}
	})

	require.Len(t, locations, 2)
	assert.Equal(t, m.Location{Start: m.Position{Line: 2, Column: 7}, End: m.Position{Line: 2, Column: 18}}, locations[0])
	assert.Equal(t, m.Location{Start: m.Position{Line: 2, Column: 13}, End: m.Position{Line: 2, Column: 14}}, locations[1])
	assert.Equal(t, 4, tree.LineCount())
}

func TestIsSupportedSource(t *testing.T) {
	tests := []struct {
		path m.Path
		want bool
	}{
		{"a.ts", true},
		{"a.mts", true},
		{"a.cts", true},
		{"a.tsx", true},
		{"a.js", true},
		{"a.jsx", true},
		{"a.mjs", true},
		{"a.cjs", true},
		{"A.TS", true},
		{"a.go", false},
		{"a.d", false},
		{"README", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.path), func(t *testing.T) {
			assert.Equal(t, tt.want, IsSupportedSource(tt.path))
		})
	}
}
