package adapter

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	m "gooze.dev/pkg/mutaprompt/internal/model"
)

var (
	// ErrUnsupportedLanguage is returned for files without a known grammar.
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrUnparseable is returned when the content contains syntax errors.
	ErrUnparseable = errors.New("unparseable source")
)

// SyntaxTreeAdapter hides the parser behind a position-aware tree of
// classified nodes so the mutation engine never touches grammar details.
type SyntaxTreeAdapter interface {
	// Parse builds a syntax tree for content. The path selects the grammar.
	Parse(ctx context.Context, path m.Path, content []byte) (*m.SyntaxTree, error)
}

// TreeSitterAdapter is a SyntaxTreeAdapter backed by tree-sitter grammars
// for TypeScript, TSX and JavaScript.
type TreeSitterAdapter struct{}

// NewTreeSitterAdapter constructs a TreeSitterAdapter.
func NewTreeSitterAdapter() *TreeSitterAdapter {
	return &TreeSitterAdapter{}
}

// languageForExt returns the grammar for a file extension, or nil.
func languageForExt(ext string) *sitter.Language {
	switch strings.ToLower(ext) {
	case ".ts", ".mts", ".cts":
		return typescript.GetLanguage()
	case ".tsx":
		return tsx.GetLanguage()
	case ".js", ".jsx", ".mjs", ".cjs":
		return javascript.GetLanguage()
	default:
		return nil
	}
}

// IsSupportedSource reports whether path has an extension with a grammar.
func IsSupportedSource(path m.Path) bool {
	return languageForExt(filepath.Ext(string(path))) != nil
}

// Parse parses content and flattens it into classified pre-order nodes.
func (a *TreeSitterAdapter) Parse(ctx context.Context, path m.Path, content []byte) (*m.SyntaxTree, error) {
	lang := languageForExt(filepath.Ext(string(path)))
	if lang == nil {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedLanguage)
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(lang)

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil || root.HasError() {
		return nil, fmt.Errorf("%s: %w", path, ErrUnparseable)
	}

	var nodes []m.SyntaxNode

	walkPreOrder(root, func(node *sitter.Node) {
		nodes = append(nodes, classifyNode(node))
	})

	return m.NewSyntaxTree(path, content, nodes), nil
}

// walkPreOrder visits node and every descendant, parents before children.
func walkPreOrder(node *sitter.Node, fn func(*sitter.Node)) {
	if node == nil {
		return
	}

	fn(node)

	count := int(node.ChildCount())
	for i := 0; i < count; i++ {
		walkPreOrder(node.Child(i), fn)
	}
}

func classifyNode(node *sitter.Node) m.SyntaxNode {
	other := m.SyntaxNode{Kind: m.NodeOther, Span: spanOf(node), Target: spanOf(node)}
	if !node.IsNamed() {
		return other
	}

	switch node.Type() {
	case "binary_expression":
		op := node.ChildByFieldName("operator")
		if op == nil {
			return other
		}

		return m.SyntaxNode{Kind: m.NodeBinaryExpr, Span: spanOf(node), Target: spanOf(op)}

	case "unary_expression":
		op := node.ChildByFieldName("operator")
		if op == nil {
			return other
		}

		return m.SyntaxNode{Kind: m.NodePrefixUnaryExpr, Span: spanOf(node), Target: spanOf(op)}

	case "update_expression":
		op := node.ChildByFieldName("operator")
		arg := node.ChildByFieldName("argument")

		// i++ is postfix and has no mutation rule.
		if op == nil || arg == nil || op.StartByte() > arg.StartByte() {
			return other
		}

		return m.SyntaxNode{Kind: m.NodePrefixUnaryExpr, Span: spanOf(node), Target: spanOf(op)}

	case "true", "false":
		return m.SyntaxNode{Kind: m.NodeBooleanLiteral, Span: spanOf(node), Target: spanOf(node)}

	case "if_statement":
		cond := unwrapParens(node.ChildByFieldName("condition"))
		if cond == nil {
			return other
		}

		return m.SyntaxNode{Kind: m.NodeIfStatement, Span: spanOf(node), Target: spanOf(cond)}
	}

	return other
}

// unwrapParens returns the expression inside a parenthesized condition.
func unwrapParens(node *sitter.Node) *sitter.Node {
	if node == nil || node.Type() != "parenthesized_expression" {
		return node
	}

	count := int(node.NamedChildCount())
	for i := 0; i < count; i++ {
		child := node.NamedChild(i)
		if child.Type() != "comment" {
			return child
		}
	}

	return node
}

func spanOf(node *sitter.Node) m.Span {
	return m.Span{Start: int(node.StartByte()), End: int(node.EndByte())}
}
