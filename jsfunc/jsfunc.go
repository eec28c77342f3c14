package jsfunc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"go.jacobcolvin.com/jsdoc/doccomment"
	"go.jacobcolvin.com/jsdoc/signature"
)

// ErrParseSource indicates that tree-sitter could not parse the source.
var ErrParseSource = errors.New("parse source")

// File is the result of parsing one source file.
type File struct {
	// Functions are the reported functions in source order.
	Functions []Function
	// Partial is true when the source contains syntax errors. Functions
	// are still extracted from the parts tree-sitter could recover.
	Partial bool
}

// Function is one function with its doc-comment.
type Function struct {
	// Doc is nil when the function has no doc-comment.
	Doc *Comment
	// Sig is the function's signature view.
	Sig *signature.Func
}

// Comment is the raw text of a doc-comment and where it starts.
type Comment struct {
	Text string
	Pos  signature.Position
}

// DocComment parses the function's doc-comment, or returns nil when it has
// none.
func (f Function) DocComment() *doccomment.DocComment {
	if f.Doc == nil {
		return nil
	}

	return doccomment.Parse(f.Doc.Text, doccomment.WithOrigin(f.Doc.Pos))
}

// Parse extracts the functions of a JavaScript source file.
func Parse(ctx context.Context, src []byte) (*File, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseSource, err)
	}

	root := tree.RootNode()
	e := &extractor{src: src}
	e.walk(root)

	return &File{Functions: e.funcs, Partial: root.HasError()}, nil
}

type extractor struct {
	src   []byte
	funcs []Function
}

func (e *extractor) walk(n *sitter.Node) {
	if isFunction(n.Type()) {
		if fn, ok := e.function(n); ok {
			e.funcs = append(e.funcs, fn)
		}
	}

	for i := range int(n.NamedChildCount()) {
		e.walk(n.NamedChild(i))
	}
}

func isFunction(typ string) bool {
	switch typ {
	case "function_declaration", "generator_function_declaration",
		"function", "function_expression", "generator_function",
		"arrow_function", "method_definition":
		return true
	}

	return false
}

// function builds a [Function] for n, reporting false for functions that
// are not bound to a name or declaration.
func (e *extractor) function(n *sitter.Node) (Function, bool) {
	name, anchor, ok := e.binding(n)
	if !ok {
		return Function{}, false
	}

	start := n.StartPoint()
	sig := &signature.Func{
		FuncName:   name,
		FuncParams: e.params(n),
		Return:     e.returns(n),
		Position:   signature.Position{Line: int(start.Row) + 1, Column: int(start.Column) + 1},
		Exported:   e.isExportAssignment(n),
	}

	return Function{Doc: e.comment(anchor), Sig: sig}, true
}

// binding returns the function's name and the statement its doc-comment
// attaches to.
func (e *extractor) binding(n *sitter.Node) (string, *sitter.Node, bool) {
	name := ""
	if id := n.ChildByFieldName("name"); id != nil {
		name = id.Content(e.src)
	}

	parent := n.Parent()
	if parent == nil {
		return name, n, false
	}

	switch n.Type() {
	case "function_declaration", "generator_function_declaration":
		if parent.Type() == "export_statement" {
			return name, parent, true
		}

		return name, n, true

	case "method_definition":
		return name, n, true
	}

	switch parent.Type() {
	case "variable_declarator":
		if name == "" {
			name = parent.ChildByFieldName("name").Content(e.src)
		}

		anchor := parent.Parent()
		if anchor != nil && anchor.Parent() != nil && anchor.Parent().Type() == "export_statement" {
			anchor = anchor.Parent()
		}

		return name, anchor, anchor != nil

	case "assignment_expression":
		if !sameNode(parent.ChildByFieldName("right"), n) {
			return "", nil, false
		}

		if name == "" {
			name = memberName(parent.ChildByFieldName("left"), e.src)
		}

		anchor := parent
		if up := parent.Parent(); up != nil && up.Type() == "expression_statement" {
			anchor = up
		}

		return name, anchor, true

	case "pair":
		if name == "" {
			name = strings.Trim(parent.ChildByFieldName("key").Content(e.src), `"'`)
		}

		return name, parent, true

	case "field_definition", "public_field_definition":
		if name == "" {
			if prop := parent.ChildByFieldName("property"); prop != nil {
				name = prop.Content(e.src)
			}
		}

		return name, parent, true

	case "export_statement":
		return name, parent, true
	}

	return "", nil, false
}

// memberName returns the last property of a member expression, or the
// identifier itself.
func memberName(n *sitter.Node, src []byte) string {
	if n == nil {
		return ""
	}

	if n.Type() == "member_expression" {
		if prop := n.ChildByFieldName("property"); prop != nil {
			return prop.Content(src)
		}
	}

	return n.Content(src)
}

func sameNode(a, b *sitter.Node) bool {
	return a != nil && b != nil &&
		a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}

// comment returns the doc-comment directly preceding anchor.
func (e *extractor) comment(anchor *sitter.Node) *Comment {
	prev := anchor.PrevSibling()
	if prev == nil || prev.Type() != "comment" {
		return nil
	}

	text := prev.Content(e.src)
	if !strings.HasPrefix(text, "/**") || text == "/**/" {
		return nil
	}

	start := prev.StartPoint()

	return &Comment{
		Text: text,
		Pos:  signature.Position{Line: int(start.Row) + 1, Column: int(start.Column) + 1},
	}
}

// isExportAssignment reports whether n is the right-hand side of an
// assignment to module.exports or to one of its properties.
func (e *extractor) isExportAssignment(n *sitter.Node) bool {
	parent := n.Parent()
	if parent == nil || parent.Type() != "assignment_expression" || !sameNode(parent.ChildByFieldName("right"), n) {
		return false
	}

	left := strings.Join(strings.Fields(parent.ChildByFieldName("left").Content(e.src)), "")

	return left == "module.exports" ||
		strings.HasPrefix(left, "module.exports.") ||
		strings.HasPrefix(left, "exports.")
}

// params returns the declared parameters of a function node.
func (e *extractor) params(n *sitter.Node) []signature.Param {
	list := n.ChildByFieldName("parameters")
	if list == nil {
		// Arrow functions with a single unparenthesized parameter.
		if p := n.ChildByFieldName("parameter"); p != nil {
			return []signature.Param{{Name: p.Content(e.src)}}
		}

		return nil
	}

	var params []signature.Param

	for i := range int(list.NamedChildCount()) {
		p := list.NamedChild(i)

		switch p.Type() {
		case "comment":
			continue

		case "assignment_pattern":
			params = append(params, signature.Param{
				Name:       p.ChildByFieldName("left").Content(e.src),
				HasDefault: true,
			})

		case "rest_pattern":
			name := strings.TrimPrefix(p.Content(e.src), "...")
			params = append(params, signature.Param{Name: strings.TrimSpace(name)})

		default:
			params = append(params, signature.Param{Name: p.Content(e.src)})
		}
	}

	return params
}
