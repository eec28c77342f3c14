package jsfunc

import (
	sitter "github.com/smacker/go-tree-sitter"

	"go.jacobcolvin.com/jsdoc/signature"
)

// flow accumulates the return statements reached while walking one function
// body.
type flow struct {
	src         []byte
	kinds       signature.KindSet
	valueReturn bool
	voidReturn  bool
	broke       bool
}

// returns summarizes the reachable return statements of a function node.
func (e *extractor) returns(n *sitter.Node) signature.ReturnSummary {
	body := n.ChildByFieldName("body")
	if body == nil {
		return signature.ReturnSummary{Reachability: signature.ReturnsNever}
	}

	f := &flow{src: e.src, kinds: signature.NewKindSet()}

	if body.Type() != "statement_block" {
		f.addKinds(body)

		return signature.ReturnSummary{Kinds: f.kinds, Reachability: signature.ReturnsAlways}
	}

	completes := f.stmt(body)

	r := signature.ReturnSummary{Kinds: f.kinds, Reachability: signature.ReturnsSometimes}

	switch {
	case !f.valueReturn:
		r.Reachability = signature.ReturnsNever
	case !completes && !f.voidReturn:
		r.Reachability = signature.ReturnsAlways
	}

	return r
}

// stmt walks one statement and reports whether control can continue after
// it.
func (f *flow) stmt(n *sitter.Node) bool {
	if n == nil {
		return true
	}

	switch n.Type() {
	case "return_statement":
		if value := firstNamed(n); value != nil {
			f.valueReturn = true
			f.addKinds(value)
		} else {
			f.voidReturn = true
		}

		return false

	case "throw_statement", "continue_statement":
		return false

	case "break_statement":
		f.broke = true

		return false

	case "statement_block":
		return f.block(n, 0)

	case "if_statement":
		cons := f.stmt(n.ChildByFieldName("consequence"))

		alt := n.ChildByFieldName("alternative")
		if alt == nil {
			return true
		}

		if alt.Type() == "else_clause" {
			alt = firstNamed(alt)
		}

		return f.stmt(alt) || cons

	case "switch_statement":
		return f.switchStmt(n.ChildByFieldName("body"))

	case "try_statement":
		return f.tryStmt(n)

	case "for_statement", "for_in_statement", "while_statement", "do_statement":
		broke := f.broke
		f.stmt(n.ChildByFieldName("body"))
		f.broke = broke

		return true

	case "labeled_statement":
		f.stmt(n.ChildByFieldName("body"))

		return true
	}

	return true
}

// block walks the named children of n from index from, stopping at the first
// statement control cannot pass.
func (f *flow) block(n *sitter.Node, from int) bool {
	for i := from; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() == "comment" {
			continue
		}

		if !f.stmt(child) {
			return false
		}
	}

	return true
}

func (f *flow) switchStmt(body *sitter.Node) bool {
	if body == nil {
		return true
	}

	broke := f.broke
	f.broke = false

	hasDefault := false
	last := true

	for i := range int(body.NamedChildCount()) {
		c := body.NamedChild(i)

		switch c.Type() {
		case "switch_case":
			// The first named child is the case value.
			last = f.block(c, 1)
		case "switch_default":
			hasDefault = true
			last = f.block(c, 0)
		}
	}

	completes := !hasDefault || last || f.broke
	f.broke = broke

	return completes
}

func (f *flow) tryStmt(n *sitter.Node) bool {
	completes := f.stmt(n.ChildByFieldName("body"))

	if handler := n.ChildByFieldName("handler"); handler != nil {
		completes = f.stmt(handler.ChildByFieldName("body")) || completes
	}

	if finalizer := n.ChildByFieldName("finalizer"); finalizer != nil {
		if !f.stmt(finalizer.ChildByFieldName("body")) {
			return false
		}
	}

	return completes
}

// addKinds records the value kinds an expression may produce.
func (f *flow) addKinds(n *sitter.Node) {
	for _, k := range kindsOf(n, f.src) {
		f.kinds.Add(k)
	}
}

func kindsOf(n *sitter.Node, src []byte) []signature.ValueKind {
	if n == nil {
		return []signature.ValueKind{signature.KindUnknown}
	}

	switch n.Type() {
	case "string", "template_string":
		return []signature.ValueKind{signature.KindString}
	case "number":
		return []signature.ValueKind{signature.KindNumber}
	case "true", "false":
		return []signature.ValueKind{signature.KindBoolean}
	case "null":
		return []signature.ValueKind{signature.KindNull}
	case "undefined":
		return []signature.ValueKind{signature.KindUndefined}
	case "object", "new_expression":
		return []signature.ValueKind{signature.KindObject}
	case "array":
		return []signature.ValueKind{signature.KindArray}
	case "regex":
		return []signature.ValueKind{signature.KindRegExp}
	case "function", "function_expression", "generator_function", "arrow_function", "class":
		return []signature.ValueKind{signature.KindFunction}

	case "identifier":
		if n.Content(src) == "undefined" {
			return []signature.ValueKind{signature.KindUndefined}
		}

	case "parenthesized_expression":
		if inner := firstNamed(n); inner != nil {
			return kindsOf(inner, src)
		}

	case "unary_expression":
		return unaryKinds(operator(n, src))

	case "binary_expression":
		return binaryKinds(n, src)

	case "ternary_expression":
		return append(kindsOf(n.ChildByFieldName("consequence"), src),
			kindsOf(n.ChildByFieldName("alternative"), src)...)

	case "assignment_expression":
		return kindsOf(n.ChildByFieldName("right"), src)
	}

	return []signature.ValueKind{signature.KindUnknown}
}

func unaryKinds(op string) []signature.ValueKind {
	switch op {
	case "!", "delete":
		return []signature.ValueKind{signature.KindBoolean}
	case "typeof":
		return []signature.ValueKind{signature.KindString}
	case "void":
		return []signature.ValueKind{signature.KindUndefined}
	case "-", "+", "~":
		return []signature.ValueKind{signature.KindNumber}
	}

	return []signature.ValueKind{signature.KindUnknown}
}

func binaryKinds(n *sitter.Node, src []byte) []signature.ValueKind {
	left, right := n.ChildByFieldName("left"), n.ChildByFieldName("right")

	switch operator(n, src) {
	case "==", "===", "!=", "!==", "<", ">", "<=", ">=", "instanceof", "in":
		return []signature.ValueKind{signature.KindBoolean}

	case "-", "*", "/", "%", "**", "&", "|", "^", "<<", ">>", ">>>":
		return []signature.ValueKind{signature.KindNumber}

	case "&&", "||", "??":
		return append(kindsOf(left, src), kindsOf(right, src)...)

	case "+":
		l, r := kindsOf(left, src), kindsOf(right, src)
		if only(l, signature.KindString) || only(r, signature.KindString) {
			return []signature.ValueKind{signature.KindString}
		}

		if only(l, signature.KindNumber) && only(r, signature.KindNumber) {
			return []signature.ValueKind{signature.KindNumber}
		}
	}

	return []signature.ValueKind{signature.KindUnknown}
}

func only(kinds []signature.ValueKind, k signature.ValueKind) bool {
	for _, got := range kinds {
		if got != k {
			return false
		}
	}

	return len(kinds) > 0
}

// operator returns the operator token of a unary or binary expression.
func operator(n *sitter.Node, src []byte) string {
	if op := n.ChildByFieldName("operator"); op != nil {
		return op.Content(src)
	}

	return ""
}

// firstNamed returns the first named child that is not a comment.
func firstNamed(n *sitter.Node) *sitter.Node {
	for i := range int(n.NamedChildCount()) {
		if c := n.NamedChild(i); c.Type() != "comment" {
			return c
		}
	}

	return nil
}
