package typeexpr

import "strings"

// Walk calls fn for e and then, if fn returns true, for each child of e in
// source order. Nil expressions are skipped.
func Walk(e Expr, fn func(Expr) bool) {
	if e == nil || !fn(e) {
		return
	}

	switch n := e.(type) {
	case Union:
		for _, m := range n.Members {
			Walk(m, fn)
		}
	case Nullable:
		Walk(n.Inner, fn)
	case NonNullable:
		Walk(n.Inner, fn)
	case Optional:
		Walk(n.Inner, fn)
	case ArrayOf:
		Walk(n.Elem, fn)
	case Generic:
		for _, param := range n.Params {
			Walk(param, fn)
		}
	case FunctionType:
		for _, param := range n.Params {
			Walk(param.Type, fn)
		}

		Walk(n.Returns, fn)
	case Record:
		for _, f := range n.Fields {
			Walk(f.Type, fn)
		}
	}
}

// String renders e in canonical form. For trees without [Unknown] nodes,
// parsing the result yields an equal tree.
func String(e Expr) string {
	var sb strings.Builder

	write(&sb, e)

	return sb.String()
}

func write(sb *strings.Builder, e Expr) {
	switch n := e.(type) {
	case nil:
		return
	case Native:
		sb.WriteString(n.Name)
	case Reference:
		sb.WriteString(n.Name)
	case Unknown:
		sb.WriteString(n.Raw)
	case Union:
		for i, m := range n.Members {
			if i > 0 {
				sb.WriteByte('|')
			}

			write(sb, m)
		}
	case Nullable:
		sb.WriteByte('?')
		writeOperand(sb, n.Inner)
	case NonNullable:
		sb.WriteByte('!')
		writeOperand(sb, n.Inner)
	case Optional:
		writePostfixOperand(sb, n.Inner)
		sb.WriteByte('=')
	case ArrayOf:
		switch n.Spelling {
		case SpellingBrackets:
			writePostfixOperand(sb, n.Elem)
			sb.WriteString("[]")
		case SpellingRest:
			sb.WriteString("...")
			writeOperand(sb, n.Elem)
		default:
			sb.WriteString(n.Spelling)
			sb.WriteByte('<')
			write(sb, n.Elem)
			sb.WriteByte('>')
		}
	case Generic:
		sb.WriteString(n.Base)
		sb.WriteByte('<')

		for i, param := range n.Params {
			if i > 0 {
				sb.WriteString(", ")
			}

			write(sb, param)
		}

		sb.WriteByte('>')
	case FunctionType:
		sb.WriteString("function(")

		for i, param := range n.Params {
			if i > 0 {
				sb.WriteString(", ")
			}

			if param.Name != "" {
				sb.WriteString(param.Name)
				sb.WriteString(": ")
			}

			write(sb, param.Type)
		}

		sb.WriteByte(')')

		if n.Returns != nil {
			sb.WriteString(": ")
			writeOperand(sb, n.Returns)
		}
	case Record:
		sb.WriteByte('{')

		for i, f := range n.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}

			sb.WriteString(f.Name)
			sb.WriteString(": ")
			write(sb, f.Type)
		}

		sb.WriteByte('}')
	}
}

// writeOperand parenthesizes unions used as prefix or postfix operands.
func writeOperand(sb *strings.Builder, e Expr) {
	if _, ok := e.(Union); ok {
		sb.WriteByte('(')
		write(sb, e)
		sb.WriteByte(')')

		return
	}

	write(sb, e)
}

// writePostfixOperand parenthesizes operands that would otherwise absorb a
// trailing [] or =.
func writePostfixOperand(sb *strings.Builder, e Expr) {
	wrap := false

	switch n := e.(type) {
	case Union, Nullable, NonNullable:
		wrap = true
	case ArrayOf:
		wrap = n.Spelling == SpellingRest
	case FunctionType:
		wrap = n.Returns != nil
	}

	if !wrap {
		write(sb, e)

		return
	}

	sb.WriteByte('(')
	write(sb, e)
	sb.WriteByte(')')
}
