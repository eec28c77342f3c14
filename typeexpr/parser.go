package typeexpr

import (
	"errors"
	"fmt"
	"strings"
)

// maxDepth bounds recursion for deeply nested input.
const maxDepth = 64

var (
	errSyntax   = errors.New("syntax error")
	errTooDeep  = errors.New("type expression nested too deeply")
	errDupField = errors.New("duplicate record field")
)

// primitives are the names that classify as [Native].
var primitives = map[string]bool{
	"boolean":   true,
	"number":    true,
	"string":    true,
	"undefined": true,
	"null":      true,
	"void":      true,
}

// Parse parses text as a type expression. It never fails: text that does not
// match the grammar yields an [Unknown] holding the original text.
func Parse(text string) Expr {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Unknown{Raw: text}
	}

	e, err := parseAll(trimmed)
	if err == nil {
		return e
	}

	// Fall back to the tag-block form, {T}.
	if inner, ok := unwrapBraces(trimmed); ok {
		e, err = parseAll(inner)
		if err == nil {
			return e
		}
	}

	return Unknown{Raw: text}
}

func parseAll(s string) (Expr, error) {
	p := &parser{src: s}

	e, err := p.typeList()
	if err != nil {
		return nil, err
	}

	p.skipSpace()

	if !p.eof() {
		return nil, p.errorf("unexpected %q", p.src[p.pos:])
	}

	return e, nil
}

// unwrapBraces returns the text inside s when s is exactly one balanced
// {...} group.
func unwrapBraces(s string) (string, bool) {
	if !strings.HasPrefix(s, "{") {
		return "", false
	}

	end := MatchBrace(s)
	if end != len(s)-1 {
		return "", false
	}

	return strings.TrimSpace(s[1:end]), true
}

// MatchBrace returns the index of the '}' closing the '{' at s[0], or -1 if
// s does not start with '{' or the braces are unbalanced.
func MatchBrace(s string) int {
	if !strings.HasPrefix(s, "{") {
		return -1
	}

	depth := 0

	for i := range len(s) {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

type parser struct {
	src   string
	pos   int
	depth int
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", errSyntax, p.pos, fmt.Sprintf(format, args...))
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}

	return p.src[p.pos]
}

func (p *parser) skipSpace() {
	for !p.eof() {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// accept consumes tok if it is next, ignoring leading whitespace.
func (p *parser) accept(tok string) bool {
	p.skipSpace()

	if strings.HasPrefix(p.src[p.pos:], tok) {
		p.pos += len(tok)

		return true
	}

	return false
}

func (p *parser) expect(tok string) error {
	if !p.accept(tok) {
		if p.eof() {
			return p.errorf("expected %q, got end of input", tok)
		}

		return p.errorf("expected %q, got %q", tok, p.src[p.pos:])
	}

	return nil
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > maxDepth {
		return errTooDeep
	}

	return nil
}

func (p *parser) leave() {
	p.depth--
}

func (p *parser) typeList() (Expr, error) {
	err := p.enter()
	if err != nil {
		return nil, err
	}
	defer p.leave()

	first, err := p.typ()
	if err != nil {
		return nil, err
	}

	members := []Expr{first}

	for p.accept("|") {
		next, err := p.typ()
		if err != nil {
			return nil, err
		}

		members = append(members, next)
	}

	if len(members) == 1 {
		return first, nil
	}

	return Union{Members: members}, nil
}

func (p *parser) typ() (Expr, error) {
	err := p.enter()
	if err != nil {
		return nil, err
	}
	defer p.leave()

	switch {
	case p.accept("..."):
		inner, err := p.typ()
		if err != nil {
			return nil, err
		}

		return ArrayOf{Elem: inner, Spelling: SpellingRest}, nil

	case p.accept("?"):
		if p.atTerminator() {
			return p.postfix(Reference{Name: "?"}), nil
		}

		inner, err := p.typ()
		if err != nil {
			return nil, err
		}

		return Nullable{Inner: inner}, nil

	case p.accept("!"):
		inner, err := p.typ()
		if err != nil {
			return nil, err
		}

		return NonNullable{Inner: inner}, nil
	}

	prim, err := p.primary()
	if err != nil {
		return nil, err
	}

	return p.postfix(prim), nil
}

// atTerminator reports whether the next token ends a type, which makes a
// preceding '?' the unknown type rather than a nullable prefix.
func (p *parser) atTerminator() bool {
	p.skipSpace()

	switch p.peek() {
	case 0, '|', ',', '>', ')', '}', '=':
		return true
	}

	return false
}

func (p *parser) postfix(e Expr) Expr {
	for {
		switch {
		case p.accept("[]"):
			e = ArrayOf{Elem: e, Spelling: SpellingBrackets}
		case p.accept("="):
			e = Optional{Inner: e}
		default:
			return e
		}
	}
}

func (p *parser) primary() (Expr, error) {
	p.skipSpace()

	switch p.peek() {
	case '(':
		p.pos++

		inner, err := p.typeList()
		if err != nil {
			return nil, err
		}

		err = p.expect(")")
		if err != nil {
			return nil, err
		}

		return inner, nil

	case '{':
		return p.record()

	case '*':
		p.pos++

		return Reference{Name: "*"}, nil
	}

	name := p.typeName()
	if name == "" {
		if p.eof() {
			return nil, p.errorf("expected type, got end of input")
		}

		return nil, p.errorf("expected type, got %q", p.src[p.pos:])
	}

	if name == "function" {
		p.skipSpace()

		if p.peek() == '(' {
			return p.function()
		}
	}

	if p.genericOpen() {
		params, err := p.genericParams()
		if err != nil {
			return nil, err
		}

		if strings.EqualFold(name, "Array") && len(params) == 1 {
			return ArrayOf{Elem: params[0], Spelling: name}, nil
		}

		return Generic{Base: name, Params: params}, nil
	}

	return classify(name), nil
}

// genericOpen consumes '<' or '.<'.
func (p *parser) genericOpen() bool {
	p.skipSpace()

	rest := p.src[p.pos:]

	switch {
	case strings.HasPrefix(rest, ".<"):
		p.pos += 2

		return true
	case strings.HasPrefix(rest, "<"):
		p.pos++

		return true
	}

	return false
}

func (p *parser) genericParams() ([]Expr, error) {
	var params []Expr

	for {
		param, err := p.typeList()
		if err != nil {
			return nil, err
		}

		params = append(params, param)

		if p.accept(",") {
			continue
		}

		err = p.expect(">")
		if err != nil {
			return nil, err
		}

		return params, nil
	}
}

func (p *parser) function() (Expr, error) {
	err := p.expect("(")
	if err != nil {
		return nil, err
	}

	fn := FunctionType{}

	if !p.accept(")") {
		for {
			param, err := p.funcParam()
			if err != nil {
				return nil, err
			}

			fn.Params = append(fn.Params, param)

			if p.accept(",") {
				continue
			}

			err = p.expect(")")
			if err != nil {
				return nil, err
			}

			break
		}
	}

	if p.accept(":") {
		ret, err := p.typ()
		if err != nil {
			return nil, err
		}

		fn.Returns = ret
	}

	return fn, nil
}

// funcParam parses "name: Type" or a bare "Type". this: and new: are plain
// names here.
func (p *parser) funcParam() (FuncParam, error) {
	p.skipSpace()

	start := p.pos

	name := p.ident()
	if name != "" && p.accept(":") {
		t, err := p.typ()
		if err != nil {
			return FuncParam{}, err
		}

		return FuncParam{Name: name, Type: t}, nil
	}

	p.pos = start

	t, err := p.typ()
	if err != nil {
		return FuncParam{}, err
	}

	return FuncParam{Type: t}, nil
}

func (p *parser) record() (Expr, error) {
	err := p.expect("{")
	if err != nil {
		return nil, err
	}

	rec := Record{}

	if p.accept("}") {
		return rec, nil
	}

	for {
		p.skipSpace()

		name := p.ident()
		if name == "" {
			return nil, p.errorf("expected field name")
		}

		if rec.Field(name) != nil {
			return nil, fmt.Errorf("%w: %q", errDupField, name)
		}

		err := p.expect(":")
		if err != nil {
			return nil, err
		}

		t, err := p.typeList()
		if err != nil {
			return nil, err
		}

		rec.Fields = append(rec.Fields, Field{Name: name, Type: t})

		if p.accept(",") {
			continue
		}

		err = p.expect("}")
		if err != nil {
			return nil, err
		}

		return rec, nil
	}
}

// ident scans a single identifier segment.
func (p *parser) ident() string {
	if p.eof() || !isIdentStart(p.src[p.pos]) {
		return ""
	}

	start := p.pos
	p.pos++

	for !p.eof() && isIdentPart(p.src[p.pos]) {
		p.pos++
	}

	return p.src[start:p.pos]
}

// typeName scans a dotted type name, including module:path names.
func (p *parser) typeName() string {
	start := p.pos

	if p.ident() == "" {
		return ""
	}

	for p.pos+1 < len(p.src) && p.src[p.pos] == '.' && isIdentStart(p.src[p.pos+1]) {
		p.pos++
		p.ident()
	}

	if p.src[start:p.pos] == "module" && p.pos+1 < len(p.src) &&
		p.src[p.pos] == ':' && isModulePathChar(p.src[p.pos+1]) {
		p.pos++

		for !p.eof() && isModulePathChar(p.src[p.pos]) {
			p.pos++
		}
	}

	return p.src[start:p.pos]
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func isModulePathChar(c byte) bool {
	return isIdentPart(c) || c == '/' || c == '-' || c == '.'
}

func classify(name string) Expr {
	lower := strings.ToLower(name)
	if primitives[lower] && (name == lower || name == strings.ToUpper(lower[:1])+lower[1:]) {
		return Native{Name: name}
	}

	return Reference{Name: name}
}
