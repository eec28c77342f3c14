package typeexpr

// Expr is a node in a parsed type expression. The set of implementations is
// closed: [Native], [Reference], [Union], [Nullable], [NonNullable],
// [Optional], [ArrayOf], [Generic], [FunctionType], [Record] and [Unknown].
type Expr interface {
	expr()
}

// Native is a primitive type name such as boolean, number, string, null or
// undefined, as written in the source.
type Native struct {
	Name string
}

// Reference is a named type that is not a primitive, such as Object, Date or
// a user-defined type. The special names "*" (any) and "?" (unknown) are also
// references.
type Reference struct {
	Name string
}

// Union is an ordered list of alternatives separated by '|'.
type Union struct {
	Members []Expr
}

// Nullable is ?T.
type Nullable struct {
	Inner Expr
}

// NonNullable is !T.
type NonNullable struct {
	Inner Expr
}

// Optional is T=.
type Optional struct {
	Inner Expr
}

// Array spellings recorded on [ArrayOf].
const (
	// SpellingBrackets is T[].
	SpellingBrackets = "[]"
	// SpellingRest is ...T.
	SpellingRest = "..."
)

// ArrayOf is an array of Elem. Spelling is the keyword as written for the
// Array<T> and Array.<T> forms (for example "Array" or "array"), or one of
// [SpellingBrackets] and [SpellingRest].
type ArrayOf struct {
	Elem     Expr
	Spelling string
}

// Generic is Base<Params...>, for example Object<string, number>.
type Generic struct {
	Base   string
	Params []Expr
}

// FuncParam is one parameter of a [FunctionType]. Name is empty when the
// parameter was written as a bare type.
type FuncParam struct {
	Type Expr
	Name string
}

// FunctionType is function(params...): Returns. Returns is nil when the
// function type declares no result.
type FunctionType struct {
	Returns Expr
	Params  []FuncParam
}

// Field is one entry of a [Record].
type Field struct {
	Type Expr
	Name string
}

// Record is {name: T, ...}. Fields keep source order and have unique names.
type Record struct {
	Fields []Field
}

// Field returns the type of the named field, or nil.
func (r Record) Field(name string) Expr {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Type
		}
	}

	return nil
}

// Unknown is text that could not be parsed as a type expression.
type Unknown struct {
	Raw string
}

func (Native) expr()       {}
func (Reference) expr()    {}
func (Union) expr()        {}
func (Nullable) expr()     {}
func (NonNullable) expr()  {}
func (Optional) expr()     {}
func (ArrayOf) expr()      {}
func (Generic) expr()      {}
func (FunctionType) expr() {}
func (Record) expr()       {}
func (Unknown) expr()      {}

// IsUnknown reports whether e is nil or an [Unknown].
func IsUnknown(e Expr) bool {
	if e == nil {
		return true
	}

	_, ok := e.(Unknown)

	return ok
}
