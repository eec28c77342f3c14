// Package typeexpr parses the type-expression mini-language used inside
// doc-comment tags, such as the {Array<string>|null} in
//
//	@param {Array<string>|null} names
//
// into a typed expression tree.
//
// # Grammar
//
// [Parse] is a recursive descent parser with bounded lookahead over the
// following grammar:
//
//	TypeList := Type ('|' Type)*
//	Type     := '?' Type | '!' Type | '...' Type | Primary Postfix*
//	Postfix  := '[]' | '='
//	Primary  := '(' TypeList ')' | Record | Function | Generic | Name | '*' | '?'
//	Generic  := Name '.'? '<' TypeList (',' TypeList)* '>'
//	Function := 'function' '(' (Param (',' Param)*)? ')' (':' Type)?
//	Param    := (Name ':')? Type
//	Record   := '{' (Name ':' Type (',' Name ':' Type)*)? '}'
//
// A union of more than one member becomes a [Union] that keeps source order.
// Array<T>, Array.<T>, T[] and the rest form ...T all become [ArrayOf]; the
// spelling is kept so that casing checks can see how the array was written.
//
// Bare names classify as [Native] when they case-insensitively match a
// primitive (boolean, number, string, undefined, null, void) and are written
// either all lower-case or Capitalized. Everything else is a [Reference].
//
// # Failure Handling
//
// Parse never fails. Input that does not match the grammar, including input
// with trailing garbage such as "some~number", yields an [Unknown] carrying
// the original text. A leading '{' is always tried as a [Record] first; when
// that fails and the whole text is a single balanced {...} wrapper (the form
// a tag block takes), the wrapper is removed and the inside parsed instead.
//
// The resulting trees are finite and acyclic. Recursive types can only be
// expressed through a named [Reference].
package typeexpr
