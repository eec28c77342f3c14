package rules

import (
	"strings"

	"go.jacobcolvin.com/jsdoc/signature"
	"go.jacobcolvin.com/jsdoc/typeexpr"
)

// objectKinds are the kinds an Object type covers.
var objectKinds = []signature.ValueKind{
	signature.KindObject,
	signature.KindArray,
	signature.KindFunction,
	signature.KindRegExp,
}

// namedKinds maps lower-cased type names to the kinds they cover.
var namedKinds = map[string][]signature.ValueKind{
	"boolean":   {signature.KindBoolean},
	"number":    {signature.KindNumber},
	"string":    {signature.KindString},
	"null":      {signature.KindNull},
	"undefined": {signature.KindUndefined},
	"void":      {signature.KindUndefined},
	"object":    objectKinds,
	"array":     {signature.KindArray},
	"function":  {signature.KindFunction},
	"regexp":    {signature.KindRegExp},
	"date":      {signature.KindObject},
}

// declaredKinds returns the value kinds a declared type covers. The second
// result is true when the type may hold any value: "*", "?", user types and
// unparsable types.
func declaredKinds(t typeexpr.Expr) (signature.KindSet, bool) {
	kinds := signature.NewKindSet()
	wildcard := addDeclared(kinds, t)

	return kinds, wildcard
}

func addDeclared(kinds signature.KindSet, t typeexpr.Expr) bool {
	switch v := t.(type) {
	case typeexpr.Native:
		return addNamed(kinds, v.Name)

	case typeexpr.Reference:
		return addNamed(kinds, v.Name)

	case typeexpr.Union:
		wildcard := false
		for _, m := range v.Members {
			wildcard = addDeclared(kinds, m) || wildcard
		}

		return wildcard

	case typeexpr.Nullable:
		kinds.Add(signature.KindNull)

		return addDeclared(kinds, v.Inner)

	case typeexpr.NonNullable:
		return addDeclared(kinds, v.Inner)

	case typeexpr.Optional:
		kinds.Add(signature.KindUndefined)

		return addDeclared(kinds, v.Inner)

	case typeexpr.ArrayOf:
		kinds.Add(signature.KindArray)

	case typeexpr.Generic:
		return addNamed(kinds, v.Base)

	case typeexpr.FunctionType:
		kinds.Add(signature.KindFunction)

	case typeexpr.Record:
		kinds.Add(signature.KindObject)

	default:
		return true
	}

	return false
}

func addNamed(kinds signature.KindSet, name string) bool {
	named, ok := namedKinds[strings.ToLower(name)]
	if !ok {
		return true
	}

	for _, k := range named {
		kinds.Add(k)
	}

	return false
}
