package rules

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"go.jacobcolvin.com/jsdoc/typeexpr"
)

// typedTags are the tag keywords checkTypes applies to.
var typedTags = map[string]bool{
	"typedef": true, "type": true, "param": true, "return": true,
	"returns": true, "enum": true, "var": true, "prop": true,
	"property": true, "arg": true, "argument": true, "cfg": true,
	"lends": true, "extends": true, "implements": true, "define": true,
}

// nativeCase maps lower-cased native type names to their canonical casing.
var nativeCase = map[string]string{
	"boolean": "boolean",
	"number":  "number",
	"string":  "string",
	"object":  "Object",
	"array":   "Array",
	"date":    "Date",
	"regexp":  "RegExp",
}

// capitalized maps lower-cased native type names to their capitalized form.
var capitalized = map[string]string{
	"boolean": "Boolean",
	"number":  "Number",
	"string":  "String",
	"object":  "Object",
	"array":   "Array",
	"date":    "Date",
	"regexp":  "RegExp",
}

func checkTypes(c *Context) []Finding {
	var out []Finding

	for _, tag := range c.Doc.Tags {
		if !typedTags[tag.Keyword] || tag.Type == nil {
			continue
		}

		if typeexpr.IsUnknown(tag.Type) {
			out = append(out, findingf(tag.Pos, "expects valid type instead of {%s}", tag.TypeText))

			continue
		}

		typeexpr.Walk(tag.Type, func(e typeexpr.Expr) bool {
			for _, msg := range checkTypeNode(e, c.Mode) {
				out = append(out, findingf(tag.Pos, "%s", msg))
			}

			return true
		})
	}

	return out
}

// checkTypeNode returns the problems with one node of a type tree.
func checkTypeNode(e typeexpr.Expr, mode string) []string {
	var msgs []string

	switch v := e.(type) {
	case typeexpr.Native:
		msgs = appendCase(msgs, v.Name, mode)
	case typeexpr.Reference:
		msgs = appendCase(msgs, v.Name, mode)
	case typeexpr.Generic:
		msgs = appendCase(msgs, v.Base, mode)
	case typeexpr.ArrayOf:
		if v.Spelling != typeexpr.SpellingBrackets && v.Spelling != typeexpr.SpellingRest {
			msgs = appendCase(msgs, v.Spelling, mode)
		}
	case typeexpr.FunctionType:
		for _, p := range v.Params {
			if p.Name != "" && p.Name != "this" && p.Name != "new" {
				msgs = append(msgs, "unexpected parameter name "+p.Name+" in function type")
			}
		}
	}

	return msgs
}

// appendCase checks the casing of a native type name for the mode.
func appendCase(msgs []string, name, mode string) []string {
	lower := strings.ToLower(name)

	switch mode {
	case ModeStrictNativeCase:
		if want, ok := nativeCase[lower]; ok && name != want {
			msgs = append(msgs, "invalid case of type "+name+", expected "+want)
		}

	case ModeCapitalizedNativeCase:
		if want, ok := capitalized[lower]; ok {
			r, _ := utf8.DecodeRuneInString(name)
			if !unicode.IsUpper(r) {
				msgs = append(msgs, "invalid case of type "+name+", expected "+want)
			}
		}
	}

	return msgs
}
