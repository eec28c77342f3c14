package rules

import (
	"slices"
	"strings"

	"go.jacobcolvin.com/jsdoc/doccomment"
	"go.jacobcolvin.com/jsdoc/signature"
	"go.jacobcolvin.com/jsdoc/typeexpr"
)

// propertyOf returns the parameter a dotted param name documents a property
// of, as in "options.name" or "items[].id".
func propertyOf(name string) (string, bool) {
	prefix, _, ok := strings.Cut(name, ".")
	if !ok {
		return "", false
	}

	return strings.TrimSuffix(prefix, "[]"), true
}

// describe names a param tag in messages.
func describe(tag doccomment.Tag) string {
	if tag.ParamName == "" {
		return "@" + tag.Keyword
	}

	return "@" + tag.Keyword + " " + tag.ParamName
}

func checkParamNames(c *Context) []Finding {
	var (
		out  []Finding
		last string
	)

	params := c.Func.Params()
	i := 0

	for _, tag := range c.Doc.Params() {
		if tag.ParamName == "" {
			out = append(out, findingf(tag.Pos, "missing param name in @%s", tag.Keyword))
			i++

			continue
		}

		if parent, ok := propertyOf(tag.ParamName); ok {
			if parent != last {
				out = append(out, findingf(tag.Pos,
					"expected %s to document a property of the preceding param %q", tag.ParamName, last))
			}

			continue
		}

		last = tag.ParamName

		switch {
		case i >= len(params):
			out = append(out, findingf(tag.Pos,
				"param %q is out of range, %s has %d params", tag.ParamName, c.funcName(), len(params)))
		case params[i].IsPattern():
		case params[i].Name != tag.ParamName:
			out = append(out, findingf(tag.Pos,
				"expected %s but got %s", params[i].Name, tag.ParamName))
		}

		i++
	}

	return out
}

func requireParamTypes(c *Context) []Finding {
	var out []Finding

	for _, tag := range c.Doc.Params() {
		if !tag.HasType() {
			out = append(out, findingf(tag.Pos, "missing type in %s", describe(tag)))
		}
	}

	return out
}

func checkRedundantParams(c *Context) []Finding {
	var out []Finding

	params := c.Func.Params()
	i := 0

	for _, tag := range c.Doc.Params() {
		if _, ok := propertyOf(tag.ParamName); ok {
			continue
		}

		pos := i
		i++

		if isVariadic(tag.Type) {
			continue
		}

		declared := slices.ContainsFunc(params, func(p signature.Param) bool {
			return p.Name == tag.ParamName
		})

		switch {
		case tag.ParamName != "" && !declared && (pos >= len(params) || !params[pos].IsPattern()):
			out = append(out, findingf(tag.Pos, "found redundant param %q", tag.ParamName))
		case pos >= len(params):
			out = append(out, findingf(tag.Pos, "found redundant %s at position %d", describe(tag), pos+1))
		}
	}

	return out
}

// isVariadic reports whether a param type documents rest arguments.
func isVariadic(t typeexpr.Expr) bool {
	a, ok := t.(typeexpr.ArrayOf)

	return ok && a.Spelling == typeexpr.SpellingRest
}

// description returns a tag description without its hyphen marker.
func description(tag doccomment.Tag) string {
	return strings.TrimSpace(strings.TrimPrefix(tag.Description, "-"))
}

func requireParamDescription(c *Context) []Finding {
	var out []Finding

	for _, tag := range c.Doc.Params() {
		if description(tag) == "" {
			out = append(out, findingf(tag.Pos, "missing description in %s", describe(tag)))
		}
	}

	return out
}

func requireHyphenBeforeDescription(c *Context) []Finding {
	var out []Finding

	for _, tag := range c.Doc.Params() {
		if !strings.HasPrefix(tag.Description, "- ") {
			out = append(out, findingf(tag.Pos, "missing hyphen before description in %s", describe(tag)))
		}
	}

	return out
}
