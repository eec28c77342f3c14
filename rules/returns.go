package rules

import (
	"strings"

	"go.jacobcolvin.com/jsdoc/signature"
)

func requireReturnTypes(c *Context) []Finding {
	var out []Finding

	for _, tag := range c.Doc.Find("return", "returns") {
		if !tag.HasType() {
			out = append(out, findingf(tag.Pos, "missing type in @%s", tag.Keyword))
		}
	}

	return out
}

func checkRedundantReturns(c *Context) []Finding {
	if c.Doc.Has("abstract", "virtual") {
		return nil
	}

	if c.Func.Returns().Reachability != signature.ReturnsNever {
		return nil
	}

	var out []Finding

	for _, tag := range c.Doc.Find("return", "returns") {
		out = append(out, findingf(tag.Pos, "redundant @%s, %s never returns a value", tag.Keyword, c.funcName()))
	}

	return out
}

func checkReturnTypes(c *Context) []Finding {
	returns := c.Func.Returns()
	if returns.Reachability != signature.ReturnsAlways {
		return nil
	}

	var out []Finding

	for _, tag := range c.Doc.Find("return", "returns") {
		if !tag.HasType() {
			continue
		}

		declared, wildcard := declaredKinds(tag.Type)
		if wildcard {
			continue
		}

		var missing []string

		for _, k := range returns.Kinds.Kinds() {
			if k != signature.KindUnknown && !declared.Has(k) {
				missing = append(missing, string(k))
			}
		}

		if len(missing) > 0 {
			out = append(out, findingf(tag.Pos, "declared return type {%s} does not cover returned %s",
				tag.TypeText, strings.Join(missing, ", ")))
		}
	}

	return out
}
