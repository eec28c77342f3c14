package rules

import "go.jacobcolvin.com/jsdoc/tagschema"

func checkAnnotations(c *Context) []Finding {
	var out []Finding

	for _, tag := range c.Doc.Tags {
		if !c.Tags.Allowed(tag.Keyword) {
			out = append(out, findingf(tag.Pos, "unavailable tag @%s", tag.Keyword))

			continue
		}

		req, ok := c.Tags.Requirement(tag.Keyword)
		if !ok || req.Satisfied(tag.Value()) {
			continue
		}

		switch req {
		case tagschema.NoValue:
			out = append(out, findingf(tag.Pos, "tag @%s must not have a value", tag.Keyword))
		case tagschema.RequiredValue:
			out = append(out, findingf(tag.Pos, "tag @%s requires a value", tag.Keyword))
		}
	}

	return out
}
