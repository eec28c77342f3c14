package rules

import (
	"strings"

	"go.jacobcolvin.com/jsdoc/doccomment"
	"go.jacobcolvin.com/jsdoc/signature"
)

// accessTag is an access declaration: a shorthand @private, @protected or
// @public tag, or an explicit @access tag.
type accessTag struct {
	level    string
	tag      doccomment.Tag
	explicit bool
}

func accessTags(doc *doccomment.DocComment) []accessTag {
	var out []accessTag

	for _, tag := range doc.Find("access", "private", "protected", "public") {
		if tag.Name == "access" {
			level, _, _ := strings.Cut(strings.TrimSpace(tag.Description), " ")
			out = append(out, accessTag{level: strings.ToLower(level), tag: tag, explicit: true})

			continue
		}

		out = append(out, accessTag{level: tag.Name, tag: tag})
	}

	return out
}

func checkRedundantAccess(c *Context) []Finding {
	var out []Finding

	tags := accessTags(c.Doc)

	for _, a := range tags {
		if !a.explicit {
			continue
		}

		for _, b := range tags {
			if !b.explicit && b.level == a.level {
				out = append(out, findingf(a.tag.Pos, "redundant access declaration, @%s already declares it", b.level))

				break
			}
		}
	}

	var implied signature.Underscore

	switch c.Mode {
	case ModeEnforceLeadingUnderscore:
		implied = signature.UnderscoreLeading
	case ModeEnforceTrailingUnderscore:
		implied = signature.UnderscoreTrailing
	default:
		return out
	}

	if c.Func.Underscore() != implied {
		return out
	}

	for _, a := range tags {
		if !a.explicit && a.level != string(signature.AccessPublic) {
			out = append(out, findingf(a.tag.Pos,
				"redundant @%s, the underscore in %s already implies it", a.level, c.funcName()))
		}
	}

	return out
}

func leadingUnderscoreAccess(c *Context) []Finding {
	if c.Func.Underscore() == signature.UnderscoreNone || c.Func.Access() == signature.AccessUnknown {
		return nil
	}

	tags := accessTags(c.Doc)
	if len(tags) == 0 {
		return []Finding{findingf(c.pos(), "missing access tag for %s", c.funcName())}
	}

	declared := tags[len(tags)-1]

	switch c.Mode {
	case ModePrivate, ModeProtected:
		if declared.level != c.Mode {
			return []Finding{findingf(declared.tag.Pos,
				"expected %s access for %s but got %s", c.Mode, c.funcName(), declared.level)}
		}

	default:
		if declared.level != string(signature.AccessPrivate) && declared.level != string(signature.AccessProtected) {
			return []Finding{findingf(declared.tag.Pos,
				"expected non-public access for %s but got %s", c.funcName(), declared.level)}
		}
	}

	return nil
}
