package rules

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

func enforceExistence(c *Context) []Finding {
	if !c.Doc.Empty() {
		return nil
	}

	if c.Mode == ModeExceptExports && c.Func.IsExportAssignment() {
		return nil
	}

	return []Finding{findingf(c.Func.Pos(), "expected doc-comment for %s", c.funcName())}
}

func requireNewlineAfterDescription(c *Context) []Finding {
	if len(c.Doc.Description) == 0 || len(c.Doc.Tags) == 0 || c.Doc.BlankLineBeforeTags {
		return nil
	}

	return []Finding{findingf(c.Doc.Tags[0].Pos, "missing blank line after description")}
}

func disallowNewlineAfterDescription(c *Context) []Finding {
	if len(c.Doc.Description) == 0 || len(c.Doc.Tags) == 0 || !c.Doc.BlankLineBeforeTags {
		return nil
	}

	return []Finding{findingf(c.Doc.Tags[0].Pos, "unexpected blank line after description")}
}

func requireDescriptionCompleteSentence(c *Context) []Finding {
	text, pos := c.Doc.Text(), c.Doc.Pos

	if text == "" {
		for _, tag := range c.Doc.Params() {
			if d := description(tag); d != "" {
				text, pos = d, tag.Pos

				break
			}
		}
	}

	if text == "" {
		return nil
	}

	first, _ := utf8.DecodeRuneInString(text)
	if !unicode.IsUpper(first) {
		return []Finding{findingf(pos, "description must start with an upper-case letter")}
	}

	if !endsWithPeriod(text) {
		return []Finding{findingf(pos, "description must end with a period")}
	}

	return nil
}

// endsWithPeriod reports whether the last non-space character is a period
// directly following a non-space character.
func endsWithPeriod(text string) bool {
	text = strings.TrimRightFunc(text, unicode.IsSpace)

	before, ok := strings.CutSuffix(text, ".")
	if !ok || before == "" {
		return false
	}

	prev, _ := utf8.DecodeLastRuneInString(before)

	return !unicode.IsSpace(prev)
}
