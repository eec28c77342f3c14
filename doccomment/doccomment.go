package doccomment

import (
	"strings"

	"go.jacobcolvin.com/jsdoc/signature"
	"go.jacobcolvin.com/jsdoc/tagschema"
	"go.jacobcolvin.com/jsdoc/typeexpr"
)

// DocComment is a parsed doc-comment.
type DocComment struct {
	// Description holds the paragraphs before the first tag. Lines within
	// a paragraph are joined with "\n".
	Description []string
	// Tags are the tags in source order.
	Tags []Tag
	// BlankLineBeforeTags reports whether a blank line separates the
	// description from the first tag. It is false when either is missing.
	BlankLineBeforeTags bool
	// Pos is where the comment starts.
	Pos signature.Position
}

// Tag is one "@name ..." entry.
type Tag struct {
	// Type is the parsed {type} block, nil when the tag has none.
	Type typeexpr.Expr
	// Name is the lower-cased tag name with aliases normalized.
	Name string
	// Keyword is the lower-cased tag name as written.
	Keyword string
	// TypeText is the text inside the {type} block.
	TypeText string
	// ParamName is the bound parameter name for param-family tags.
	ParamName string
	// Default is the default value written as [name=value].
	Default string
	// Description is the text after the type and parameter name.
	Description string
	// Raw is the original tag text, starting at "@".
	Raw string
	// Pos is the position of the "@".
	Pos signature.Position
	// Optional is true when the parameter name was written as [name].
	Optional bool
}

// HasType reports whether the tag has a {type} block that parsed.
func (t Tag) HasType() bool {
	return t.Type != nil && !typeexpr.IsUnknown(t.Type)
}

// IsParam reports whether the tag binds to a function parameter.
func (t Tag) IsParam() bool {
	return t.Name == "param"
}

// IsReturn reports whether the tag documents the return value.
func (t Tag) IsReturn() bool {
	return t.Name == "return" || t.Name == "returns"
}

// Value is the tag's combined value text: the type block, parameter name and
// description.
func (t Tag) Value() string {
	var parts []string

	if t.Type != nil {
		parts = append(parts, "{"+t.TypeText+"}")
	}

	if t.ParamName != "" {
		parts = append(parts, t.ParamName)
	}

	if t.Description != "" {
		parts = append(parts, t.Description)
	}

	return strings.Join(parts, " ")
}

// Empty reports whether the comment has neither description nor tags. A nil
// comment is empty.
func (d *DocComment) Empty() bool {
	return d == nil || (len(d.Description) == 0 && len(d.Tags) == 0)
}

// Text returns the description paragraphs joined by blank lines.
func (d *DocComment) Text() string {
	if d == nil {
		return ""
	}

	return strings.Join(d.Description, "\n\n")
}

// Find returns the tags whose name is one of names, in source order. Names
// are compared after alias normalization.
func (d *DocComment) Find(names ...string) []Tag {
	if d == nil {
		return nil
	}

	var out []Tag

	for _, tag := range d.Tags {
		for _, name := range names {
			if tag.Name == tagschema.Canonical(name) {
				out = append(out, tag)

				break
			}
		}
	}

	return out
}

// Has reports whether any tag has one of names.
func (d *DocComment) Has(names ...string) bool {
	return len(d.Find(names...)) > 0
}

// Params returns the param-family tags in source order.
func (d *DocComment) Params() []Tag {
	return d.Find("param")
}
