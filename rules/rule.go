package rules

import (
	"go.jacobcolvin.com/jsdoc/doccomment"
	"go.jacobcolvin.com/jsdoc/signature"
	"go.jacobcolvin.com/jsdoc/tagschema"
)

// Rule is one entry of the rule table.
type Rule struct {
	// Check returns the rule's findings. RuleID is filled in by the
	// [Engine].
	Check func(c *Context) []Finding
	// Key is the configuration key.
	Key string
	// Doc is a one-line summary.
	Doc string
	// Modes are the accepted string values besides true and false.
	Modes []string
	// Undocumented rules also run for functions without a doc-comment.
	Undocumented bool
}

// Values returns every accepted configuration value, as written in a config
// file.
func (r Rule) Values() []string {
	return append([]string{"true", "false"}, r.Modes...)
}

// Context is the input of one rule invocation.
type Context struct {
	// Doc is nil for undocumented functions.
	Doc *doccomment.DocComment
	// Func is never nil.
	Func signature.View
	// Tags is the resolved tag schema.
	Tags *tagschema.Schema
	// Mode is the configured value: [ModeEnabled] or one of the rule's
	// modes.
	Mode string
}

// pos returns the comment position, or the function position for
// undocumented functions.
func (c *Context) pos() signature.Position {
	if c.Doc == nil {
		return c.Func.Pos()
	}

	return c.Doc.Pos
}

// funcName names the function in messages.
func (c *Context) funcName() string {
	if name := c.Func.Name(); name != "" {
		return name
	}

	return "anonymous function"
}
