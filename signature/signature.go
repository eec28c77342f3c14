// Package signature defines the minimal view of a function signature that the
// doc-comment rules check against.
//
// Hosts implement [View] over their own AST, or fill in a [Func]. The view
// carries everything host-language specific as explicit fields: the access
// level implied by the naming convention, whether the function is the direct
// right-hand side of a module export assignment, and a summary of its
// reachable return statements.
package signature

import (
	"slices"
	"strings"
)

// Position is a 1-based line and column in a source file.
type Position struct {
	Line   int `json:"line"   yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// Param is one declared function parameter. Names are passed through from
// the host as-is and may repeat.
type Param struct {
	Name       string
	HasDefault bool
}

// IsPattern reports whether the parameter is a destructuring pattern, named
// by its source text.
func (p Param) IsPattern() bool {
	return strings.HasPrefix(p.Name, "{") || strings.HasPrefix(p.Name, "[")
}

// Access is the visibility implied by a function's name.
type Access string

// Access levels.
const (
	AccessUnknown   Access = "unknown"
	AccessPublic    Access = "public"
	AccessPrivate   Access = "private"
	AccessProtected Access = "protected"
)

// Underscore records which underscore convention a name follows.
type Underscore int

// Underscore conventions.
const (
	UnderscoreNone Underscore = iota
	UnderscoreLeading
	UnderscoreTrailing
)

// Reachability classifies whether a function's control flow reaches a
// value-returning return statement.
type Reachability string

// Reachability values.
const (
	// ReturnsNever means no reachable return statement returns a value.
	ReturnsNever Reachability = "never"
	// ReturnsAlways means every path ends in a value-returning return.
	ReturnsAlways Reachability = "always"
	// ReturnsSometimes means some paths return a value and others do not.
	ReturnsSometimes Reachability = "sometimes"
)

// ReturnSummary describes the reachable return statements of a function.
type ReturnSummary struct {
	Kinds        KindSet
	Reachability Reachability
}

// View is the signature information the rules consume.
type View interface {
	// Name is the function name, or empty for anonymous functions.
	Name() string
	// Params are the declared parameters in order.
	Params() []Param
	// Access is the visibility implied by the naming convention.
	Access() Access
	// Underscore is the underscore convention the name follows.
	Underscore() Underscore
	// Returns summarizes the reachable return statements.
	Returns() ReturnSummary
	// IsExportAssignment reports whether the function is the direct
	// right-hand side of a module export assignment.
	IsExportAssignment() bool
	// Pos is where the function starts.
	Pos() Position
}

// Func is a plain [View] implementation.
type Func struct {
	FuncName   string
	FuncParams []Param
	Return     ReturnSummary
	Position   Position
	Exported   bool
}

// Name implements [View].
func (f *Func) Name() string {
	return f.FuncName
}

// Params implements [View]. The returned slice is a copy.
func (f *Func) Params() []Param {
	return slices.Clone(f.FuncParams)
}

// Access implements [View] using [ClassifyName].
func (f *Func) Access() Access {
	access, _ := ClassifyName(f.FuncName)

	return access
}

// Underscore implements [View] using [ClassifyName].
func (f *Func) Underscore() Underscore {
	_, u := ClassifyName(f.FuncName)

	return u
}

// Returns implements [View]. A zero summary is reported as
// [ReturnsNever].
func (f *Func) Returns() ReturnSummary {
	r := f.Return
	if r.Reachability == "" {
		r.Reachability = ReturnsNever
	}

	return r
}

// IsExportAssignment implements [View].
func (f *Func) IsExportAssignment() bool {
	return f.Exported
}

// Pos implements [View].
func (f *Func) Pos() Position {
	return f.Position
}

// wellKnown are names that use underscores without implying visibility.
var wellKnown = map[string]bool{
	"__proto__":           true,
	"__filename":          true,
	"__dirname":           true,
	"__defineGetter__":    true,
	"__defineSetter__":    true,
	"__lookupGetter__":    true,
	"__lookupSetter__":    true,
	"__noSuchMethod__":    true,
	"__iterator__":        true,
	"__count__":           true,
	"__parent__":          true,
	"__constructor":       true,
	"__super":             true,
	"__esModule":          true,
	"super_":              true,
	"_super":              true,
	"__webpack_require__": true,
	"__webpack_exports__": true,
	"__webpack_modules__": true,
}

// IsWellKnown reports whether name is on the ignore-list of well-known
// underscored identifiers.
func IsWellKnown(name string) bool {
	return wellKnown[name]
}

// ClassifyName derives the access level and underscore convention from a
// function name. Names with a leading or trailing underscore are private;
// other names are public. Empty names and well-known identifiers such as
// __proto__ or super_ are [AccessUnknown].
func ClassifyName(name string) (Access, Underscore) {
	if name == "" || wellKnown[name] || strings.Trim(name, "_") == "" {
		return AccessUnknown, UnderscoreNone
	}

	switch {
	case strings.HasPrefix(name, "_"):
		return AccessPrivate, UnderscoreLeading
	case strings.HasSuffix(name, "_"):
		return AccessPrivate, UnderscoreTrailing
	}

	return AccessPublic, UnderscoreNone
}
