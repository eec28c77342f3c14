// Package rules cross-checks parsed doc-comments against function signatures
// and configured style constraints.
//
// # Configuration
//
// A configuration is a mapping from rule key to value, as loaded from a
// config file. [Resolve] validates it once and returns a read-only [Config]:
//
//	cfg, err := rules.Resolve(map[string]any{
//		"checkParamNames":  true,
//		"checkTypes":       "strictNativeCase",
//		"enforceExistence": "exceptExports",
//		"checkAnnotations": map[string]any{
//			"preset": "jsdoc3",
//			"extra":  map[string]any{"boomer": false},
//		},
//	})
//
// Every rule is disabled unless its key is set to true or to one of the
// rule's named modes. Unknown keys, unknown modes, unknown presets and
// malformed extra tags are rejected with [ErrInvalidConfig]; the error names
// the key, the value and the accepted values.
//
// # Rules
//
// Each rule is an entry in the table returned by [Registry], keyed by its
// configuration key. A rule is a pure function from a [Context] to findings,
// so rules are independent of each other and can be tested in isolation.
//
// # Checking
//
// [Engine.Check] runs the enabled rules for one function and returns the
// findings in registry order, then source order within a rule. Most rules
// only look at documented functions. enforceExistence and
// leadingUnderscoreAccess also run when the function has no doc-comment.
//
// The engine holds no mutable state, so one [Engine] may check many functions
// from many goroutines.
package rules
