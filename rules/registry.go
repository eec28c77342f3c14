package rules

import "go.jacobcolvin.com/jsdoc/tagschema"

// Rule keys.
const (
	KeyCheckAnnotations                   = "checkAnnotations"
	KeyCheckParamNames                    = "checkParamNames"
	KeyRequireParamTypes                  = "requireParamTypes"
	KeyCheckRedundantParams               = "checkRedundantParams"
	KeyCheckReturnTypes                   = "checkReturnTypes"
	KeyCheckRedundantReturns              = "checkRedundantReturns"
	KeyRequireReturnTypes                 = "requireReturnTypes"
	KeyCheckTypes                         = "checkTypes"
	KeyCheckRedundantAccess               = "checkRedundantAccess"
	KeyLeadingUnderscoreAccess            = "leadingUnderscoreAccess"
	KeyEnforceExistence                   = "enforceExistence"
	KeyRequireHyphenBeforeDescription     = "requireHyphenBeforeDescription"
	KeyRequireNewlineAfterDescription     = "requireNewlineAfterDescription"
	KeyDisallowNewlineAfterDescription    = "disallowNewlineAfterDescription"
	KeyRequireDescriptionCompleteSentence = "requireDescriptionCompleteSentence"
	KeyRequireParamDescription            = "requireParamDescription"
)

// Rule modes.
const (
	ModeEnabled                   = "true"
	ModeStrictNativeCase          = "strictNativeCase"
	ModeCapitalizedNativeCase     = "capitalizedNativeCase"
	ModeEnforceLeadingUnderscore  = "enforceLeadingUnderscore"
	ModeEnforceTrailingUnderscore = "enforceTrailingUnderscore"
	ModePrivate                   = "private"
	ModeProtected                 = "protected"
	ModeExceptExports             = "exceptExports"
)

// registry is the rule table in output order.
var registry = []Rule{
	{
		Key:   KeyCheckAnnotations,
		Doc:   "Tag names must be in the preset, and tag values must match the tag's value requirement. Also accepts {preset, extra}.",
		Modes: tagschema.Presets(),
		Check: checkAnnotations,
	},
	{
		Key:   KeyCheckParamNames,
		Doc:   "Param tag names must match the function's parameters by position.",
		Check: checkParamNames,
	},
	{
		Key:   KeyRequireParamTypes,
		Doc:   "Param tags must have a type.",
		Check: requireParamTypes,
	},
	{
		Key:   KeyCheckRedundantParams,
		Doc:   "Param tags must not document parameters the function lacks.",
		Check: checkRedundantParams,
	},
	{
		Key:   KeyCheckReturnTypes,
		Doc:   "The declared return type must cover the kinds of value the function returns.",
		Check: checkReturnTypes,
	},
	{
		Key:   KeyCheckRedundantReturns,
		Doc:   "Return tags must not document functions that never return a value.",
		Check: checkRedundantReturns,
	},
	{
		Key:   KeyRequireReturnTypes,
		Doc:   "Return tags must have a type.",
		Check: requireReturnTypes,
	},
	{
		Key:   KeyCheckTypes,
		Doc:   "Types must be valid, and native type names must use the configured casing.",
		Modes: []string{ModeStrictNativeCase, ModeCapitalizedNativeCase},
		Check: checkTypes,
	},
	{
		Key:   KeyCheckRedundantAccess,
		Doc:   "Access must not be declared twice, or where the underscore convention already implies it.",
		Modes: []string{ModeEnforceLeadingUnderscore, ModeEnforceTrailingUnderscore},
		Check: checkRedundantAccess,
	},
	{
		Key:          KeyLeadingUnderscoreAccess,
		Doc:          "Underscored functions must declare non-public access, or the configured level.",
		Modes:        []string{ModePrivate, ModeProtected},
		Check:        leadingUnderscoreAccess,
		Undocumented: true,
	},
	{
		Key:          KeyEnforceExistence,
		Doc:          "Functions must have a doc-comment.",
		Modes:        []string{ModeExceptExports},
		Check:        enforceExistence,
		Undocumented: true,
	},
	{
		Key:   KeyRequireHyphenBeforeDescription,
		Doc:   `Param descriptions must start with "- ".`,
		Check: requireHyphenBeforeDescription,
	},
	{
		Key:   KeyRequireNewlineAfterDescription,
		Doc:   "A blank line must separate the description from the tags.",
		Check: requireNewlineAfterDescription,
	},
	{
		Key:   KeyDisallowNewlineAfterDescription,
		Doc:   "No blank line may separate the description from the tags.",
		Check: disallowNewlineAfterDescription,
	},
	{
		Key:   KeyRequireDescriptionCompleteSentence,
		Doc:   "The description must start with an upper-case letter and end with a period.",
		Check: requireDescriptionCompleteSentence,
	},
	{
		Key:   KeyRequireParamDescription,
		Doc:   "Param tags must have a description.",
		Check: requireParamDescription,
	},
}

// Registry returns the rule table in output order.
func Registry() []Rule {
	out := make([]Rule, len(registry))
	copy(out, registry)

	return out
}

// Keys returns every rule key in output order.
func Keys() []string {
	keys := make([]string, len(registry))
	for i, r := range registry {
		keys[i] = r.Key
	}

	return keys
}

// Lookup returns the rule with the given key.
func Lookup(key string) (Rule, bool) {
	for _, r := range registry {
		if r.Key == key {
			return r, true
		}
	}

	return Rule{}, false
}
