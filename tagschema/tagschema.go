// Package tagschema holds the static tag tables used to parse and validate
// doc-comments: the known tag-name presets, per-tag value requirements, and
// the set of tags that carry a {type} block.
//
// All tables are built once at package initialization and never modified.
// Lookups return copies or read-only views.
package tagschema

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownPreset indicates a preset name that is not one of [Presets].
var ErrUnknownPreset = errors.New("unknown preset")

// Preset names.
const (
	PresetClosureCompiler = "closurecompiler"
	PresetJSDoc3          = "jsdoc3"
	PresetJSDuck5         = "jsduck5"
)

// Requirement states whether a tag may or must carry a value.
type Requirement string

const (
	// NoValue means the tag must be written without any value.
	NoValue Requirement = "no-value"
	// AnyValue means the tag may be written with or without a value.
	AnyValue Requirement = "any-value"
	// RequiredValue means the tag must carry a non-empty value.
	RequiredValue Requirement = "required-value"
)

// Satisfied reports whether a tag whose combined value text is value meets r.
func (r Requirement) Satisfied(value string) bool {
	empty := strings.TrimSpace(value) == ""

	switch r {
	case NoValue:
		return empty
	case RequiredValue:
		return !empty
	}

	return true
}

// Presets returns the built-in preset names in a stable order.
func Presets() []string {
	return []string{PresetClosureCompiler, PresetJSDoc3, PresetJSDuck5}
}

// Schema is a resolved set of allowed tag names with their value
// requirements. The zero value allows nothing.
type Schema struct {
	requirements map[string]Requirement
	allowed      map[string]bool
	preset       string
}

// New builds a [Schema] for the named preset, or for the union of all
// presets when preset is empty. Entries in extra are added to the allowed set
// and override any built-in requirement for the same tag.
func New(preset string, extra map[string]Requirement) (*Schema, error) {
	s := &Schema{
		preset:       preset,
		allowed:      make(map[string]bool),
		requirements: make(map[string]Requirement),
	}

	if preset == "" {
		for _, p := range Presets() {
			for name := range presetTags[p] {
				s.allowed[name] = true
			}
		}
	} else {
		tags, ok := presetTags[preset]
		if !ok {
			return nil, fmt.Errorf("%w %q, one of: %s",
				ErrUnknownPreset, preset, strings.Join(Presets(), ", "))
		}

		for name := range tags {
			s.allowed[name] = true
		}
	}

	for name := range s.allowed {
		if r, ok := requirements[name]; ok {
			s.requirements[name] = r
		}
	}

	for name, r := range extra {
		name = strings.ToLower(name)
		s.allowed[name] = true
		s.requirements[name] = r
	}

	return s, nil
}

// Preset returns the preset name the schema was built from; empty means the
// union of all presets.
func (s *Schema) Preset() string {
	return s.preset
}

// Allowed reports whether the tag name is allowed.
func (s *Schema) Allowed(name string) bool {
	return s.allowed[strings.ToLower(name)]
}

// Requirement returns the value requirement for the tag name, if one exists.
func (s *Schema) Requirement(name string) (Requirement, bool) {
	r, ok := s.requirements[strings.ToLower(name)]

	return r, ok
}

// Names returns the sorted allowed tag names.
func (s *Schema) Names() []string {
	names := make([]string, 0, len(s.allowed))
	for name := range s.allowed {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// CarriesType reports whether a tag of this name is expected to start with a
// {type} block. The table is independent of presets.
func CarriesType(name string) bool {
	return typedTags[strings.ToLower(name)]
}

// ParamFamily reports whether the tag binds to a function parameter.
func ParamFamily(name string) bool {
	switch strings.ToLower(name) {
	case "param", "arg", "argument":
		return true
	}

	return false
}

// Canonical returns the family name for tag aliases that downstream rules
// treat as one tag: arg and argument become param.
func Canonical(name string) string {
	name = strings.ToLower(name)
	if ParamFamily(name) {
		return "param"
	}

	return name
}
