package rules

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"go.jacobcolvin.com/jsdoc/tagschema"
)

// ErrInvalidConfig indicates a configuration value that cannot be resolved.
var ErrInvalidConfig = errors.New("invalid configuration")

// validate is safe for concurrent use and caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Config is a resolved configuration. It is read-only and safe to share.
type Config struct {
	modes map[string]string
	tags  *tagschema.Schema
}

// annotationsValue is the object form of checkAnnotations.
type annotationsValue struct {
	Extra  map[string]tagschema.Requirement
	Preset string `validate:"omitempty,oneof=closurecompiler jsdoc3 jsduck5"`
}

// Resolve validates raw rule settings and returns the resolved [Config]. A
// nil or false value disables a rule.
func Resolve(raw map[string]any) (*Config, error) {
	cfg := &Config{modes: make(map[string]string)}

	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	for _, key := range keys {
		rule, ok := Lookup(key)
		if !ok {
			return nil, fmt.Errorf("%w: unknown rule %q, one of: %s",
				ErrInvalidConfig, key, strings.Join(Keys(), ", "))
		}

		if obj, ok := raw[key].(map[string]any); ok && key == KeyCheckAnnotations {
			tags, err := resolveAnnotations(obj)
			if err != nil {
				return nil, err
			}

			cfg.modes[key] = ModeEnabled
			if tags.Preset() != "" {
				cfg.modes[key] = tags.Preset()
			}

			cfg.tags = tags

			continue
		}

		mode, err := resolveMode(rule, raw[key])
		if err != nil {
			return nil, err
		}

		if mode != "" {
			cfg.modes[key] = mode
		}
	}

	if cfg.Enabled(KeyRequireNewlineAfterDescription) && cfg.Enabled(KeyDisallowNewlineAfterDescription) {
		return nil, fmt.Errorf("%w: %s and %s are mutually exclusive",
			ErrInvalidConfig, KeyRequireNewlineAfterDescription, KeyDisallowNewlineAfterDescription)
	}

	if cfg.tags == nil {
		preset := ""
		if mode := cfg.modes[KeyCheckAnnotations]; mode != ModeEnabled {
			preset = mode
		}

		tags, err := tagschema.New(preset, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}

		cfg.tags = tags
	}

	return cfg, nil
}

// resolveMode maps a scalar setting to a mode, or to "" when disabled.
func resolveMode(rule Rule, value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil

	case bool:
		if !v {
			return "", nil
		}

		return ModeEnabled, nil

	case string:
		if len(rule.Modes) == 0 {
			return "", invalidValue(rule.Key, v, rule.Values())
		}

		err := validate.Var(v, "oneof="+strings.Join(rule.Modes, " "))
		if err != nil {
			accepted := append([]string{"true", "false"}, acceptedFrom(err, rule.Modes)...)

			return "", invalidValue(rule.Key, v, accepted)
		}

		return v, nil
	}

	return "", invalidValue(rule.Key, value, rule.Values())
}

// resolveAnnotations resolves the {preset, extra} form of checkAnnotations.
func resolveAnnotations(obj map[string]any) (*tagschema.Schema, error) {
	var v annotationsValue

	for field, value := range obj {
		switch field {
		case "preset":
			preset, ok := value.(string)
			if !ok {
				return nil, invalidValue(KeyCheckAnnotations+".preset", value, tagschema.Presets())
			}

			v.Preset = preset

		case "extra":
			extra, err := resolveExtra(value)
			if err != nil {
				return nil, err
			}

			v.Extra = extra

		default:
			return nil, fmt.Errorf("%w: %s: unknown field %q, one of: preset, extra",
				ErrInvalidConfig, KeyCheckAnnotations, field)
		}
	}

	err := validate.Struct(v)
	if err != nil {
		return nil, invalidValue(KeyCheckAnnotations+".preset", v.Preset, acceptedFrom(err, tagschema.Presets()))
	}

	tags, err := tagschema.New(v.Preset, v.Extra)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return tags, nil
}

// resolveExtra maps extra tag values to requirements: false means no value,
// true means any value and "some" means a required value.
func resolveExtra(value any) (map[string]tagschema.Requirement, error) {
	accepted := []string{"false", "true", `"some"`}

	m, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s.extra: expected a mapping of tag name to one of: %s",
			ErrInvalidConfig, KeyCheckAnnotations, strings.Join(accepted, ", "))
	}

	extra := make(map[string]tagschema.Requirement, len(m))

	for name, v := range m {
		key := KeyCheckAnnotations + ".extra." + name
		if name == "" {
			return nil, fmt.Errorf("%w: %s.extra: empty tag name", ErrInvalidConfig, KeyCheckAnnotations)
		}

		switch req := v.(type) {
		case bool:
			extra[name] = tagschema.NoValue
			if req {
				extra[name] = tagschema.AnyValue
			}

		case string:
			if req != "some" {
				return nil, invalidValue(key, req, accepted)
			}

			extra[name] = tagschema.RequiredValue

		default:
			return nil, invalidValue(key, v, accepted)
		}
	}

	return extra, nil
}

// acceptedFrom returns the accepted values from a failed oneof validation,
// or fallback when err carries none.
func acceptedFrom(err error, fallback []string) []string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Tag() == "oneof" {
		return strings.Fields(verrs[0].Param())
	}

	return fallback
}

func invalidValue(key string, value any, accepted []string) error {
	return fmt.Errorf("%w: %s: invalid value %s, accepted: %s",
		ErrInvalidConfig, key, formatValue(value), strings.Join(accepted, ", "))
}

func formatValue(value any) string {
	if s, ok := value.(string); ok {
		return fmt.Sprintf("%q", s)
	}

	return fmt.Sprintf("%v (%T)", value, value)
}

// Enabled reports whether the rule is enabled.
func (c *Config) Enabled(key string) bool {
	_, ok := c.modes[key]

	return ok
}

// Mode returns the rule's configured mode, or "" when disabled.
func (c *Config) Mode(key string) string {
	return c.modes[key]
}

// Keys returns the enabled rule keys in registry order.
func (c *Config) Keys() []string {
	var keys []string

	for _, key := range Keys() {
		if c.Enabled(key) {
			keys = append(keys, key)
		}
	}

	return keys
}

// Tags returns the tag schema used by checkAnnotations.
func (c *Config) Tags() *tagschema.Schema {
	return c.tags
}
