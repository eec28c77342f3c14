package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/jsdoc/rules"
	"go.jacobcolvin.com/jsdoc/tagschema"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		config  map[string]any
		modes   map[string]string
		enabled []string
	}{
		"empty": {
			config: map[string]any{},
		},
		"booleans": {
			config: map[string]any{
				"checkParamNames":   true,
				"requireParamTypes": false,
				"checkTypes":        nil,
			},
			modes:   map[string]string{"checkParamNames": rules.ModeEnabled, "requireParamTypes": ""},
			enabled: []string{"checkParamNames"},
		},
		"modes": {
			config: map[string]any{
				"enforceExistence":        "exceptExports",
				"checkTypes":              "capitalizedNativeCase",
				"leadingUnderscoreAccess": "private",
				"checkAnnotations":        "jsduck5",
			},
			modes: map[string]string{
				"enforceExistence":        rules.ModeExceptExports,
				"checkTypes":              rules.ModeCapitalizedNativeCase,
				"leadingUnderscoreAccess": rules.ModePrivate,
				"checkAnnotations":        tagschema.PresetJSDuck5,
			},
			enabled: []string{"checkAnnotations", "checkTypes", "leadingUnderscoreAccess", "enforceExistence"},
		},
		"annotations object without preset": {
			config: map[string]any{
				"checkAnnotations": map[string]any{"extra": map[string]any{"boomer": "some"}},
			},
			modes:   map[string]string{"checkAnnotations": rules.ModeEnabled},
			enabled: []string{"checkAnnotations"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg, err := rules.Resolve(tc.config)
			require.NoError(t, err)

			for key, mode := range tc.modes {
				assert.Equal(t, mode, cfg.Mode(key), key)
			}

			assert.Equal(t, tc.enabled, cfg.Keys())
			assert.NotNil(t, cfg.Tags())
		})
	}
}

func TestResolveTags(t *testing.T) {
	t.Parallel()

	cfg, err := rules.Resolve(map[string]any{
		"checkAnnotations": map[string]any{
			"preset": "jsdoc3",
			"extra": map[string]any{
				"boomer": false,
				"pororo": true,
				"lalala": "some",
			},
		},
	})
	require.NoError(t, err)

	tags := cfg.Tags()
	assert.Equal(t, tagschema.PresetJSDoc3, tags.Preset())
	assert.True(t, tags.Allowed("boomer"))
	assert.False(t, tags.Allowed("chainable"))

	for name, want := range map[string]tagschema.Requirement{
		"boomer": tagschema.NoValue,
		"pororo": tagschema.AnyValue,
		"lalala": tagschema.RequiredValue,
	} {
		got, ok := tags.Requirement(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
}

func TestResolveErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		config   map[string]any
		contains []string
	}{
		"unknown rule": {
			config:   map[string]any{"checkEverything": true},
			contains: []string{`unknown rule "checkEverything"`, "checkAnnotations, checkParamNames"},
		},
		"unknown mode": {
			config: map[string]any{"checkTypes": "looseCase"},
			contains: []string{
				`checkTypes: invalid value "looseCase"`,
				"accepted: true, false, strictNativeCase, capitalizedNativeCase",
			},
		},
		"mode on boolean rule": {
			config:   map[string]any{"checkParamNames": "yes"},
			contains: []string{`checkParamNames: invalid value "yes", accepted: true, false`},
		},
		"wrong value type": {
			config:   map[string]any{"enforceExistence": 1},
			contains: []string{"enforceExistence: invalid value 1 (int)", "exceptExports"},
		},
		"unknown preset": {
			config: map[string]any{"checkAnnotations": "jsdoc4"},
			contains: []string{
				`checkAnnotations: invalid value "jsdoc4"`,
				"closurecompiler, jsdoc3, jsduck5",
			},
		},
		"unknown preset in object": {
			config: map[string]any{"checkAnnotations": map[string]any{"preset": "jsdoc4"}},
			contains: []string{
				`checkAnnotations.preset: invalid value "jsdoc4"`,
				"accepted: closurecompiler, jsdoc3, jsduck5",
			},
		},
		"preset of wrong type": {
			config:   map[string]any{"checkAnnotations": map[string]any{"preset": true}},
			contains: []string{"checkAnnotations.preset: invalid value true (bool)"},
		},
		"unknown field in object": {
			config:   map[string]any{"checkAnnotations": map[string]any{"presets": "jsdoc3"}},
			contains: []string{`unknown field "presets"`},
		},
		"malformed extra value": {
			config: map[string]any{"checkAnnotations": map[string]any{
				"extra": map[string]any{"boomer": "all"},
			}},
			contains: []string{`checkAnnotations.extra.boomer: invalid value "all"`, `accepted: false, true, "some"`},
		},
		"extra of wrong type": {
			config: map[string]any{"checkAnnotations": map[string]any{
				"extra": []any{"boomer"},
			}},
			contains: []string{"checkAnnotations.extra: expected a mapping"},
		},
		"conflicting newline rules": {
			config: map[string]any{
				"requireNewlineAfterDescription":  true,
				"disallowNewlineAfterDescription": true,
			},
			contains: []string{"mutually exclusive"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := rules.Resolve(tc.config)
			require.ErrorIs(t, err, rules.ErrInvalidConfig)

			for _, s := range tc.contains {
				assert.Contains(t, err.Error(), s)
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	reg := rules.Registry()
	require.Len(t, reg, len(rules.Keys()))

	seen := make(map[string]bool)

	for i, r := range reg {
		assert.Equal(t, rules.Keys()[i], r.Key)
		assert.False(t, seen[r.Key], "duplicate key %s", r.Key)
		assert.NotEmpty(t, r.Doc, r.Key)
		assert.NotNil(t, r.Check, r.Key)
		assert.Equal(t, []string{"true", "false"}, r.Values()[:2])

		seen[r.Key] = true

		got, ok := rules.Lookup(r.Key)
		assert.True(t, ok)
		assert.Equal(t, r.Key, got.Key)
	}

	_, ok := rules.Lookup("checkEverything")
	assert.False(t, ok)

	reg[0].Key = "changed"
	assert.Equal(t, rules.KeyCheckAnnotations, rules.Registry()[0].Key)
}
