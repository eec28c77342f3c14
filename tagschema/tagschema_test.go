package tagschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/jsdoc/tagschema"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		extra   map[string]tagschema.Requirement
		allowed map[string]bool
		preset  string
	}{
		"union of presets": {
			preset: "",
			allowed: map[string]bool{
				"param":     true,
				"chainable": true,
				"struct":    true,
				"borrows":   true,
				"pororo":    false,
			},
		},
		"closure compiler": {
			preset: tagschema.PresetClosureCompiler,
			allowed: map[string]bool{
				"param":     true,
				"suppress":  true,
				"chainable": false,
				"argument":  false,
			},
		},
		"jsdoc3": {
			preset: tagschema.PresetJSDoc3,
			allowed: map[string]bool{
				"argument": true,
				"borrows":  true,
				"struct":   false,
				"boomer":   false,
			},
		},
		"jsduck5 is case insensitive": {
			preset: tagschema.PresetJSDuck5,
			allowed: map[string]bool{
				"Chainable": true,
				"CFG":       true,
				"typedef":   false,
			},
		},
		"extra tags": {
			preset: tagschema.PresetJSDoc3,
			extra:  map[string]tagschema.Requirement{"Boomer": tagschema.NoValue},
			allowed: map[string]bool{
				"boomer":        true,
				"still-invalid": false,
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s, err := tagschema.New(tc.preset, tc.extra)
			require.NoError(t, err)
			assert.Equal(t, tc.preset, s.Preset())

			for tag, want := range tc.allowed {
				assert.Equal(t, want, s.Allowed(tag), "tag %q", tag)
			}
		})
	}
}

func TestNewUnknownPreset(t *testing.T) {
	t.Parallel()

	_, err := tagschema.New("jsdoc4", nil)
	require.ErrorIs(t, err, tagschema.ErrUnknownPreset)
	assert.Contains(t, err.Error(), `"jsdoc4"`)
	assert.Contains(t, err.Error(), "closurecompiler, jsdoc3, jsduck5")
}

func TestRequirements(t *testing.T) {
	t.Parallel()

	s, err := tagschema.New("", map[string]tagschema.Requirement{
		"see":    tagschema.AnyValue,
		"boomer": tagschema.RequiredValue,
	})
	require.NoError(t, err)

	tcs := map[string]struct {
		tag   string
		want  tagschema.Requirement
		found bool
	}{
		"builtin flag":          {tag: "abstract", want: tagschema.NoValue, found: true},
		"builtin required":      {tag: "param", want: tagschema.RequiredValue, found: true},
		"extra overrides":       {tag: "see", want: tagschema.AnyValue, found: true},
		"extra adds":            {tag: "boomer", want: tagschema.RequiredValue, found: true},
		"no requirement":        {tag: "returns", found: false},
		"not allowed, no entry": {tag: "pororo", found: false},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, ok := s.Requirement(tc.tag)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRequirementSatisfied(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		req   tagschema.Requirement
		value string
		want  bool
	}{
		"no value, empty":        {req: tagschema.NoValue, value: "", want: true},
		"no value, blank":        {req: tagschema.NoValue, value: "  ", want: true},
		"no value, given":        {req: tagschema.NoValue, value: "x", want: false},
		"any value, empty":       {req: tagschema.AnyValue, value: "", want: true},
		"any value, given":       {req: tagschema.AnyValue, value: "x", want: true},
		"required value, empty":  {req: tagschema.RequiredValue, value: "", want: false},
		"required value, given":  {req: tagschema.RequiredValue, value: "x", want: true},
		"required value, spaces": {req: tagschema.RequiredValue, value: "\n ", want: false},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.req.Satisfied(tc.value))
		})
	}
}

func TestTagTables(t *testing.T) {
	t.Parallel()

	assert.True(t, tagschema.CarriesType("param"))
	assert.True(t, tagschema.CarriesType("Returns"))
	assert.False(t, tagschema.CarriesType("access"))
	assert.False(t, tagschema.CarriesType("see"))

	assert.True(t, tagschema.ParamFamily("arg"))
	assert.True(t, tagschema.ParamFamily("ARGUMENT"))
	assert.False(t, tagschema.ParamFamily("property"))

	assert.Equal(t, "param", tagschema.Canonical("Argument"))
	assert.Equal(t, "returns", tagschema.Canonical("returns"))

	s, err := tagschema.New(tagschema.PresetJSDuck5, nil)
	require.NoError(t, err)
	assert.Contains(t, s.Names(), "chainable")
	assert.IsIncreasing(t, s.Names())
}
