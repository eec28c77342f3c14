package rules_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/jsdoc/doccomment"
	"go.jacobcolvin.com/jsdoc/rules"
	"go.jacobcolvin.com/jsdoc/signature"
	"go.jacobcolvin.com/jsdoc/stringtest"
)

func TestWellFormedParams(t *testing.T) {
	t.Parallel()

	config := map[string]any{
		"checkParamNames":         true,
		"checkRedundantParams":    true,
		"requireParamTypes":       true,
		"requireParamDescription": true,
	}

	tcs := map[string][]string{
		"one":     {"a"},
		"several": {"first", "second", "third"},
		"typed":   {"options", "callback"},
		"none":    {},
	}

	types := []string{"string", "Array<number>", "?Object", "function(Error): void", "{a: string}"}

	for name, params := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var lines []string
			for i, p := range params {
				lines = append(lines, fmt.Sprintf("@param {%s} %s The %s.", types[i%len(types)], p, p))
			}

			body := "Does things."
			if len(lines) > 0 {
				body = strings.Join(lines, "\n")
			}

			assert.Empty(t, run(t, config, body, fn("method", params...)))
		})
	}
}

func TestRedundantParamReportsOnce(t *testing.T) {
	t.Parallel()

	got := run(t, map[string]any{"checkRedundantParams": true},
		"@param {string} a\n@param {string} ghost", fn("method", "a", "b"))
	assert.Equal(t, []string{`3:4: checkRedundantParams: found redundant param "ghost"`}, got)
}

func TestReturnTypesAgainstStringReturn(t *testing.T) {
	t.Parallel()

	config := map[string]any{"checkReturnTypes": true}

	tcs := map[string]struct {
		body string
		want int
	}{
		"number is narrower": {body: "@returns {Number}", want: 1},
		"string covers":      {body: "@returns {String}", want: 0},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			f := returning(fn("method"), signature.ReturnsAlways, signature.KindString)
			assert.Len(t, run(t, config, tc.body, f), tc.want)
		})
	}
}

func TestRedundantReturnNever(t *testing.T) {
	t.Parallel()

	got := run(t, map[string]any{"checkRedundantReturns": true}, "@returns {string}",
		returning(fn("f"), signature.ReturnsNever))
	assert.Len(t, got, 1)
}

func TestStrictNativeCaseCount(t *testing.T) {
	t.Parallel()

	config := map[string]any{"checkTypes": "strictNativeCase"}

	assert.Len(t, run(t, config, "@param {Number|Boolean|object|array} x", fn("m", "x")), 4)
	assert.Empty(t, run(t, config, "@param {number} x", fn("m", "x")))
}

func TestExceptExports(t *testing.T) {
	t.Parallel()

	config := map[string]any{"enforceExistence": "exceptExports"}

	exported := fn("handler")
	exported.Exported = true
	assert.Empty(t, run(t, config, "", exported))

	assert.Len(t, run(t, config, "", fn("handler")), 1)
}

func TestCompleteSentence(t *testing.T) {
	t.Parallel()

	config := map[string]any{"requireDescriptionCompleteSentence": true}

	tcs := map[string]struct {
		body string
		want int
	}{
		"sentence":        {body: "Description.", want: 0},
		"lower-case":      {body: "description starting with a lower case letter.", want: 1},
		"exclamation":     {body: "Description!", want: 1},
		"trailing spaces": {body: "Description.   ", want: 0},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Len(t, run(t, config, tc.body, fn("m")), tc.want)
		})
	}
}

func TestCheckIsIdempotent(t *testing.T) {
	t.Parallel()

	raw := map[string]any{}
	for _, key := range rules.Keys() {
		if key != rules.KeyDisallowNewlineAfterDescription {
			raw[key] = true
		}
	}

	cfg, err := rules.Resolve(raw)
	require.NoError(t, err)

	engine := rules.NewEngine(cfg)
	assert.Len(t, engine.Rules(), len(rules.Keys())-1)

	doc := doccomment.Parse(stringtest.Comment(`
		adds numbers
		@param {Number|object} a
		@param b
		@argument {string} ghost - extra
		@private
		@access private
		@returns {some~number}
		@pororo
	`))
	f := returning(fn("_add", "a", "b"), signature.ReturnsSometimes, signature.KindNumber)

	first := engine.Check(doc, f)
	second := engine.Check(doc, f)

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}
