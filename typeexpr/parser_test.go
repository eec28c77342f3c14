package typeexpr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/jsdoc/typeexpr"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		want  typeexpr.Expr
		input string
	}{
		"native": {
			input: "string",
			want:  typeexpr.Native{Name: "string"},
		},
		"capitalized native": {
			input: "Number",
			want:  typeexpr.Native{Name: "Number"},
		},
		"odd casing is a reference": {
			input: "NUMBER",
			want:  typeexpr.Reference{Name: "NUMBER"},
		},
		"reference": {
			input: "Object",
			want:  typeexpr.Reference{Name: "Object"},
		},
		"dotted reference": {
			input: "ns.Foo.Bar",
			want:  typeexpr.Reference{Name: "ns.Foo.Bar"},
		},
		"module path reference": {
			input: "module:foo/bar",
			want:  typeexpr.Reference{Name: "module:foo/bar"},
		},
		"any": {
			input: "*",
			want:  typeexpr.Reference{Name: "*"},
		},
		"unknown marker": {
			input: "?",
			want:  typeexpr.Reference{Name: "?"},
		},
		"array generic": {
			input: "Array<string>",
			want: typeexpr.ArrayOf{
				Elem:     typeexpr.Native{Name: "string"},
				Spelling: "Array",
			},
		},
		"array generic with dot": {
			input: "Array.<string>",
			want: typeexpr.ArrayOf{
				Elem:     typeexpr.Native{Name: "string"},
				Spelling: "Array",
			},
		},
		"array brackets": {
			input: "number[]",
			want: typeexpr.ArrayOf{
				Elem:     typeexpr.Native{Name: "number"},
				Spelling: typeexpr.SpellingBrackets,
			},
		},
		"nested array brackets": {
			input: "number[][]",
			want: typeexpr.ArrayOf{
				Elem: typeexpr.ArrayOf{
					Elem:     typeexpr.Native{Name: "number"},
					Spelling: typeexpr.SpellingBrackets,
				},
				Spelling: typeexpr.SpellingBrackets,
			},
		},
		"rest": {
			input: "...number",
			want: typeexpr.ArrayOf{
				Elem:     typeexpr.Native{Name: "number"},
				Spelling: typeexpr.SpellingRest,
			},
		},
		"nullable": {
			input: "?Object",
			want:  typeexpr.Nullable{Inner: typeexpr.Reference{Name: "Object"}},
		},
		"non-nullable": {
			input: "!Object",
			want:  typeexpr.NonNullable{Inner: typeexpr.Reference{Name: "Object"}},
		},
		"optional": {
			input: "string=",
			want:  typeexpr.Optional{Inner: typeexpr.Native{Name: "string"}},
		},
		"union keeps order": {
			input: "string|number|null",
			want: typeexpr.Union{Members: []typeexpr.Expr{
				typeexpr.Native{Name: "string"},
				typeexpr.Native{Name: "number"},
				typeexpr.Native{Name: "null"},
			}},
		},
		"parenthesized optional union": {
			input: "(string|number)=",
			want: typeexpr.Optional{Inner: typeexpr.Union{Members: []typeexpr.Expr{
				typeexpr.Native{Name: "string"},
				typeexpr.Native{Name: "number"},
			}}},
		},
		"generic": {
			input: "Object<string, number>",
			want: typeexpr.Generic{
				Base: "Object",
				Params: []typeexpr.Expr{
					typeexpr.Native{Name: "string"},
					typeexpr.Native{Name: "number"},
				},
			},
		},
		"function": {
			input: "function(a: Number): Boolean",
			want: typeexpr.FunctionType{
				Params: []typeexpr.FuncParam{
					{Name: "a", Type: typeexpr.Native{Name: "Number"}},
				},
				Returns: typeexpr.Native{Name: "Boolean"},
			},
		},
		"function with this and bare params": {
			input: "function(this:Foo, string, ...number)",
			want: typeexpr.FunctionType{
				Params: []typeexpr.FuncParam{
					{Name: "this", Type: typeexpr.Reference{Name: "Foo"}},
					{Type: typeexpr.Native{Name: "string"}},
					{Type: typeexpr.ArrayOf{
						Elem:     typeexpr.Native{Name: "number"},
						Spelling: typeexpr.SpellingRest,
					}},
				},
			},
		},
		"empty function": {
			input: "function()",
			want:  typeexpr.FunctionType{},
		},
		"record": {
			input: "{a: string, b: number}",
			want: typeexpr.Record{Fields: []typeexpr.Field{
				{Name: "a", Type: typeexpr.Native{Name: "string"}},
				{Name: "b", Type: typeexpr.Native{Name: "number"}},
			}},
		},
		"empty record": {
			input: "{}",
			want:  typeexpr.Record{},
		},
		"tag block wrapper": {
			input: "{Array<string>|null}",
			want: typeexpr.Union{Members: []typeexpr.Expr{
				typeexpr.ArrayOf{Elem: typeexpr.Native{Name: "string"}, Spelling: "Array"},
				typeexpr.Native{Name: "null"},
			}},
		},
		"tag block wrapping a record": {
			input: "{{a: string}}",
			want: typeexpr.Record{Fields: []typeexpr.Field{
				{Name: "a", Type: typeexpr.Native{Name: "string"}},
			}},
		},
		"surrounding whitespace": {
			input: "  string  ",
			want:  typeexpr.Native{Name: "string"},
		},
		"trailing garbage": {
			input: "some~number",
			want:  typeexpr.Unknown{Raw: "some~number"},
		},
		"unclosed generic": {
			input: "Array<string",
			want:  typeexpr.Unknown{Raw: "Array<string"},
		},
		"duplicate record field": {
			input: "{a: string, a: number}",
			want:  typeexpr.Unknown{Raw: "{a: string, a: number}"},
		},
		"empty": {
			input: "",
			want:  typeexpr.Unknown{Raw: ""},
		},
		"dangling union": {
			input: "string|",
			want:  typeexpr.Unknown{Raw: "string|"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, typeexpr.Parse(tc.input))
		})
	}
}

func TestParseDeepNesting(t *testing.T) {
	t.Parallel()

	input := ""
	for range 200 {
		input += "Array<"
	}

	input += "string"

	for range 200 {
		input += ">"
	}

	got := typeexpr.Parse(input)
	assert.True(t, typeexpr.IsUnknown(got))
}

func TestStringRoundTrip(t *testing.T) {
	t.Parallel()

	tcs := map[string]string{
		"native":         "string",
		"union":          "string|number",
		"nullable union": "?(string|number)",
		"optional union": "(string|number)=",
		"array brackets": "number[]",
		"array generic":  "Array.<string>",
		"generic":        "Object<string, Array<number>>",
		"function":       "function(this: Foo, string): boolean",
		"record":         "{a: string, b: {c: number[]}}",
		"rest":           "...number",
		"any":            "*",
	}

	for name, input := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			first := typeexpr.Parse(input)
			assert.False(t, typeexpr.IsUnknown(first), "parse %q", input)

			second := typeexpr.Parse(typeexpr.String(first))
			assert.Equal(t, first, second)
		})
	}
}

func TestWalk(t *testing.T) {
	t.Parallel()

	e := typeexpr.Parse("Object<string, function(a: number): Array<boolean>>|{x: Date}")

	var leaves []string

	typeexpr.Walk(e, func(n typeexpr.Expr) bool {
		switch v := n.(type) {
		case typeexpr.Native:
			leaves = append(leaves, v.Name)
		case typeexpr.Reference:
			leaves = append(leaves, v.Name)
		}

		return true
	})

	assert.Equal(t, []string{"string", "number", "boolean", "Date"}, leaves)
}

func TestMatchBrace(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  int
	}{
		"simple":        {input: "{string} name", want: 7},
		"nested":        {input: "{{a: b}} x", want: 7},
		"unbalanced":    {input: "{string name", want: -1},
		"no open brace": {input: "string}", want: -1},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, typeexpr.MatchBrace(tc.input))
		})
	}
}
