package doccomment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/jsdoc/doccomment"
	"go.jacobcolvin.com/jsdoc/signature"
	"go.jacobcolvin.com/jsdoc/stringtest"
	"go.jacobcolvin.com/jsdoc/typeexpr"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		want  *doccomment.DocComment
		input string
	}{
		"empty comment": {
			input: "/** */",
			want:  &doccomment.DocComment{Pos: signature.Position{Line: 1, Column: 1}},
		},
		"empty string": {
			input: "",
			want:  &doccomment.DocComment{Pos: signature.Position{Line: 1, Column: 1}},
		},
		"description paragraphs": {
			input: stringtest.Comment(`
				First line
				continues here.

				Second paragraph.
			`),
			want: &doccomment.DocComment{
				Description: []string{"First line\ncontinues here.", "Second paragraph."},
				Pos:         signature.Position{Line: 1, Column: 1},
			},
		},
		"single line tag": {
			input: "/** @private */",
			want: &doccomment.DocComment{
				Tags: []doccomment.Tag{{
					Name:    "private",
					Keyword: "private",
					Raw:     "@private",
					Pos:     signature.Position{Line: 1, Column: 5},
				}},
				Pos: signature.Position{Line: 1, Column: 1},
			},
		},
		"param with type name and description": {
			input: stringtest.Comment(`
				Adds.

				@param {number} a - The first addend.
			`),
			want: &doccomment.DocComment{
				Description:         []string{"Adds."},
				BlankLineBeforeTags: true,
				Tags: []doccomment.Tag{{
					Name:        "param",
					Keyword:     "param",
					Type:        typeexpr.Native{Name: "number"},
					TypeText:    "number",
					ParamName:   "a",
					Description: "- The first addend.",
					Raw:         "@param {number} a - The first addend.",
					Pos:         signature.Position{Line: 4, Column: 4},
				}},
				Pos: signature.Position{Line: 1, Column: 1},
			},
		},
		"optional param with default": {
			input: "/**\n * @arg {string} [name=world] greeting target\n */",
			want: &doccomment.DocComment{
				Tags: []doccomment.Tag{{
					Name:        "param",
					Keyword:     "arg",
					Type:        typeexpr.Native{Name: "string"},
					TypeText:    "string",
					ParamName:   "name",
					Optional:    true,
					Default:     "world",
					Description: "greeting target",
					Raw:         "@arg {string} [name=world] greeting target",
					Pos:         signature.Position{Line: 2, Column: 4},
				}},
				Pos: signature.Position{Line: 1, Column: 1},
			},
		},
		"multi-line tag body": {
			input: stringtest.Comment(`
				Does things.
				@returns {string} the result,
				  possibly empty
			`),
			want: &doccomment.DocComment{
				Description: []string{"Does things."},
				Tags: []doccomment.Tag{{
					Name:        "returns",
					Keyword:     "returns",
					Type:        typeexpr.Native{Name: "string"},
					TypeText:    "string",
					Description: "the result,\n  possibly empty",
					Raw:         "@returns {string} the result,\n  possibly empty",
					Pos:         signature.Position{Line: 3, Column: 4},
				}},
				Pos: signature.Position{Line: 1, Column: 1},
			},
		},
		"unbalanced type block": {
			input: "/** @param {string name */",
			want: &doccomment.DocComment{
				Tags: []doccomment.Tag{{
					Name:     "param",
					Keyword:  "param",
					Type:     typeexpr.Unknown{Raw: "{string name"},
					TypeText: "string name",
					Raw:      "@param {string name",
					Pos:      signature.Position{Line: 1, Column: 5},
				}},
				Pos: signature.Position{Line: 1, Column: 1},
			},
		},
		"hyphen is not a name": {
			input: "/** @param - no name */",
			want: &doccomment.DocComment{
				Tags: []doccomment.Tag{{
					Name:        "param",
					Keyword:     "param",
					Description: "- no name",
					Raw:         "@param - no name",
					Pos:         signature.Position{Line: 1, Column: 5},
				}},
				Pos: signature.Position{Line: 1, Column: 1},
			},
		},
		"untyped tag keeps braces in description": {
			input: "/** @see {@link Foo} */",
			want: &doccomment.DocComment{
				Tags: []doccomment.Tag{{
					Name:        "see",
					Keyword:     "see",
					Description: "{@link Foo}",
					Raw:         "@see {@link Foo}",
					Pos:         signature.Position{Line: 1, Column: 5},
				}},
				Pos: signature.Position{Line: 1, Column: 1},
			},
		},
		"keyword is lower-cased": {
			input: "/** @Returns {Number} */",
			want: &doccomment.DocComment{
				Tags: []doccomment.Tag{{
					Name:     "returns",
					Keyword:  "returns",
					Type:     typeexpr.Native{Name: "Number"},
					TypeText: "Number",
					Raw:      "@Returns {Number}",
					Pos:      signature.Position{Line: 1, Column: 5},
				}},
				Pos: signature.Position{Line: 1, Column: 1},
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, doccomment.Parse(tc.input))
		})
	}
}

func TestParseRecordType(t *testing.T) {
	t.Parallel()

	doc := doccomment.Parse("/** @param {{a: string, b: number}} opts */")
	require.Len(t, doc.Tags, 1)

	tag := doc.Tags[0]
	assert.Equal(t, "opts", tag.ParamName)
	assert.Equal(t, typeexpr.Record{Fields: []typeexpr.Field{
		{Name: "a", Type: typeexpr.Native{Name: "string"}},
		{Name: "b", Type: typeexpr.Native{Name: "number"}},
	}}, tag.Type)
	assert.True(t, tag.HasType())
}

func TestParseWithOrigin(t *testing.T) {
	t.Parallel()

	input := "/**\n   * Text.\n   * @returns {boolean}\n   */"
	doc := doccomment.Parse(input, doccomment.WithOrigin(signature.Position{Line: 10, Column: 3}))

	assert.Equal(t, signature.Position{Line: 10, Column: 3}, doc.Pos)
	require.Len(t, doc.Tags, 1)
	assert.Equal(t, signature.Position{Line: 12, Column: 6}, doc.Tags[0].Pos)
}

func TestParseWithoutDelimiters(t *testing.T) {
	t.Parallel()

	doc := doccomment.Parse("Summary.\n@param {string} x")
	assert.Equal(t, []string{"Summary."}, doc.Description)
	require.Len(t, doc.Tags, 1)
	assert.Equal(t, "x", doc.Tags[0].ParamName)
	assert.False(t, doc.BlankLineBeforeTags)
}

func TestDocCommentHelpers(t *testing.T) {
	t.Parallel()

	doc := doccomment.Parse(stringtest.Comment(`
		Summary.

		More.

		@param {string} a
		@argument b - no type
		@return {*}
		@deprecated
	`))

	assert.False(t, doc.Empty())
	assert.Equal(t, "Summary.\n\nMore.", doc.Text())
	assert.Len(t, doc.Params(), 2)
	assert.True(t, doc.Has("returns", "return"))
	assert.True(t, doc.Has("arg"))
	assert.False(t, doc.Has("private"))

	params := doc.Params()
	assert.True(t, params[0].HasType())
	assert.False(t, params[1].HasType())
	assert.True(t, params[0].IsParam())
	assert.Equal(t, "{string} a", params[0].Value())
	assert.Equal(t, "b - no type", params[1].Value())

	ret := doc.Find("return")
	require.Len(t, ret, 1)
	assert.True(t, ret[0].IsReturn())

	var none *doccomment.DocComment
	assert.True(t, none.Empty())
	assert.Empty(t, none.Text())
	assert.Nil(t, none.Params())
	assert.True(t, doccomment.Parse("/**\n *\n */").Empty())
}

func TestParseCRLF(t *testing.T) {
	t.Parallel()

	lf := doccomment.Parse(stringtest.JoinLF(
		"/**",
		" * Summary.",
		" *",
		" * @param {string} x - The x.",
		" */",
	))
	crlf := doccomment.Parse(stringtest.JoinCRLF(
		"/**",
		" * Summary.",
		" *",
		" * @param {string} x - The x.",
		" */",
	))

	assert.Equal(t, lf, crlf)
	require.Len(t, crlf.Tags, 1)
	assert.Equal(t, "- The x.", crlf.Tags[0].Description)
}
