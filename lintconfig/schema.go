package lintconfig

import (
	"fmt"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"

	"go.jacobcolvin.com/jsdoc/rules"
	"go.jacobcolvin.com/jsdoc/tagschema"
)

// SchemaID is the $id of the configuration schema.
const SchemaID = "https://jacobcolvin.com/jsdoc/config.schema.json"

var resolvedSchema = sync.OnceValues(func() (*jsonschema.Resolved, error) {
	resolved, err := Schema().Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("resolve config schema: %w", err)
	}

	return resolved, nil
})

// Schema returns the JSON Schema of the rule settings mapping.
func Schema() *jsonschema.Schema {
	props := make(map[string]*jsonschema.Schema)

	for _, r := range rules.Registry() {
		s := &jsonschema.Schema{
			Description: r.Doc,
			Types:       []string{"boolean", "null"},
		}

		if len(r.Modes) > 0 {
			s.Types = nil
			s.AnyOf = []*jsonschema.Schema{
				{Types: []string{"boolean", "null"}},
				{Type: "string", Enum: enum(r.Modes...)},
			}
		}

		if r.Key == rules.KeyCheckAnnotations {
			s.AnyOf = append(s.AnyOf, annotationsSchema())
		}

		props[r.Key] = s
	}

	return &jsonschema.Schema{
		Schema:               "https://json-schema.org/draft/2020-12/schema",
		ID:                   SchemaID,
		Title:                "jsdoclint configuration",
		Type:                 "object",
		Properties:           props,
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}
}

func annotationsSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"preset": {
				Description: "Tag preset; the union of all presets when unset.",
				Type:        "string",
				Enum:        enum(tagschema.Presets()...),
			},
			"extra": {
				Description: `Additional tags: false allows no value, true any value, "some" requires a value.`,
				Type:        "object",
				AdditionalProperties: &jsonschema.Schema{
					AnyOf: []*jsonschema.Schema{
						{Type: "boolean"},
						{Type: "string", Enum: enum("some")},
					},
				},
			},
		},
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}
}

func enum(values ...string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}

	return out
}
