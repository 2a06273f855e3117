// Package infer derives structural OpenAPI schemas from example JSON values.
//
// Inference is total: every value maps to a schema and nothing ever fails.
// Objects become object schemas whose properties follow the source key order,
// arrays are typed by their first element, and null falls back to string.
//
//	v, _ := jsonvalue.ParseString(`{"id": 1, "tags": ["a"], "note": null}`)
//	schema := infer.Schema(v)
//	// type: object
//	// properties: id (number), tags (array of string), note (string)
//	// required: [id, tags]
package infer

import (
	"github.com/erraggy/postman2oas/jsonvalue"
	"github.com/erraggy/postman2oas/openapi"
)

// Schema returns the schema inferred from v.
//
// A key is required iff its value is not null; when no key qualifies the
// required list is left nil so it is omitted on output. An empty array gets a
// bare object schema as its items.
func Schema(v jsonvalue.Value) *openapi.Schema {
	switch v.Kind() {
	case jsonvalue.Object:
		return objectSchema(v)
	case jsonvalue.Array:
		items := v.Items()
		if len(items) == 0 {
			return &openapi.Schema{
				Type:  openapi.TypeArray,
				Items: &openapi.Schema{Type: openapi.TypeObject},
			}
		}
		return &openapi.Schema{
			Type:  openapi.TypeArray,
			Items: Schema(items[0]),
		}
	case jsonvalue.Bool:
		return &openapi.Schema{Type: openapi.TypeBoolean}
	case jsonvalue.Number:
		return &openapi.Schema{Type: openapi.TypeNumber}
	default:
		return openapi.StringSchema()
	}
}

func objectSchema(v jsonvalue.Value) *openapi.Schema {
	props := openapi.NewProperties()
	var required []string
	for _, m := range v.Members() {
		props.Set(m.Key, Schema(m.Value))
		if !m.Value.IsNull() {
			required = append(required, m.Key)
		}
	}
	return &openapi.Schema{
		Type:       openapi.TypeObject,
		Properties: props,
		Required:   required,
	}
}

// FromJSON parses raw and infers its schema. The parsed value is returned as
// well so callers can reuse it as an example.
func FromJSON(raw []byte) (*openapi.Schema, jsonvalue.Value, error) {
	v, err := jsonvalue.Parse(raw)
	if err != nil {
		return nil, jsonvalue.Value{}, err
	}
	return Schema(v), v, nil
}
