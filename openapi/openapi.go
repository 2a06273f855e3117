package openapi

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/erraggy/postman2oas/jsonvalue"
)

// Version is the OpenAPI version written to every generated document.
const Version = "3.0.0"

// Schema types produced by inference.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeObject  = "object"
	TypeArray   = "array"
)

// Parameter locations.
const (
	InPath   = "path"
	InQuery  = "query"
	InHeader = "header"
)

// MediaTypeJSON is the content type assumed when a request or response does
// not declare one.
const MediaTypeJSON = "application/json"

// PathItem maps a lowercase HTTP method to its operation.
type PathItem = orderedmap.OrderedMap[string, *Operation]

// Paths maps a path template (always starting with "/") to its methods.
type Paths = orderedmap.OrderedMap[string, *PathItem]

// Responses maps a status code string (e.g. "200") to a response.
type Responses = orderedmap.OrderedMap[string, *Response]

// Content maps a MIME type to its media type object.
type Content = orderedmap.OrderedMap[string, *MediaType]

// Examples maps an example name to a named example.
type Examples = orderedmap.OrderedMap[string, *Example]

// Properties maps an object property name to its schema.
type Properties = orderedmap.OrderedMap[string, *Schema]

// Document is the root of an OpenAPI 3.0 specification.
type Document struct {
	OpenAPI    string     `json:"openapi"`
	Info       Info       `json:"info"`
	Paths      *Paths     `json:"paths"`
	Components Components `json:"components"`
	Tags       []Tag      `json:"tags"`
}

// Info holds document metadata.
type Info struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Version     string `json:"version"`
}

// Components is always emitted with an empty schemas map; inline schemas are
// never hoisted into components.
type Components struct {
	Schemas *Properties `json:"schemas"`
}

// Tag is a top-level tag declaration.
type Tag struct {
	Name string `json:"name"`
}

// Operation describes a single method on a path.
type Operation struct {
	Summary     string       `json:"summary"`
	Description string       `json:"description"`
	Parameters  []*Parameter `json:"parameters"`
	RequestBody *RequestBody `json:"requestBody,omitempty"`
	Responses   *Responses   `json:"responses"`
	Tags        []string     `json:"tags"`
}

// Parameter describes a path, query or header parameter.
type Parameter struct {
	Name        string  `json:"name"`
	In          string  `json:"in"`
	Schema      *Schema `json:"schema"`
	Description string  `json:"description,omitempty"`
	Required    *bool   `json:"required,omitempty"`
}

// Schema is the structural schema produced by inference. Properties and
// Required are only set on object schemas, Items only on array schemas.
type Schema struct {
	Type       string      `json:"type"`
	Properties *Properties `json:"properties,omitempty"`
	Required   []string    `json:"required,omitempty"`
	Items      *Schema     `json:"items,omitempty"`
}

// RequestBody describes an operation's request payload.
type RequestBody struct {
	Content  *Content `json:"content"`
	Required bool     `json:"required"`
}

// Response describes one status code of an operation.
type Response struct {
	Description string   `json:"description"`
	Content     *Content `json:"content"`
}

// MediaType carries a schema and either a single inline Example or a set of
// named Examples.
type MediaType struct {
	Schema   *Schema          `json:"schema"`
	Example  *jsonvalue.Value `json:"example,omitempty"`
	Examples *Examples        `json:"examples,omitempty"`
}

// Example is a named example value.
type Example struct {
	Value   jsonvalue.Value `json:"value"`
	Summary string          `json:"summary"`
}

// NewDocument returns an empty document with the fixed version fields set.
func NewDocument(title, description string) *Document {
	return &Document{
		OpenAPI: Version,
		Info: Info{
			Title:       title,
			Description: description,
			Version:     "1.0.0",
		},
		Paths:      orderedmap.New[string, *PathItem](),
		Components: Components{Schemas: NewProperties()},
		Tags:       []Tag{},
	}
}

// NewPathItem returns an empty method map.
func NewPathItem() *PathItem { return orderedmap.New[string, *Operation]() }

// NewResponses returns an empty status code map.
func NewResponses() *Responses { return orderedmap.New[string, *Response]() }

// NewContent returns an empty MIME type map.
func NewContent() *Content { return orderedmap.New[string, *MediaType]() }

// NewExamples returns an empty example map.
func NewExamples() *Examples { return orderedmap.New[string, *Example]() }

// NewProperties returns an empty property map.
func NewProperties() *Properties { return orderedmap.New[string, *Schema]() }

// StringSchema returns a schema of type string.
func StringSchema() *Schema { return &Schema{Type: TypeString} }

// Bool returns a pointer to b, for optional boolean fields.
func Bool(b bool) *bool { return &b }

// PathItem returns the method map for path, creating it if needed.
func (d *Document) PathItem(path string) *PathItem {
	if item, ok := d.Paths.Get(path); ok {
		return item
	}
	item := NewPathItem()
	d.Paths.Set(path, item)
	return item
}

// Operation returns the operation registered for path and method.
func (d *Document) Operation(path, method string) (*Operation, bool) {
	item, ok := d.Paths.Get(path)
	if !ok {
		return nil, false
	}
	return item.Get(method)
}

// OperationCount returns the number of operations across all paths.
func (d *Document) OperationCount() int {
	n := 0
	for pair := d.Paths.Oldest(); pair != nil; pair = pair.Next() {
		n += pair.Value.Len()
	}
	return n
}

// PathKeys returns the path templates in insertion order.
func (d *Document) PathKeys() []string {
	keys := make([]string, 0, d.Paths.Len())
	for pair := d.Paths.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// TagNames returns the names of the top-level tags in order.
func (d *Document) TagNames() []string {
	names := make([]string, 0, len(d.Tags))
	for _, t := range d.Tags {
		names = append(names, t.Name)
	}
	return names
}
