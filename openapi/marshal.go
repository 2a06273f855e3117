package openapi

import (
	"bytes"
	"encoding/json"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/postman2oas/oaserrors"
)

// MarshalOrderedJSON encodes the document as compact JSON. Map keys appear in
// insertion order.
func (d *Document) MarshalOrderedJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d); err != nil {
		return nil, &oaserrors.ParseError{Message: "serializing output", Cause: err}
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// MarshalOrderedJSONIndent is like MarshalOrderedJSON but applies indentation.
func (d *Document) MarshalOrderedJSONIndent(prefix, indent string) ([]byte, error) {
	data, err := d.MarshalOrderedJSON()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, prefix, indent); err != nil {
		return nil, &oaserrors.ParseError{Message: "serializing output", Cause: err}
	}
	return buf.Bytes(), nil
}

// MarshalOrderedYAML encodes the document as block-style YAML with map keys in
// insertion order.
//
// The ordered JSON encoding is decoded into a yaml.Node tree, which keeps key
// order, and then re-emitted. The encoder quotes strings that a YAML 1.2
// reader would resolve to another type (e.g. the status code "200");
// toBlockStyle additionally quotes YAML 1.1 booleans and nulls such as "yes"
// and "off".
func (d *Document) MarshalOrderedYAML() ([]byte, error) {
	data, err := d.MarshalOrderedJSON()
	if err != nil {
		return nil, err
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, &oaserrors.ParseError{Message: "serializing output", Cause: err}
	}
	toBlockStyle(&node)

	out, err := yaml.Marshal(&node)
	if err != nil {
		return nil, &oaserrors.ParseError{Message: "serializing output", Cause: err}
	}
	return out, nil
}

// yaml11Literals are the plain scalars that YAML 1.1 resolves to a boolean
// or null. The YAML 1.2 core schema reads most of them as strings.
var yaml11Literals = map[string]struct{}{
	"y": {}, "Y": {}, "yes": {}, "Yes": {}, "YES": {},
	"n": {}, "N": {}, "no": {}, "No": {}, "NO": {},
	"true": {}, "True": {}, "TRUE": {},
	"false": {}, "False": {}, "FALSE": {},
	"on": {}, "On": {}, "ON": {},
	"off": {}, "Off": {}, "OFF": {},
	"null": {}, "Null": {}, "NULL": {}, "~": {},
}

// toBlockStyle clears the flow and quoting styles that the JSON source
// imposed on every node. Strings that a YAML 1.1 reader would take for a
// boolean or null stay double-quoted.
func toBlockStyle(node *yaml.Node) {
	if node == nil {
		return
	}
	node.Style = 0
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!str" {
		if _, ok := yaml11Literals[node.Value]; ok {
			node.Style = yaml.DoubleQuotedStyle
		}
	}
	for _, child := range node.Content {
		toBlockStyle(child)
	}
}

// Format is an output serialization format.
type Format string

const (
	// FormatYAML is block-style YAML, the default output format.
	FormatYAML Format = "yaml"
	// FormatJSON is JSON indented by two spaces.
	FormatJSON Format = "json"
)

// ParseFormat validates a format name. The empty string selects YAML and
// "yml" is accepted as an alias.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", &oaserrors.ConfigError{
			Option:  "format",
			Value:   name,
			Message: "must be yaml or json",
		}
	}
}

// Extension returns the file extension for f, including the dot.
func (f Format) Extension() string {
	if f == FormatJSON {
		return ".json"
	}
	return ".yaml"
}

// MarshalFormat encodes the document in the given format. JSON output is
// indented and, like YAML output, ends with a newline.
func (d *Document) MarshalFormat(f Format) ([]byte, error) {
	if f == FormatJSON {
		data, err := d.MarshalOrderedJSONIndent("", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
	return d.MarshalOrderedYAML()
}
