// Package jsonvalue provides an order-preserving representation of JSON values.
//
// Decoding into map[string]any loses the key order of JSON objects, which is
// observable in generated documents (schema properties, examples). Value keeps
// object members in source order and numbers in their original text form.
package jsonvalue

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	// Null is the JSON null literal. The zero Value is Null.
	Null Kind = iota
	// Bool is true or false.
	Bool
	// Number is any JSON number, integer or float.
	Number
	// String is a JSON string.
	String
	// Array is an ordered list of values.
	Array
	// Object is an ordered list of members.
	Object
)

// String returns the lowercase JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// Member is a single key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// Value is an immutable JSON value. Use the constructor functions or Parse to
// build one.
type Value struct {
	kind    Kind
	boolean bool
	text    string // string contents, or the literal text of a number
	items   []Value
	members []Member
}

// NullValue returns the JSON null value.
func NullValue() Value { return Value{} }

// BoolValue returns a boolean value.
func BoolValue(b bool) Value { return Value{kind: Bool, boolean: b} }

// NumberValue returns a number value from its literal JSON text, e.g. "42" or "1.5e3".
// The text is emitted verbatim on marshaling.
func NumberValue(literal string) Value { return Value{kind: Number, text: literal} }

// StringValue returns a string value.
func StringValue(s string) Value { return Value{kind: String, text: s} }

// ArrayValue returns an array holding items in order.
func ArrayValue(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: Array, items: items}
}

// ObjectValue returns an object holding members in order. Members are used
// as given; callers are responsible for key uniqueness.
func ObjectValue(members ...Member) Value {
	if members == nil {
		members = []Member{}
	}
	return Value{kind: Object, members: members}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is JSON null.
func (v Value) IsNull() bool { return v.kind == Null }

// Bool returns the boolean held by v, or false for other kinds.
func (v Value) Bool() bool { return v.boolean }

// Text returns the contents of a string value or the literal of a number
// value. It returns "" for other kinds.
func (v Value) Text() string { return v.text }

// Items returns the elements of an array value, or nil for other kinds.
func (v Value) Items() []Value { return v.items }

// Members returns the members of an object value in source order, or nil for other kinds.
func (v Value) Members() []Member { return v.members }

// Len returns the number of elements of an array or members of an object.
func (v Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.items)
	case Object:
		return len(v.members)
	default:
		return 0
	}
}

// Get returns the value of the member named key.
func (v Value) Get(key string) (Value, bool) {
	for _, m := range v.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// MarshalJSON encodes v with object members in their stored order.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String returns the compact JSON encoding of v.
func (v Value) String() string {
	data, err := v.MarshalJSON()
	if err != nil {
		return ""
	}
	return string(data)
}

func (v Value) encode(buf *bytes.Buffer) error {
	switch v.kind {
	case Bool:
		if v.boolean {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case Number:
		buf.WriteString(v.text)
	case String:
		return writeString(buf, v.text)
	case Array:
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case Object:
		buf.WriteByte('{')
		for i, m := range v.members {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeString(buf, m.Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := m.Value.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		buf.WriteString("null")
	}
	return nil
}

// writeString writes s as a JSON string without HTML escaping, so example
// payloads containing <, > or & survive unchanged.
func writeString(buf *bytes.Buffer, s string) error {
	var sb strings.Builder
	enc := json.NewEncoder(&sb)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.WriteString(strings.TrimSuffix(sb.String(), "\n"))
	return nil
}
