package jsonvalue

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/buger/jsonparser"
)

// ErrInvalidJSON is returned (wrapped) by Parse when the input is not a
// single well-formed JSON value.
var ErrInvalidJSON = errors.New("invalid JSON")

// Parse decodes data into a Value, preserving object member order.
//
// Validation is strict: anything encoding/json would reject is rejected
// here too, including trailing garbage and empty input. Duplicate object
// keys keep the position of their first occurrence and the value of their
// last, matching what most JSON consumers observe.
func Parse(data []byte) (Value, error) {
	if !json.Valid(data) {
		// Re-run through the standard decoder only to obtain a useful message.
		var raw json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return Value{}, fmt.Errorf("jsonvalue: %w: %w", ErrInvalidJSON, err)
		}
		return Value{}, fmt.Errorf("jsonvalue: %w", ErrInvalidJSON)
	}

	raw, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return Value{}, fmt.Errorf("jsonvalue: %w: %w", ErrInvalidJSON, err)
	}
	return decode(raw, dataType)
}

// ParseString is a convenience wrapper around Parse.
func ParseString(s string) (Value, error) {
	return Parse([]byte(s))
}

func decode(raw []byte, dataType jsonparser.ValueType) (Value, error) {
	switch dataType {
	case jsonparser.Object:
		return decodeObject(raw)
	case jsonparser.Array:
		return decodeArray(raw)
	case jsonparser.String:
		s, err := jsonparser.ParseString(raw)
		if err != nil {
			return Value{}, fmt.Errorf("jsonvalue: decoding string: %w", err)
		}
		return StringValue(s), nil
	case jsonparser.Number:
		return NumberValue(string(raw)), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(raw)
		if err != nil {
			return Value{}, fmt.Errorf("jsonvalue: decoding boolean: %w", err)
		}
		return BoolValue(b), nil
	case jsonparser.Null:
		return NullValue(), nil
	default:
		return Value{}, fmt.Errorf("jsonvalue: %w: unexpected token %q", ErrInvalidJSON, raw)
	}
}

func decodeObject(raw []byte) (Value, error) {
	members := make([]Member, 0)
	var index map[string]int

	err := jsonparser.ObjectEach(raw, func(key, val []byte, dataType jsonparser.ValueType, _ int) error {
		// key is already unescaped and may alias an internal buffer.
		k := string(key)
		child, err := decode(val, dataType)
		if err != nil {
			return err
		}
		if index == nil {
			index = make(map[string]int)
		}
		if i, dup := index[k]; dup {
			members[i].Value = child
			return nil
		}
		index[k] = len(members)
		members = append(members, Member{Key: k, Value: child})
		return nil
	})
	if err != nil {
		return Value{}, err
	}
	return ObjectValue(members...), nil
}

func decodeArray(raw []byte) (Value, error) {
	items := make([]Value, 0)
	var firstErr error

	_, err := jsonparser.ArrayEach(raw, func(val []byte, dataType jsonparser.ValueType, _ int, cbErr error) {
		if firstErr != nil {
			return
		}
		if cbErr != nil {
			firstErr = cbErr
			return
		}
		child, err := decode(val, dataType)
		if err != nil {
			firstErr = err
			return
		}
		items = append(items, child)
	})
	if firstErr != nil {
		return Value{}, firstErr
	}
	if err != nil {
		return Value{}, fmt.Errorf("jsonvalue: decoding array: %w", err)
	}
	return ArrayValue(items...), nil
}
