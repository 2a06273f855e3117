package postman

import (
	"bytes"
	"encoding/json"
	"strings"
)

// URL is a request URL. Postman stores it either as a plain string or as a
// structured object; both decode into this type.
type URL struct {
	// Raw is the URL as typed by the user, e.g. "{{baseUrl}}/users/:id".
	Raw      string        `json:"raw,omitempty"`
	Path     []PathSegment `json:"path,omitempty"`
	Variable []Variable    `json:"variable,omitempty"`
	Query    []QueryParam  `json:"query,omitempty"`
}

// UnmarshalJSON accepts the string and object forms. For the string form,
// and for objects without a "path", the path segments are taken from the raw
// URL with the scheme and host removed.
func (u *URL) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*u = URL{Raw: raw, Path: SplitRawPath(raw)}
		return nil
	}

	var obj struct {
		Raw      string          `json:"raw"`
		Path     json.RawMessage `json:"path"`
		Variable []Variable      `json:"variable"`
		Query    []QueryParam    `json:"query"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*u = URL{Raw: obj.Raw, Variable: obj.Variable, Query: obj.Query}

	path := bytes.TrimSpace(obj.Path)
	switch {
	case len(path) == 0 || bytes.Equal(path, []byte("null")):
		if obj.Raw != "" {
			u.Path = SplitRawPath(obj.Raw)
		}
	case path[0] == '"':
		var s string
		if err := json.Unmarshal(path, &s); err != nil {
			return err
		}
		u.Path = splitSegments(strings.Trim(s, "/"))
	default:
		if err := json.Unmarshal(path, &u.Path); err != nil {
			return err
		}
	}
	return nil
}

// SegmentKind tells how a path segment was written.
type SegmentKind int

const (
	// SegmentIgnored is any JSON value that is neither a string nor an
	// object with a string "value"; it contributes nothing to the path.
	SegmentIgnored SegmentKind = iota
	// SegmentString is a plain string, possibly starting with ':'.
	SegmentString
	// SegmentVariable is an object segment such as {"type": "string", "value": "id"}.
	SegmentVariable
)

// PathSegment is one element of URL.Path.
type PathSegment struct {
	Kind SegmentKind
	// Text is the string itself, or the "value" of a variable segment.
	Text string
}

// UnmarshalJSON classifies the segment by its JSON shape.
func (s *PathSegment) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*s = PathSegment{}
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*s = PathSegment{Kind: SegmentString, Text: text}
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		var value string
		if raw, ok := obj["value"]; ok && json.Unmarshal(raw, &value) == nil {
			*s = PathSegment{Kind: SegmentVariable, Text: value}
		}
	}
	return nil
}

// MarshalJSON writes string segments as strings and variable segments as
// {"value": ...}. Ignored segments become null.
func (s PathSegment) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case SegmentString:
		return json.Marshal(s.Text)
	case SegmentVariable:
		return json.Marshal(map[string]string{"value": s.Text})
	default:
		return []byte("null"), nil
	}
}

// SplitRawPath extracts the path segments of a raw Postman URL such as
// "https://api.example.com/users/:id?verbose=1" or "{{baseUrl}}/users/:id".
// Everything before the first '/' after the scheme is treated as the host,
// as Postman does; a raw URL starting with '/' has no host.
func SplitRawPath(raw string) []PathSegment {
	s := raw
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
	}
	if !strings.HasPrefix(s, "/") {
		i := strings.IndexByte(s, '/')
		if i < 0 {
			return []PathSegment{}
		}
		s = s[i:]
	}
	return splitSegments(strings.Trim(s, "/"))
}

func splitSegments(path string) []PathSegment {
	if path == "" {
		return []PathSegment{}
	}
	parts := strings.Split(path, "/")
	segments := make([]PathSegment, 0, len(parts))
	for _, p := range parts {
		segments = append(segments, PathSegment{Kind: SegmentString, Text: p})
	}
	return segments
}
