package postman

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Collection is a decoded Postman collection (v2.0 / v2.1).
type Collection struct {
	Info *Info
	// Items holds the top-level folders and requests in document order.
	// It is nil when the document has no "item" field.
	Items []Item
}

// UnmarshalJSON decodes a collection, classifying each item as a folder or
// a request.
func (c *Collection) UnmarshalJSON(data []byte) error {
	var raw struct {
		Info *Info    `json:"info"`
		Item itemList `json:"item"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.Info = raw.Info
	c.Items = raw.Item
	return nil
}

// Info is the collection metadata block.
type Info struct {
	// Name is nil when the collection has no name, which is distinct from an
	// empty name.
	Name        *string     `json:"name,omitempty"`
	Description Description `json:"description,omitempty"`
	// Schema is the collection format URL, e.g.
	// https://schema.getpostman.com/json/collection/v2.1.0/collection.json
	Schema string `json:"schema,omitempty"`
}

// SchemaVersion returns the collection format version named by Schema,
// e.g. "v2.1.0", or "" when it cannot be determined.
func (i *Info) SchemaVersion() string {
	if i == nil {
		return ""
	}
	for _, part := range strings.Split(i.Schema, "/") {
		if len(part) > 1 && part[0] == 'v' && part[1] >= '0' && part[1] <= '9' {
			return part
		}
	}
	return ""
}

// Item is either a *Folder or a *RequestItem.
type Item interface {
	// ItemName returns the item's name, or "" when it has none.
	ItemName() string
	isItem()
}

// Folder groups nested items. A folder always has at least one child.
type Folder struct {
	Name        string
	Description Description
	Items       []Item
}

// ItemName implements Item.
func (f *Folder) ItemName() string { return f.Name }
func (*Folder) isItem() {}

// RequestItem is a leaf item: a request plus its saved responses. Request is
// nil for items that carry neither a request nor children.
type RequestItem struct {
	Name      string
	Request   *Request
	Responses []*Response
}

// ItemName implements Item.
func (r *RequestItem) ItemName() string { return r.Name }
func (*RequestItem) isItem() {}

var (
	_ Item = (*Folder)(nil)
	_ Item = (*RequestItem)(nil)
)

// itemList decodes a JSON array of items into folders and request items.
type itemList []Item

func (l *itemList) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*l = nil
		return nil
	}

	var raw []struct {
		Name        string      `json:"name"`
		Description Description `json:"description"`
		Item        itemList    `json:"item"`
		Request     *Request    `json:"request"`
		Response    []*Response `json:"response"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	items := make([]Item, 0, len(raw))
	for _, r := range raw {
		if len(r.Item) > 0 {
			items = append(items, &Folder{
				Name:        r.Name,
				Description: r.Description,
				Items:       r.Item,
			})
			continue
		}
		items = append(items, &RequestItem{
			Name:      r.Name,
			Request:   r.Request,
			Responses: r.Response,
		})
	}
	*l = items
	return nil
}

// Request is a single HTTP request definition.
type Request struct {
	// Method as written in the collection. Use HTTPMethod for the
	// normalized form.
	Method      string      `json:"method,omitempty"`
	URL         *URL        `json:"url,omitempty"`
	Header      []Header    `json:"header,omitempty"`
	Body        *Body       `json:"body,omitempty"`
	Description Description `json:"description,omitempty"`
}

// HTTPMethod returns the lowercase method, "get" when none is set.
func (r *Request) HTTPMethod() string {
	if r.Method == "" {
		return "get"
	}
	return strings.ToLower(r.Method)
}

// Header is a request or response header entry.
type Header struct {
	Key string `json:"key"`
	// Value is nil when the entry has no value.
	Value       *string     `json:"value,omitempty"`
	Description Description `json:"description,omitempty"`
	Disabled    bool        `json:"disabled,omitempty"`
}

// QueryParam is a query string entry of a URL.
type QueryParam struct {
	Key         string      `json:"key"`
	Value       string      `json:"value,omitempty"`
	Description Description `json:"description,omitempty"`
	Disabled    bool        `json:"disabled,omitempty"`
}

// Variable is a path variable declaration of a URL.
type Variable struct {
	Key         string      `json:"key"`
	Value       string      `json:"value,omitempty"`
	Description Description `json:"description,omitempty"`
}

// Body is a request body. Only the "raw" mode carries a payload that the
// converter uses.
type Body struct {
	Mode string `json:"mode,omitempty"`
	// Raw is nil when the body has no raw payload.
	Raw *string `json:"raw,omitempty"`
}

// BodyModeRaw is the body mode whose payload is a literal string.
const BodyModeRaw = "raw"

// Response is a saved example response.
type Response struct {
	// Name is nil when the response is unnamed.
	Name *string `json:"name,omitempty"`
	// Code is the HTTP status code, nil when absent.
	Code   *int     `json:"code,omitempty"`
	Header []Header `json:"header,omitempty"`
	// Body is the raw response text, nil when absent.
	Body *string `json:"body,omitempty"`
}

// ContentType returns the value of the first header whose key matches
// Content-Type case-insensitively. ok is false when there is no such header
// or it has no value.
func ContentType(headers []Header) (value string, ok bool) {
	for _, h := range headers {
		if IsContentType(h.Key) {
			if h.Value == nil {
				return "", false
			}
			return *h.Value, true
		}
	}
	return "", false
}

// IsContentType reports whether key names the Content-Type header.
func IsContentType(key string) bool {
	return strings.EqualFold(key, "content-type")
}

// Description is free text that Postman stores either as a plain string or
// as an object {"content": "...", "type": "text/markdown"}.
type Description string

// UnmarshalJSON accepts both description forms.
func (d *Description) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*d = ""
		return nil
	}
	if data[0] == '{' {
		var obj struct {
			Content string `json:"content"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*d = Description(obj.Content)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*d = Description(s)
	return nil
}

// String returns the description text.
func (d Description) String() string { return string(d) }

// UnmarshalJSON accepts the full request object and the shorthand form in
// which the request is just its URL string.
func (r *Request) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var u URL
		if err := u.UnmarshalJSON(data); err != nil {
			return err
		}
		*r = Request{URL: &u}
		return nil
	}

	type plain Request
	var aux struct {
		plain
		Header json.RawMessage `json:"header"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	headers, err := decodeHeaders(aux.Header)
	if err != nil {
		return err
	}
	*r = Request(aux.plain)
	r.Header = headers
	return nil
}

// UnmarshalJSON decodes a saved response, tolerating a header field given
// as a string.
func (r *Response) UnmarshalJSON(data []byte) error {
	type plain Response
	var aux struct {
		plain
		Header json.RawMessage `json:"header"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	headers, err := decodeHeaders(aux.Header)
	if err != nil {
		return err
	}
	*r = Response(aux.plain)
	r.Header = headers
	return nil
}

// decodeHeaders decodes a header list. Postman also allows a single raw
// header string, which carries no structured entries and decodes to nil.
func decodeHeaders(data json.RawMessage) ([]Header, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return nil, nil
	}
	var headers []Header
	if err := json.Unmarshal(data, &headers); err != nil {
		return nil, err
	}
	return headers, nil
}
