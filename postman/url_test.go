package postman

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_ObjectForm(t *testing.T) {
	var u URL
	require.NoError(t, json.Unmarshal([]byte(`{
		"raw": "{{baseUrl}}/users/:id?verbose=1",
		"path": ["users", ":id", {"type": "string", "value": "section"}, 7, {"key": "nope"}],
		"variable": [{"key": "id", "value": "42", "description": "user id"}],
		"query": [{"key": "verbose", "value": "1", "disabled": true}]
	}`), &u))

	assert.Equal(t, []PathSegment{
		{Kind: SegmentString, Text: "users"},
		{Kind: SegmentString, Text: ":id"},
		{Kind: SegmentVariable, Text: "section"},
		{Kind: SegmentIgnored},
		{Kind: SegmentIgnored},
	}, u.Path)
	require.Len(t, u.Variable, 1)
	assert.Equal(t, "id", u.Variable[0].Key)
	assert.Equal(t, Description("user id"), u.Variable[0].Description)
	require.Len(t, u.Query, 1)
	assert.True(t, u.Query[0].Disabled)
}

func TestURL_StringForm(t *testing.T) {
	var fromString, fromObject URL
	require.NoError(t, json.Unmarshal([]byte(`"{{baseUrl}}/users/:id?x=1"`), &fromString))
	require.NoError(t, json.Unmarshal([]byte(`{"path": ["users", ":id"]}`), &fromObject))

	assert.Equal(t, fromObject.Path, fromString.Path)
	assert.Equal(t, "{{baseUrl}}/users/:id?x=1", fromString.Raw)
	assert.Empty(t, fromString.Query)
	assert.Empty(t, fromString.Variable)
}

func TestURL_PathAsString(t *testing.T) {
	var u URL
	require.NoError(t, json.Unmarshal([]byte(`{"path": "/a/:b"}`), &u))
	assert.Equal(t, []PathSegment{
		{Kind: SegmentString, Text: "a"},
		{Kind: SegmentString, Text: ":b"},
	}, u.Path)
}

func TestURL_RawOnlyObject(t *testing.T) {
	var u URL
	require.NoError(t, json.Unmarshal([]byte(`{"raw": "https://x.io/v2/items"}`), &u))
	assert.Equal(t, []PathSegment{
		{Kind: SegmentString, Text: "v2"},
		{Kind: SegmentString, Text: "items"},
	}, u.Path)
}

func TestSplitRawPath(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"https://api.example.com/users/:id", []string{"users", ":id"}},
		{"http://localhost:8080/", nil},
		{"https://api.example.com", nil},
		{"{{baseUrl}}/orders/{{orderId}}", []string{"orders", "{{orderId}}"}},
		{"/health?full=true#top", []string{"health"}},
		{"example.com", nil},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			segments := SplitRawPath(tt.raw)
			require.NotNil(t, segments)
			var got []string
			for _, s := range segments {
				assert.Equal(t, SegmentString, s.Kind)
				got = append(got, s.Text)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPathSegment_MarshalJSON(t *testing.T) {
	data, err := json.Marshal([]PathSegment{
		{Kind: SegmentString, Text: "users"},
		{Kind: SegmentVariable, Text: "id"},
		{Kind: SegmentIgnored},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `["users", {"value": "id"}, null]`, string(data))
}
