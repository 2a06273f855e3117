package openapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	doc := NewDocument("Pets", "")

	assert.Equal(t, "3.0.0", doc.OpenAPI)
	assert.Equal(t, "Pets", doc.Info.Title)
	assert.Equal(t, "1.0.0", doc.Info.Version)
	require.NotNil(t, doc.Paths)
	assert.Equal(t, 0, doc.Paths.Len())
	require.NotNil(t, doc.Components.Schemas)
	assert.Equal(t, 0, doc.Components.Schemas.Len())
	assert.NotNil(t, doc.Tags)
}

func TestDocument_PathItem(t *testing.T) {
	doc := NewDocument("t", "")

	first := doc.PathItem("/users")
	first.Set("get", &Operation{Summary: "list"})
	again := doc.PathItem("/users")
	assert.Same(t, first, again)

	doc.PathItem("/orders")
	assert.Equal(t, []string{"/users", "/orders"}, doc.PathKeys())

	op, ok := doc.Operation("/users", "get")
	require.True(t, ok)
	assert.Equal(t, "list", op.Summary)

	_, ok = doc.Operation("/users", "post")
	assert.False(t, ok)
	_, ok = doc.Operation("/missing", "get")
	assert.False(t, ok)
}

func TestDocument_OperationCount(t *testing.T) {
	doc := NewDocument("t", "")
	assert.Equal(t, 0, doc.OperationCount())

	doc.PathItem("/a").Set("get", &Operation{})
	doc.PathItem("/a").Set("post", &Operation{})
	doc.PathItem("/b").Set("get", &Operation{})
	// Replacing keeps the count.
	doc.PathItem("/a").Set("get", &Operation{Summary: "again"})

	assert.Equal(t, 3, doc.OperationCount())
}

func TestDocument_TagNames(t *testing.T) {
	doc := NewDocument("t", "")
	doc.Tags = []Tag{{Name: "A"}, {Name: "b"}}
	assert.Equal(t, []string{"A", "b"}, doc.TagNames())
}
