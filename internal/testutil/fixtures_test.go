package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPetStoreCollection_IsValidJSON(t *testing.T) {
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(PetStoreCollection), &doc))
	assert.Contains(t, doc, "info")
	assert.Contains(t, doc, "item")
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	path := WriteFile(t, dir, "a.json", "{}")
	assert.Equal(t, filepath.Join(dir, "a.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestWriteTempCollection(t *testing.T) {
	path := WriteTempCollection(t, PetStoreCollection)
	assert.Equal(t, "collection.json", filepath.Base(path))
	assert.FileExists(t, path)
}
