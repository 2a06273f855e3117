// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// PetStoreCollection is a small Postman v2.1 collection exercising the common
// mapping paths: a folder, a request with query parameters and a saved JSON
// response, a POST whose raw body is not valid JSON (one warning), and an
// empty item that is skipped (one info issue). It converts to a single path,
// /pets, with get and post operations tagged "Pets".
const PetStoreCollection = `{
  "info": {
    "name": "Pet Store",
    "description": "Pets",
    "schema": "https://schema.getpostman.com/json/collection/v2.1.0/collection.json"
  },
  "item": [
    {
      "name": "Pets",
      "item": [
        {
          "name": "List pets",
          "request": {
            "method": "GET",
            "url": {
              "raw": "{{base}}/pets?limit=10",
              "path": ["pets"],
              "query": [{"key": "limit", "value": "10"}]
            }
          },
          "response": [
            {
              "name": "OK",
              "code": 200,
              "header": [{"key": "Content-Type", "value": "application/json"}],
              "body": "[{\"id\": 1, \"name\": \"Rex\"}]"
            }
          ]
        },
        {
          "name": "Broken",
          "request": {
            "method": "POST",
            "url": "{{base}}/pets",
            "body": {"mode": "raw", "raw": "{oops"}
          }
        }
      ]
    },
    {"name": "Empty"}
  ]
}`

// WriteFile writes content to dir/name, creating dir if needed, and returns
// the file path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// WriteTempCollection writes a collection to a file in a fresh temporary
// directory and returns its path.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempCollection(t *testing.T, content string) string {
	t.Helper()
	return WriteFile(t, t.TempDir(), "collection.json", content)
}
