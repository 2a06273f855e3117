// Package fileutil holds file naming and writing helpers shared by the CLI
// and the MCP server.
package fileutil

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/erraggy/postman2oas/oaserrors"
)

// OwnerReadWrite is the file permission mode for generated documents, which
// may describe private APIs (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// DirPerm is the permission mode for output directories created on demand.
const DirPerm os.FileMode = 0o755

// outputSuffix is appended to the input stem to name a converted document.
const outputSuffix = "_openapi"

// OutputName returns the file name for the document converted from input:
// the input's base name without extension, "_openapi", then ext.
//
//	OutputName("collections/pets.json", ".yaml") == "pets_openapi.yaml"
func OutputName(input, ext string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + outputSuffix + ext
}

// Resolve places a bare file name inside dir. Names that already carry a
// directory component, and absolute paths, are returned unchanged.
func Resolve(dir, name string) string {
	if dir == "" || filepath.IsAbs(name) || filepath.Base(name) != name {
		return name
	}
	return filepath.Join(dir, name)
}

// ListJSON returns the regular files in dir (not recursive) whose extension
// is ".json", sorted by name.
func ListJSON(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &oaserrors.FileError{Path: dir, Op: "list", Cause: err}
	}
	var files []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	slices.Sort(files)
	return files, nil
}

// EnsureDir creates dir and any missing parents. It reports whether the
// directory had to be created.
func EnsureDir(dir string) (bool, error) {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return false, &oaserrors.FileError{Path: dir, Op: "create directory", Cause: os.ErrExist}
		}
		return false, nil
	}
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return false, &oaserrors.FileError{Path: dir, Op: "create directory", Cause: err}
	}
	return true, nil
}

// WriteFile writes data to path with OwnerReadWrite permissions, creating
// the parent directory when needed.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if _, err := EnsureDir(dir); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, data, OwnerReadWrite); err != nil {
		return &oaserrors.FileError{Path: path, Op: "write", Cause: err}
	}
	return nil
}
