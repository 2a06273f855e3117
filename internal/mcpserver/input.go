package mcpserver

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/postman2oas/converter"
	"github.com/erraggy/postman2oas/postman"
)

// collectionInput represents the two ways a collection can be provided to a
// tool. Exactly one of File or Content must be set.
type collectionInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a Postman collection JSON file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline Postman collection JSON"`
}

// cacheKey identifies the input for the conversion cache. File inputs are
// keyed by (absolutePath, modTime) so edits invalidate the entry; content
// inputs by SHA-256. An empty key means the input is not cacheable.
func (c collectionInput) cacheKey(includeInfo bool) string {
	suffix := ""
	if !includeInfo {
		suffix = ":noinfo"
	}
	switch {
	case c.File != "":
		absPath, err := filepath.Abs(c.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return "" // Can't stat, don't cache.
		}
		return fmt.Sprintf("file:%s:%d%s", absPath, info.ModTime().UnixNano(), suffix)
	case c.Content != "":
		h := sha256.Sum256([]byte(c.Content))
		return "content:" + hex.EncodeToString(h[:]) + suffix
	default:
		return ""
	}
}

// convert parses and converts the collection, consulting the cache first.
// The second return value reports a cache hit.
func (s *server) convert(c collectionInput, includeInfo bool) (*converter.ConversionResult, bool, error) {
	if (c.File == "") == (c.Content == "") {
		return nil, false, fmt.Errorf("exactly one of collection.file or collection.content must be provided")
	}
	if c.Content != "" && int64(len(c.Content)) > s.cfg.MaxInlineSize {
		return nil, false, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set POSTMAN2OAS_MAX_INLINE_SIZE to increase",
			len(c.Content), s.cfg.MaxInlineSize)
	}

	key := c.cacheKey(includeInfo)
	if key != "" {
		if cached, ok := s.cache.Get(key); ok {
			s.logger.Debug("conversion cache hit", "key", key)
			return cached, true, nil
		}
	}

	opts := []converter.Option{
		converter.WithIncludeInfo(includeInfo),
		converter.WithLogger(postman.NewSlogAdapter(s.logger)),
	}
	if c.File != "" {
		opts = append(opts, converter.WithFilePath(c.File))
	} else {
		opts = append(opts, converter.WithBytes([]byte(c.Content)))
	}
	result, err := converter.ConvertWithOptions(opts...)
	if err != nil {
		return nil, false, err
	}

	if key != "" {
		s.cache.Add(key, result)
	}
	return result, false, nil
}
